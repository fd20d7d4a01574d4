package memory

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"

	"github.com/momomonster549/ecom-macsorchids/internal/catalog"
	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// maxRelated caps the number of products returned by RelatedProducts.
const maxRelated = 4

// Provider is an in-memory catalog.Provider backed by a seeded product list.
// It simulates network latency on every call so the storefront behaves like
// it would against a real upstream. Thread-safe via sync.RWMutex.
type Provider struct {
	mu       sync.RWMutex
	products []domain.Product
	reviews  []domain.Review
	latency  time.Duration
}

// New creates a provider seeded with the orchid catalog. A latency of zero
// disables the simulated delay (used by tests).
func New(latency time.Duration) *Provider {
	return &Provider{
		products: seedProducts(),
		reviews:  seedReviews(),
		latency:  latency,
	}
}

// ListProducts returns the products matching the filter, in catalog order.
func (p *Provider) ListProducts(ctx context.Context, f catalog.Filter) ([]domain.Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	return catalog.ApplyFilter(p.products, f), nil
}

// GetProduct returns the product with the given id, or a not-found error.
func (p *Provider) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	for i := range p.products {
		if p.products[i].ID == id {
			product := p.products[i]
			return &product, nil
		}
	}
	return nil, apperrors.NotFound("product", id)
}

// RelatedProducts returns up to four products related to the given one:
// same-category products first, topped up with featured products from other
// categories when the category is thin.
func (p *Provider) RelatedProducts(ctx context.Context, productID string) ([]domain.Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var current *domain.Product
	for i := range p.products {
		if p.products[i].ID == productID {
			current = &p.products[i]
			break
		}
	}
	if current == nil {
		return []domain.Product{}, nil
	}

	related := make([]domain.Product, 0, maxRelated)
	for _, candidate := range p.products {
		if candidate.ID != productID && candidate.Category == current.Category {
			related = append(related, candidate)
		}
	}

	if len(related) < maxRelated {
		for _, candidate := range p.products {
			if candidate.ID != productID && candidate.Category != current.Category && candidate.Featured {
				related = append(related, candidate)
			}
		}
	}

	if len(related) > maxRelated {
		related = related[:maxRelated]
	}
	return related, nil
}

// Categories returns the distinct product categories in catalog order.
func (p *Provider) Categories(ctx context.Context) ([]string, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, product := range p.products {
		if product.Category == "" {
			continue
		}
		if _, ok := seen[product.Category]; ok {
			continue
		}
		seen[product.Category] = struct{}{}
		categories = append(categories, product.Category)
	}
	return categories, nil
}

// Subcategories returns the distinct subcategories within a category.
func (p *Provider) Subcategories(ctx context.Context, category string) ([]string, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	seen := make(map[string]struct{})
	subcategories := make([]string, 0)
	for _, product := range p.products {
		if product.Category != category || product.Subcategory == "" {
			continue
		}
		if _, ok := seen[product.Subcategory]; ok {
			continue
		}
		seen[product.Subcategory] = struct{}{}
		subcategories = append(subcategories, product.Subcategory)
	}
	return subcategories, nil
}

// Reviews returns the reviews for a product. An unknown product id yields an
// empty list, not an error.
func (p *Provider) Reviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	reviews := make([]domain.Review, 0)
	for _, review := range p.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// wait simulates upstream latency while honoring context cancellation.
func (p *Provider) wait(ctx context.Context) error {
	if p.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.latency):
		return nil
	}
}
