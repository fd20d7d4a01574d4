package catalog

import (
	"context"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// Filter is the set of optional predicates used to narrow a product list.
// Zero values ("" / nil / false / 0) mean "no constraint for this dimension".
// Populated predicates are combined with a logical AND.
type Filter struct {
	// SearchQuery matches case-insensitively as a substring against the
	// product name, description, and category.
	SearchQuery string

	Category    string
	Subcategory string

	// MinPrice and MaxPrice are inclusive bounds. A range with
	// MinPrice > MaxPrice simply yields no matches; it is not an error.
	MinPrice *float64
	MaxPrice *float64

	InStockOnly    bool
	Difficulty     string
	BloomingSeason string

	// IsFragrant is tri-state: nil imposes no constraint, otherwise products
	// must match the pointed-to value exactly.
	IsFragrant *bool

	Featured bool
	IsNew    bool

	// Limit truncates the result to at most this many products when > 0.
	Limit int
}

// Provider supplies the product catalog. Implementations may suspend (the
// mock provider simulates network latency), so every operation takes a
// context. All operations are read-only.
type Provider interface {
	// ListProducts returns the products matching the filter, in catalog order.
	ListProducts(ctx context.Context, f Filter) ([]domain.Product, error)

	// GetProduct returns the product with the given id, or a not-found error.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// RelatedProducts returns up to four products related to the given one:
	// same-category products first, topped up with featured products from
	// other categories.
	RelatedProducts(ctx context.Context, productID string) ([]domain.Product, error)

	// Categories returns the distinct product categories in catalog order.
	Categories(ctx context.Context) ([]string, error)

	// Subcategories returns the distinct subcategories within a category.
	Subcategories(ctx context.Context, category string) ([]string, error)

	// Reviews returns the reviews for a product. An unknown product id
	// yields an empty list, not an error.
	Reviews(ctx context.Context, productID string) ([]domain.Review, error)
}
