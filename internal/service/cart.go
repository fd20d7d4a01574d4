package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"

	"github.com/momomonster549/ecom-macsorchids/internal/catalog"
	"github.com/momomonster549/ecom-macsorchids/internal/domain"
	"github.com/momomonster549/ecom-macsorchids/internal/event"
	"github.com/momomonster549/ecom-macsorchids/internal/repository"
)

// CartService implements the business logic for cart operations. Every
// mutation reads the persisted snapshot, applies the change in memory, and
// writes the snapshot back.
type CartService struct {
	repo     repository.CartRepository
	catalog  catalog.Provider
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, provider catalog.Provider, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		catalog:  provider,
		producer: producer,
		logger:   logger,
	}
}

// GetCart retrieves the cart for a user. If no snapshot exists, returns an
// empty cart rather than an error.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(userID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddToCart adds one unit of the product to the user's cart. If a line for
// the product already exists its quantity is incremented and its snapshot is
// left untouched; otherwise a new line with quantity 1 is inserted. An
// optional variant id selects a product variant for new lines.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, variantID *int) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("lookup product: %w", err)
	}

	var variant *domain.ProductVariant
	if variantID != nil {
		for i := range product.Variants {
			if product.Variants[i].ID == *variantID {
				variant = &product.Variants[i]
				break
			}
		}
		if variant == nil {
			return nil, apperrors.InvalidInput("unknown product variant")
		}
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindLine(productID); i >= 0 {
		cart.Lines[i].Quantity++
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{
			Product:         *product,
			Quantity:        1,
			SelectedVariant: variant,
		})
	}
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "added product to cart",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("total_items", cart.TotalItems()),
	)

	return cart, nil
}

// AddProduct adds one unit of an already-held product snapshot to the cart
// without consulting the catalog. Wishlist move-to-cart uses it so the
// snapshot the wishlist holds is what lands in the cart.
func (s *CartService) AddProduct(ctx context.Context, userID string, product domain.Product) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if product.ID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Add(product)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "added product to cart",
		slog.String("user_id", userID),
		slog.String("product_id", product.ID),
		slog.Int("total_items", cart.TotalItems()),
	)

	return cart, nil
}

// RemoveFromCart removes the line for the given product id. Removing an
// absent id is a no-op, not an error.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.Remove(productID) {
		return cart, nil
	}
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "removed product from cart",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return cart, nil
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less removes
// the line; updating an absent id is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	return cart, nil
}

// ClearCart empties the user's cart and persists the empty snapshot.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart := s.newEmptyCart(userID)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cleared cart", slog.String("user_id", userID))

	return cart, nil
}

func (s *CartService) getOrCreateCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(userID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) newEmptyCart(userID string) *domain.Cart {
	return &domain.Cart{
		UserID:    userID,
		Lines:     []domain.CartLine{},
		UpdatedAt: time.Now().UTC(),
	}
}

// publishUpdated emits a cart.updated event. Failures are logged and
// swallowed; the cart mutation has already been persisted.
func (s *CartService) publishUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
}
