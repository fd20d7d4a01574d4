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

// WishlistService implements the business logic for wishlist operations.
type WishlistService struct {
	repo     repository.WishlistRepository
	catalog  catalog.Provider
	producer *event.Producer
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, provider catalog.Provider, producer *event.Producer, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:     repo,
		catalog:  provider,
		producer: producer,
		logger:   logger,
	}
}

// GetWishlist retrieves the wishlist for a user. If no snapshot exists,
// returns an empty wishlist rather than an error.
func (s *WishlistService) GetWishlist(ctx context.Context, userID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	wishlist, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyWishlist(userID), nil
		}
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	return wishlist, nil
}

// AddToWishlist adds the product to the wishlist. Adding a product that is
// already present leaves the wishlist unchanged.
func (s *WishlistService) AddToWishlist(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
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

	wishlist, err := s.getOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !wishlist.Add(*product) {
		return wishlist, nil
	}
	wishlist.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, wishlist)

	s.logger.InfoContext(ctx, "added product to wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("count", wishlist.Count()),
	)

	return wishlist, nil
}

// RemoveFromWishlist removes the product from the wishlist. Removing an
// absent id is a no-op, not an error.
func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	wishlist, err := s.getOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !wishlist.Remove(productID) {
		return wishlist, nil
	}
	wishlist.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, wishlist)

	s.logger.InfoContext(ctx, "removed product from wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return wishlist, nil
}

// ClearWishlist empties the user's wishlist and persists the empty snapshot.
func (s *WishlistService) ClearWishlist(ctx context.Context, userID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	wishlist := s.newEmptyWishlist(userID)

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, wishlist)

	s.logger.InfoContext(ctx, "cleared wishlist", slog.String("user_id", userID))

	return wishlist, nil
}

// IsInWishlist reports whether the product is on the user's wishlist.
func (s *WishlistService) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	wishlist, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productID), nil
}

// Count returns the number of wishlist entries.
func (s *WishlistService) Count(ctx context.Context, userID string) (int, error) {
	wishlist, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wishlist.Count(), nil
}

func (s *WishlistService) getOrCreateWishlist(ctx context.Context, userID string) (*domain.Wishlist, error) {
	wishlist, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyWishlist(userID), nil
		}
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	return wishlist, nil
}

func (s *WishlistService) newEmptyWishlist(userID string) *domain.Wishlist {
	return &domain.Wishlist{
		UserID:    userID,
		Entries:   []domain.Product{},
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *WishlistService) publishUpdated(ctx context.Context, wishlist *domain.Wishlist) {
	if err := s.producer.PublishWishlistUpdated(ctx, wishlist); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
			slog.String("user_id", wishlist.UserID),
			slog.String("error", err.Error()),
		)
	}
}
