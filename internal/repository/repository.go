package repository

import (
	"context"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// CartRepository persists cart snapshots. Get returns a not-found error when
// no snapshot exists for the user.
type CartRepository interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

// WishlistRepository persists wishlist snapshots. Get returns a not-found
// error when no snapshot exists for the user.
type WishlistRepository interface {
	Get(ctx context.Context, userID string) (*domain.Wishlist, error)
	Save(ctx context.Context, wishlist *domain.Wishlist) error
	Delete(ctx context.Context, userID string) error
}

// CheckoutRepository persists in-flight checkout sessions.
type CheckoutRepository interface {
	Get(ctx context.Context, userID string) (*domain.CheckoutSession, error)
	Save(ctx context.Context, session *domain.CheckoutSession) error
	Delete(ctx context.Context, userID string) error
}
