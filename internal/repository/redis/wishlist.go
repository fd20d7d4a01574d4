package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// wishlistKeyPrefix names the wishlist snapshot blob. The per-user key is
// "wishlist-storage:<userID>".
const wishlistKeyPrefix = "wishlist-storage:"

// WishlistRepository implements repository.WishlistRepository using Redis,
// one JSON blob per user, overwritten after every mutation.
type WishlistRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWishlistRepository creates a new Redis-backed wishlist repository.
func NewWishlistRepository(client *redis.Client, ttl time.Duration) *WishlistRepository {
	return &WishlistRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a wishlist snapshot by user ID.
func (r *WishlistRepository) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	data, err := r.client.Get(ctx, wishlistKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("wishlist", userID)
		}
		return nil, fmt.Errorf("redis get wishlist: %w", err)
	}

	var wishlist domain.Wishlist
	if err := json.Unmarshal(data, &wishlist); err != nil {
		return nil, fmt.Errorf("unmarshal wishlist: %w", err)
	}

	return &wishlist, nil
}

// Save overwrites the wishlist snapshot with the configured TTL.
func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	data, err := json.Marshal(wishlist)
	if err != nil {
		return fmt.Errorf("marshal wishlist: %w", err)
	}

	if err := r.client.Set(ctx, wishlistKeyPrefix+wishlist.UserID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set wishlist: %w", err)
	}

	return nil
}

// Delete removes the wishlist snapshot for the user.
func (r *WishlistRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, wishlistKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("redis del wishlist: %w", err)
	}
	return nil
}
