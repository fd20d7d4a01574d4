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

// cartKeyPrefix names the cart snapshot blob. The per-user key is
// "cart-storage:<userID>".
const cartKeyPrefix = "cart-storage:"

// CartRepository implements repository.CartRepository using Redis. Each cart
// is one JSON blob, read at the start of an operation and overwritten after
// every mutation.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository creates a new Redis-backed cart repository.
func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cart snapshot by user ID.
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("cart", userID)
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}

	return &cart, nil
}

// Save overwrites the cart snapshot with the configured TTL.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKeyPrefix+cart.UserID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}

	return nil
}

// Delete removes the cart snapshot for the user.
func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}
