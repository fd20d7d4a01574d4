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

const checkoutKeyPrefix = "checkout-session:"

// CheckoutRepository implements repository.CheckoutRepository using Redis.
// Sessions expire on their own after the TTL; an abandoned checkout needs no
// cleanup job.
type CheckoutRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckoutRepository creates a new Redis-backed checkout session repository.
func NewCheckoutRepository(client *redis.Client, ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the in-flight checkout session for a user.
func (r *CheckoutRepository) Get(ctx context.Context, userID string) (*domain.CheckoutSession, error) {
	data, err := r.client.Get(ctx, checkoutKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("checkout session", userID)
		}
		return nil, fmt.Errorf("redis get checkout session: %w", err)
	}

	var session domain.CheckoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal checkout session: %w", err)
	}

	return &session, nil
}

// Save overwrites the checkout session with the configured TTL.
func (r *CheckoutRepository) Save(ctx context.Context, session *domain.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal checkout session: %w", err)
	}

	if err := r.client.Set(ctx, checkoutKeyPrefix+session.UserID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set checkout session: %w", err)
	}

	return nil
}

// Delete removes the checkout session for the user.
func (r *CheckoutRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, checkoutKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("redis del checkout session: %w", err)
	}
	return nil
}
