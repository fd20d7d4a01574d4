package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
	"github.com/momomonster549/ecom-macsorchids/internal/event"
	"github.com/momomonster549/ecom-macsorchids/internal/repository"
)

// CheckoutService runs the simulated checkout flow. A session snapshots the
// cart when it starts, advances through the steps in order, and on the final
// step produces an order without ever contacting a payment system.
type CheckoutService struct {
	repo     repository.CheckoutRepository
	cart     *CartService
	producer *event.Producer
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(repo repository.CheckoutRepository, cart *CartService, producer *event.Producer, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		repo:     repo,
		cart:     cart,
		producer: producer,
		logger:   logger,
	}
}

// StartCheckout opens a checkout session from the current cart. The cart must
// not be empty. An existing in-flight session for the user is replaced; later
// cart edits do not affect the snapshot.
func (s *CheckoutService) StartCheckout(ctx context.Context, userID, coupon string) (*domain.CheckoutSession, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	now := time.Now().UTC()
	session := &domain.CheckoutSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Step:      domain.StepInformation,
		Lines:     append([]domain.CartLine(nil), cart.Lines...),
		Coupon:    coupon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "started checkout session",
		slog.String("user_id", userID),
		slog.String("session_id", session.ID),
		slog.Int("lines", len(session.Lines)),
	)

	return session, nil
}

// GetSession returns the user's in-flight checkout session.
func (s *CheckoutService) GetSession(ctx context.Context, userID string) (*domain.CheckoutSession, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	session, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	return session, nil
}

// SubmitInformation records the customer contact details and advances the
// session to the shipping step.
func (s *CheckoutService) SubmitInformation(ctx context.Context, userID string, contact domain.ContactInfo) (*domain.CheckoutSession, error) {
	session, err := s.sessionAtStep(ctx, userID, domain.StepInformation)
	if err != nil {
		return nil, err
	}

	session.Contact = &contact
	session.Step = domain.StepShipping
	session.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}

	return session, nil
}

// SubmitShipping records the shipping method and advances the session to the
// payment step.
func (s *CheckoutService) SubmitShipping(ctx context.Context, userID, method string) (*domain.CheckoutSession, error) {
	if method != domain.ShippingStandard && method != domain.ShippingExpress {
		return nil, apperrors.InvalidInput("unknown shipping method")
	}

	session, err := s.sessionAtStep(ctx, userID, domain.StepShipping)
	if err != nil {
		return nil, err
	}

	session.Shipping = method
	session.Step = domain.StepPayment
	session.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}

	return session, nil
}

// SubmitPayment completes the simulated checkout: it prices the snapshotted
// lines, assigns an order number, clears the cart, removes the session, and
// emits order.confirmed. No payment provider is involved.
func (s *CheckoutService) SubmitPayment(ctx context.Context, userID string) (*domain.Order, error) {
	session, err := s.sessionAtStep(ctx, userID, domain.StepPayment)
	if err != nil {
		return nil, err
	}

	pricing := Quote(session.Lines, QuoteOptions{
		ShippingMethod: session.Shipping,
		CouponCode:     session.Coupon,
	})

	order := &domain.Order{
		Number:   newOrderNumber(),
		UserID:   userID,
		Lines:    session.Lines,
		Contact:  session.Contact,
		Shipping: session.Shipping,
		Pricing:  pricing,
		PlacedAt: time.Now().UTC(),
	}

	if _, err := s.cart.ClearCart(ctx, userID); err != nil {
		return nil, fmt.Errorf("clear cart after order: %w", err)
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "failed to delete checkout session",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishOrderConfirmed(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.confirmed event",
			slog.String("order_number", order.Number),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("user_id", userID),
		slog.String("order_number", order.Number),
		slog.Float64("total", order.Pricing.Total),
	)

	return order, nil
}

// sessionAtStep loads the session and checks it sits at the expected step.
// Sessions only move forward; submitting an earlier or later step is a
// conflict.
func (s *CheckoutService) sessionAtStep(ctx context.Context, userID, step string) (*domain.CheckoutSession, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	session, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("checkout session", userID)
		}
		return nil, fmt.Errorf("get checkout session: %w", err)
	}

	if session.Step != step {
		return nil, apperrors.Conflict(fmt.Sprintf("checkout session is at step %q, expected %q", session.Step, step))
	}

	return session, nil
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%06d", 100000+rand.IntN(900000))
}
