package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/momomonster549/ecom-macsorchids/pkg/kafka"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// Kafka topics for storefront domain events.
const (
	TopicCartUpdated     = "storefront.cart.updated"
	TopicCartCleared     = "storefront.cart.cleared"
	TopicWishlistUpdated = "storefront.wishlist.updated"
	TopicOrderConfirmed  = "storefront.order.confirmed"
)

// Aggregate type constants.
const (
	AggregateTypeCart     = "cart"
	AggregateTypeWishlist = "wishlist"
	AggregateTypeOrder    = "order"
)

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	UserID     string         `json:"user_id"`
	Lines      []CartLineData `json:"lines"`
	TotalItems int            `json:"total_items"`
	Subtotal   float64        `json:"subtotal"`
}

// CartLineData is the line payload within cart events.
type CartLineData struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	UserID string `json:"user_id"`
}

// WishlistUpdatedData is the payload for a wishlist.updated event.
type WishlistUpdatedData struct {
	UserID     string   `json:"user_id"`
	ProductIDs []string `json:"product_ids"`
	Count      int      `json:"count"`
}

// OrderConfirmedData is the payload for an order.confirmed event.
type OrderConfirmedData struct {
	OrderNumber string  `json:"order_number"`
	UserID      string  `json:"user_id"`
	ItemCount   int     `json:"item_count"`
	Total       float64 `json:"total"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	lines := make([]CartLineData, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = CartLineData{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		}
	}

	data := CartUpdatedData{
		UserID:     cart.UserID,
		Lines:      lines,
		TotalItems: cart.TotalItems(),
		Subtotal:   cart.Subtotal(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.UserID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("user_id", cart.UserID),
		slog.Int("total_items", cart.TotalItems()),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, userID string) error {
	data := CartClearedData{UserID: userID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, userID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("user_id", userID),
	)

	return nil
}

// PublishWishlistUpdated publishes a wishlist.updated event.
func (p *Producer) PublishWishlistUpdated(ctx context.Context, wishlist *domain.Wishlist) error {
	ids := make([]string, len(wishlist.Entries))
	for i, entry := range wishlist.Entries {
		ids[i] = entry.ID
	}

	data := WishlistUpdatedData{
		UserID:     wishlist.UserID,
		ProductIDs: ids,
		Count:      wishlist.Count(),
	}

	event, err := pkgkafka.NewEvent(TopicWishlistUpdated, wishlist.UserID, AggregateTypeWishlist, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create wishlist.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistUpdated, event); err != nil {
		return fmt.Errorf("publish wishlist.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published wishlist.updated event",
		slog.String("user_id", wishlist.UserID),
		slog.Int("count", wishlist.Count()),
	)

	return nil
}

// PublishOrderConfirmed publishes an order.confirmed event.
func (p *Producer) PublishOrderConfirmed(ctx context.Context, order *domain.Order) error {
	itemCount := 0
	for _, line := range order.Lines {
		itemCount += line.Quantity
	}

	data := OrderConfirmedData{
		OrderNumber: order.Number,
		UserID:      order.UserID,
		ItemCount:   itemCount,
		Total:       order.Pricing.Total,
	}

	event, err := pkgkafka.NewEvent(TopicOrderConfirmed, order.Number, AggregateTypeOrder, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create order.confirmed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderConfirmed, event); err != nil {
		return fmt.Errorf("publish order.confirmed event: %w", err)
	}

	p.logger.InfoContext(ctx, "published order.confirmed event",
		slog.String("order_number", order.Number),
		slog.String("user_id", order.UserID),
	)

	return nil
}
