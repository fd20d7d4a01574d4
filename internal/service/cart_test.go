package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"
	pkgkafka "github.com/momomonster549/ecom-macsorchids/pkg/kafka"

	"github.com/momomonster549/ecom-macsorchids/internal/catalog/memory"
	"github.com/momomonster549/ecom-macsorchids/internal/domain"
	"github.com/momomonster549/ecom-macsorchids/internal/event"
)

// --- Mock repositories ---

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *mockCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockWishlistRepository struct {
	mock.Mock
}

func (m *mockWishlistRepository) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wishlist), args.Error(1)
}

func (m *mockWishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

func (m *mockWishlistRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockCheckoutRepository struct {
	mock.Mock
}

func (m *mockCheckoutRepository) Get(ctx context.Context, userID string) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *mockCheckoutRepository) Save(ctx context.Context, session *domain.CheckoutSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockCheckoutRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestProducer points at a broker that does not exist. Publishes fail and
// are swallowed by the services.
func newTestProducer() *event.Producer {
	logger := newTestLogger()
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig([]string{"localhost:9092"}), logger)
	return event.NewProducer(kafkaProducer, logger)
}

func newTestCartService(repo *mockCartRepository) *CartService {
	return NewCartService(repo, memory.New(0), newTestProducer(), newTestLogger())
}

func cartWithLine(userID, productID string, price float64, qty int) *domain.Cart {
	return &domain.Cart{
		UserID: userID,
		Lines: []domain.CartLine{
			{
				Product:  domain.Product{ID: productID, Name: "Test Orchid", Price: price, InStock: true},
				Quantity: qty,
			},
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// --- GetCart ---

func TestCartService_GetCart_ReturnsEmptyCartWhenNoneStored(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))

	svc := newTestCartService(repo)

	cart, err := svc.GetCart(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.Subtotal())
}

func TestCartService_GetCart_RequiresUserID(t *testing.T) {
	svc := newTestCartService(new(mockCartRepository))

	_, err := svc.GetCart(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCartService_GetCart_PropagatesStorageErrors(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(nil, errors.New("redis down"))

	svc := newTestCartService(repo)

	_, err := svc.GetCart(context.Background(), "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

// --- AddToCart ---

func TestCartService_AddToCart_InsertsNewLine(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	cart, err := svc.AddToCart(context.Background(), "user-1", "1", nil)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "1", cart.Lines[0].Product.ID)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 29.99, cart.Lines[0].Product.Price)
	repo.AssertExpectations(t)
}

func TestCartService_AddToCart_IncrementsExistingLine(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 1), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	cart, err := svc.AddToCart(context.Background(), "user-1", "1", nil)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.TotalItems())
}

func TestCartService_AddToCart_SubtotalAcrossLines(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 2), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	// Two units at 29.99 plus one Cattleya at 49.99.
	cart, err := svc.AddToCart(context.Background(), "user-1", "2", nil)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 109.97, cart.Subtotal(), 0.001)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	_, err := svc.AddToCart(context.Background(), "user-1", "no-such-id", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_AddToCart_OutOfStockStillSucceeds(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	// Product 4 (Vanda Blue Magic) is seeded out of stock. Availability is a
	// display concern; the add goes through regardless.
	cart, err := svc.AddToCart(context.Background(), "user-1", "4", nil)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "4", cart.Lines[0].Product.ID)
	assert.False(t, cart.Lines[0].Product.InStock)
	assert.Equal(t, 1, cart.TotalItems())
	repo.AssertExpectations(t)
}

// --- AddProduct ---

func TestCartService_AddProduct_UsesGivenSnapshot(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	// The id is not in the catalog; the snapshot alone carries the line.
	snapshot := domain.Product{ID: "retired-99", Name: "Retired Orchid", Price: 24.99}
	cart, err := svc.AddProduct(context.Background(), "user-1", snapshot)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "retired-99", cart.Lines[0].Product.ID)
	assert.Equal(t, 24.99, cart.Lines[0].Product.Price)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCartService_AddProduct_IncrementsExistingLine(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 1), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	// A repriced snapshot does not disturb the existing line's snapshot.
	cart, err := svc.AddProduct(context.Background(), "user-1", domain.Product{ID: "1", Price: 99.99})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 29.99, cart.Lines[0].Product.Price)
}

func TestCartService_AddToCart_WithVariant(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	// Product 8 (gift set) carries two variants.
	variantID := 2
	cart, err := svc.AddToCart(context.Background(), "user-1", "8", &variantID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.NotNil(t, cart.Lines[0].SelectedVariant)
	assert.Equal(t, 2, cart.Lines[0].SelectedVariant.ID)
	assert.Equal(t, 64.99, cart.Lines[0].SelectedVariant.Price)
}

func TestCartService_AddToCart_UnknownVariant(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	variantID := 99
	_, err := svc.AddToCart(context.Background(), "user-1", "8", &variantID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

// --- RemoveFromCart ---

func TestCartService_RemoveFromCart_RemovesLine(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 2), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	cart, err := svc.RemoveFromCart(context.Background(), "user-1", "1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	repo.AssertExpectations(t)
}

func TestCartService_RemoveFromCart_AbsentIDIsNoop(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 2), nil)

	svc := newTestCartService(repo)

	cart, err := svc.RemoveFromCart(context.Background(), "user-1", "ghost")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	// Nothing changed, nothing written.
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// --- UpdateQuantity ---

func TestCartService_UpdateQuantity_SetsQuantity(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 1), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	cart, err := svc.UpdateQuantity(context.Background(), "user-1", "1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 3), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	cart, err := svc.UpdateQuantity(context.Background(), "user-1", "1", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCartService_UpdateQuantity_NegativeRemovesLine(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 3), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	cart, err := svc.UpdateQuantity(context.Background(), "user-1", "1", -1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCartService_UpdateQuantity_AbsentIDIsNoop(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "user-1").Return(cartWithLine("user-1", "1", 29.99, 2), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := newTestCartService(repo)

	cart, err := svc.UpdateQuantity(context.Background(), "user-1", "ghost", 4)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

// --- ClearCart ---

func TestCartService_ClearCart_PersistsEmptySnapshot(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return c.UserID == "user-1" && len(c.Lines) == 0
	})).Return(nil)

	svc := newTestCartService(repo)

	cart, err := svc.ClearCart(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	repo.AssertExpectations(t)
}

func TestCartService_ClearCart_SaveError(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	svc := newTestCartService(repo)

	_, err := svc.ClearCart(context.Background(), "user-1")
	require.Error(t, err)
}
