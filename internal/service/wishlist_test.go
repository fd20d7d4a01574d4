package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"

	"github.com/momomonster549/ecom-macsorchids/internal/catalog/memory"
	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

func newTestWishlistService(repo *mockWishlistRepository) *WishlistService {
	return NewWishlistService(repo, memory.New(0), newTestProducer(), newTestLogger())
}

func wishlistWith(userID string, productIDs ...string) *domain.Wishlist {
	wl := &domain.Wishlist{
		UserID:    userID,
		Entries:   []domain.Product{},
		UpdatedAt: time.Now().UTC(),
	}
	for _, id := range productIDs {
		wl.Entries = append(wl.Entries, domain.Product{ID: id, Name: "Orchid " + id, Price: 29.99})
	}
	return wl
}

func TestWishlistService_GetWishlist_ReturnsEmptyWhenNoneStored(t *testing.T) {
	repo := new(mockWishlistRepository)
	repo.On("Get", mock.Anything, "user-1").Return(nil, apperrors.NotFound("wishlist", "user-1"))

	svc := newTestWishlistService(repo)

	wl, err := svc.GetWishlist(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", wl.UserID)
	assert.Equal(t, 0, wl.Count())
}

func TestWishlistService_AddToWishlist_AddsEntry(t *testing.T) {
	repo := new(mockWishlistRepository)
	repo.On("Get", mock.Anything, "user-1").Return(nil, apperrors.NotFound("wishlist", "user-1"))
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Wishlist")).Return(nil)

	svc := newTestWishlistService(repo)

	wl, err := svc.AddToWishlist(context.Background(), "user-1", "2")
	require.NoError(t, err)
	assert.Equal(t, 1, wl.Count())
	assert.True(t, wl.Contains("2"))
	repo.AssertExpectations(t)
}

func TestWishlistService_AddToWishlist_SecondAddIsNoop(t *testing.T) {
	repo := new(mockWishlistRepository)
	repo.On("Get", mock.Anything, "user-1").Return(wishlistWith("user-1", "2"), nil)

	svc := newTestWishlistService(repo)

	wl, err := svc.AddToWishlist(context.Background(), "user-1", "2")
	require.NoError(t, err)
	assert.Equal(t, 1, wl.Count())
	// Idempotent adds write nothing.
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWishlistService_AddToWishlist_UnknownProduct(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := newTestWishlistService(repo)

	_, err := svc.AddToWishlist(context.Background(), "user-1", "no-such-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestWishlistService_RemoveFromWishlist_RestoresPreAddState(t *testing.T) {
	repo := new(mockWishlistRepository)
	repo.On("Get", mock.Anything, "user-1").Return(wishlistWith("user-1", "2", "4"), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Wishlist")).Return(nil)

	svc := newTestWishlistService(repo)

	wl, err := svc.RemoveFromWishlist(context.Background(), "user-1", "4")
	require.NoError(t, err)
	assert.Equal(t, 1, wl.Count())
	assert.True(t, wl.Contains("2"))
	assert.False(t, wl.Contains("4"))
}

func TestWishlistService_RemoveFromWishlist_AbsentIDIsNoop(t *testing.T) {
	repo := new(mockWishlistRepository)
	repo.On("Get", mock.Anything, "user-1").Return(wishlistWith("user-1", "2"), nil)

	svc := newTestWishlistService(repo)

	wl, err := svc.RemoveFromWishlist(context.Background(), "user-1", "ghost")
	require.NoError(t, err)
	assert.Equal(t, 1, wl.Count())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWishlistService_ClearWishlist(t *testing.T) {
	repo := new(mockWishlistRepository)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(w *domain.Wishlist) bool {
		return w.UserID == "user-1" && len(w.Entries) == 0
	})).Return(nil)

	svc := newTestWishlistService(repo)

	wl, err := svc.ClearWishlist(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, wl.Count())
	repo.AssertExpectations(t)
}

func TestWishlistService_IsInWishlist(t *testing.T) {
	repo := new(mockWishlistRepository)
	repo.On("Get", mock.Anything, "user-1").Return(wishlistWith("user-1", "2"), nil)

	svc := newTestWishlistService(repo)

	in, err := svc.IsInWishlist(context.Background(), "user-1", "2")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = svc.IsInWishlist(context.Background(), "user-1", "7")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestWishlistService_Count(t *testing.T) {
	repo := new(mockWishlistRepository)
	repo.On("Get", mock.Anything, "user-1").Return(wishlistWith("user-1", "2", "4", "5"), nil)

	svc := newTestWishlistService(repo)

	n, err := svc.Count(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
