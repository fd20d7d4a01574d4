package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

func setupWishlistRepo(t *testing.T) (*WishlistRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewWishlistRepository(client, 24*time.Hour), mr
}

func sampleWishlist() *domain.Wishlist {
	return &domain.Wishlist{
		UserID: "user-001",
		Entries: []domain.Product{
			{ID: "2", Name: "Cattleya Orchid - Royal Purple", Price: 49.99, InStock: true},
			{ID: "4", Name: "Vanda Orchid - Blue Magic", Price: 59.99},
		},
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestWishlistRepository_SaveAndGet(t *testing.T) {
	repo, mr := setupWishlistRepo(t)

	wl := sampleWishlist()
	require.NoError(t, repo.Save(context.Background(), wl))
	assert.True(t, mr.Exists("wishlist-storage:"+wl.UserID))

	got, err := repo.Get(context.Background(), wl.UserID)
	require.NoError(t, err)
	assert.Equal(t, wl.UserID, got.UserID)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "2", got.Entries[0].ID)
	assert.Equal(t, "4", got.Entries[1].ID)
}

func TestWishlistRepository_Get_NotFound(t *testing.T) {
	repo, _ := setupWishlistRepo(t)

	_, err := repo.Get(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestWishlistRepository_Save_SetsTTL(t *testing.T) {
	repo, mr := setupWishlistRepo(t)

	wl := sampleWishlist()
	require.NoError(t, repo.Save(context.Background(), wl))

	assert.Equal(t, 24*time.Hour, mr.TTL("wishlist-storage:"+wl.UserID))
}

func TestWishlistRepository_Delete(t *testing.T) {
	repo, mr := setupWishlistRepo(t)

	wl := sampleWishlist()
	require.NoError(t, repo.Save(context.Background(), wl))

	require.NoError(t, repo.Delete(context.Background(), wl.UserID))
	assert.False(t, mr.Exists("wishlist-storage:"+wl.UserID))
}
