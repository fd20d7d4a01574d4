package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"

	"github.com/momomonster549/ecom-macsorchids/internal/catalog"
)

func TestListProducts_All(t *testing.T) {
	p := New(0)

	products, err := p.ListProducts(context.Background(), catalog.Filter{})
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestListProducts_Filtered(t *testing.T) {
	p := New(0)

	products, err := p.ListProducts(context.Background(), catalog.Filter{Category: "Supplies"})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestGetProduct(t *testing.T) {
	p := New(0)

	product, err := p.GetProduct(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Cattleya Orchid - Royal Purple", product.Name)
	assert.Equal(t, 49.99, product.Price)
	assert.True(t, product.IsFragrant)
}

func TestGetProduct_NotFound(t *testing.T) {
	p := New(0)

	_, err := p.GetProduct(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetProduct_ReturnsCopy(t *testing.T) {
	p := New(0)

	product, err := p.GetProduct(context.Background(), "1")
	require.NoError(t, err)
	product.Price = 1.0

	again, err := p.GetProduct(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 29.99, again.Price)
}

func TestRelatedProducts_TopsUpWithFeatured(t *testing.T) {
	p := New(0)

	// Product 1 is the only Phalaenopsis, so related products come from
	// featured items in other categories.
	related, err := p.RelatedProducts(context.Background(), "1")
	require.NoError(t, err)
	require.NotEmpty(t, related)
	assert.LessOrEqual(t, len(related), 4)
	for _, r := range related {
		assert.NotEqual(t, "1", r.ID)
	}
}

func TestRelatedProducts_UnknownIDYieldsEmpty(t *testing.T) {
	p := New(0)

	related, err := p.RelatedProducts(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestCategories_DistinctInCatalogOrder(t *testing.T) {
	p := New(0)

	categories, err := p.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Phalaenopsis", "Cattleya", "Dendrobium", "Vanda", "Oncidium", "Supplies", "Gifts"}, categories)
}

func TestSubcategories(t *testing.T) {
	p := New(0)

	subcategories, err := p.Subcategories(context.Background(), "Supplies")
	require.NoError(t, err)
	assert.Equal(t, []string{"Growing Media", "Fertilizers"}, subcategories)
}

func TestSubcategories_CategoryWithoutSubcategories(t *testing.T) {
	p := New(0)

	subcategories, err := p.Subcategories(context.Background(), "Vanda")
	require.NoError(t, err)
	assert.Empty(t, subcategories)
}

func TestReviews(t *testing.T) {
	p := New(0)

	reviews, err := p.Reviews(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviews_UnknownProductYieldsEmpty(t *testing.T) {
	p := New(0)

	reviews, err := p.Reviews(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestSimulatedLatency_HonorsContextCancellation(t *testing.T) {
	p := New(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.ListProducts(ctx, catalog.Filter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSimulatedLatency_Waits(t *testing.T) {
	p := New(20 * time.Millisecond)

	start := time.Now()
	_, err := p.ListProducts(context.Background(), catalog.Filter{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
