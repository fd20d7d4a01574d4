package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

func fixture() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Phalaenopsis Orchid - Pink Blush", Description: "A stunning pink Phalaenopsis", Category: "Phalaenopsis", Price: 29.99, InStock: true, Difficulty: domain.DifficultyBeginner, BloomingSeason: domain.SeasonYearRound, Featured: true},
		{ID: "2", Name: "Cattleya Orchid - Royal Purple", Description: "Fragrant purple blooms", Category: "Cattleya", Price: 49.99, InStock: true, Difficulty: domain.DifficultyIntermediate, BloomingSeason: domain.SeasonSpring, IsFragrant: true, Featured: true},
		{ID: "4", Name: "Vanda Orchid - Blue Magic", Description: "Spectacular blue Vanda", Category: "Vanda", Price: 59.99, InStock: false, Difficulty: domain.DifficultyAdvanced, BloomingSeason: domain.SeasonSummer, IsFragrant: true},
		{ID: "6", Name: "Premium Orchid Potting Mix", Description: "Bark, charcoal, and sphagnum moss", Category: "Supplies", Subcategory: "Growing Media", Price: 14.99, InStock: true},
		{ID: "8", Name: "Orchid Gift Set", Description: "Perfect gift for the aspiring enthusiast", Category: "Gifts", Price: 49.99, InStock: true, IsNew: true},
	}
}

func ptr[T any](v T) *T { return &v }

func TestApplyFilter_EmptyFilterReturnsAll(t *testing.T) {
	products := fixture()
	got := ApplyFilter(products, Filter{})
	assert.Len(t, got, len(products))
}

func TestApplyFilter_SearchQueryIsCaseInsensitive(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{SearchQuery: "CATTLEYA"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestApplyFilter_SearchMatchesDescription(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{SearchQuery: "sphagnum"})
	require.Len(t, got, 1)
	assert.Equal(t, "6", got[0].ID)
}

func TestApplyFilter_MinPrice(t *testing.T) {
	// Catalog holds 29.99 and 49.99 orchids; minPrice 40 keeps only the 49.99 ones.
	got := ApplyFilter(fixture(), Filter{MinPrice: ptr(40.0), MaxPrice: ptr(50.0)})
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, 49.99, p.Price)
	}
}

func TestApplyFilter_PriceBoundsAreInclusive(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{MinPrice: ptr(49.99), MaxPrice: ptr(49.99)})
	assert.Len(t, got, 2)
}

func TestApplyFilter_InvertedRangeYieldsEmpty(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{MinPrice: ptr(50.0), MaxPrice: ptr(10.0)})
	assert.Empty(t, got)
}

func TestApplyFilter_CategoryAndStockCombine(t *testing.T) {
	// The only Vanda is out of stock, so the AND of both predicates is empty.
	got := ApplyFilter(fixture(), Filter{Category: "Vanda", InStockOnly: true})
	assert.Empty(t, got)
}

func TestApplyFilter_Subcategory(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{Category: "Supplies", Subcategory: "Growing Media"})
	require.Len(t, got, 1)
	assert.Equal(t, "6", got[0].ID)
}

func TestApplyFilter_Difficulty(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{Difficulty: domain.DifficultyBeginner})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestApplyFilter_BloomingSeason(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{BloomingSeason: domain.SeasonSpring})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestApplyFilter_FragrantTriState(t *testing.T) {
	fragrant := ApplyFilter(fixture(), Filter{IsFragrant: ptr(true)})
	assert.Len(t, fragrant, 2)

	notFragrant := ApplyFilter(fixture(), Filter{IsFragrant: ptr(false)})
	assert.Len(t, notFragrant, 3)

	// nil imposes no constraint.
	all := ApplyFilter(fixture(), Filter{IsFragrant: nil})
	assert.Len(t, all, 5)
}

func TestApplyFilter_Featured(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{Featured: true})
	assert.Len(t, got, 2)
}

func TestApplyFilter_IsNew(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{IsNew: true})
	require.Len(t, got, 1)
	assert.Equal(t, "8", got[0].ID)
}

func TestApplyFilter_LimitTruncates(t *testing.T) {
	got := ApplyFilter(fixture(), Filter{Limit: 2})
	require.Len(t, got, 2)
	// Order is preserved, so the first two catalog entries win.
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	products := fixture()
	ApplyFilter(products, Filter{Category: "Cattleya"})
	assert.Equal(t, fixture(), products)
}
