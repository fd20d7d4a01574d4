package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	p := FromRequest(r)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?page=3&per_page=10", nil)

	p := FromRequest(r)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestFromRequest_IgnoresInvalidValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?page=-1&per_page=boom", nil)

	p := FromRequest(r)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestFromRequest_CapsPerPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?per_page=500", nil)

	p := FromRequest(r)
	assert.Equal(t, 20, p.PerPage)
}

func TestNewResult(t *testing.T) {
	params := Params{Page: 2, PerPage: 3}

	res := NewResult([]string{"d", "e", "f"}, 8, params)
	assert.Equal(t, 8, res.TotalCount)
	assert.Equal(t, 3, res.TotalPages)
	assert.True(t, res.HasNext)
	assert.True(t, res.HasPrev)
}

func TestNewResult_NilDataBecomesEmptySlice(t *testing.T) {
	res := NewResult[string](nil, 0, DefaultParams())
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.TotalPages)
}

func TestSlice(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8}

	assert.Equal(t, []int{4, 5, 6}, Slice(data, Params{Page: 2, PerPage: 3, Offset: 3}))
	assert.Equal(t, []int{7, 8}, Slice(data, Params{Page: 3, PerPage: 3, Offset: 6}))
	assert.Empty(t, Slice(data, Params{Page: 4, PerPage: 3, Offset: 9}))
}
