package catalog

import (
	"strings"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// ApplyFilter narrows the product list to those matching every populated
// predicate of the filter, preserving input order. It is a pure function: the
// input slice is never mutated, and an empty result is a normal outcome.
func ApplyFilter(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	query := strings.ToLower(f.SearchQuery)

	for _, p := range products {
		if !matches(p, f, query) {
			continue
		}
		out = append(out, p)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}

	return out
}

// matches checks a single product against every populated predicate.
func matches(p domain.Product, f Filter, query string) bool {
	if query != "" {
		if !strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) {
			return false
		}
	}

	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && p.Subcategory != f.Subcategory {
		return false
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	if f.InStockOnly && !p.InStock {
		return false
	}

	if f.Difficulty != "" && p.Difficulty != f.Difficulty {
		return false
	}
	if f.BloomingSeason != "" && p.BloomingSeason != f.BloomingSeason {
		return false
	}

	if f.IsFragrant != nil && p.IsFragrant != *f.IsFragrant {
		return false
	}

	if f.Featured && !p.Featured {
		return false
	}
	if f.IsNew && !p.IsNew {
		return false
	}

	return true
}
