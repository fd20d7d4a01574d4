package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/momomonster549/ecom-macsorchids/pkg/httputil"
	"github.com/momomonster549/ecom-macsorchids/pkg/pagination"

	"github.com/momomonster549/ecom-macsorchids/internal/catalog"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	catalog catalog.Provider
	logger  *slog.Logger
}

// NewProductHandler creates a new catalog HTTP handler.
func NewProductHandler(provider catalog.Provider, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: provider,
		logger:  logger,
	}
}

// ListProducts handles GET /api/v1/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	products, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	params := pagination.FromRequest(r)
	page := pagination.Slice(products, params)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: pagination.NewResult(page, len(products), params),
	})
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// RelatedProducts handles GET /api/v1/products/{id}/related
func (h *ProductHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	related, err := h.catalog.RelatedProducts(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: related})
}

// Reviews handles GET /api/v1/products/{id}/reviews
func (h *ProductHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reviews, err := h.catalog.Reviews(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: reviews})
}

// Categories handles GET /api/v1/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}

// Subcategories handles GET /api/v1/categories/{category}/subcategories
func (h *ProductHandler) Subcategories(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	subcategories, err := h.catalog.Subcategories(r.Context(), category)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: subcategories})
}

// filterFromQuery builds a catalog filter from query parameters. Malformed
// numeric or boolean values are ignored rather than rejected.
func filterFromQuery(r *http.Request) catalog.Filter {
	q := r.URL.Query()

	f := catalog.Filter{
		SearchQuery:    q.Get("q"),
		Category:       q.Get("category"),
		Subcategory:    q.Get("subcategory"),
		Difficulty:     q.Get("difficulty"),
		BloomingSeason: q.Get("blooming_season"),
	}

	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.ParseBool(q.Get("in_stock")); err == nil {
		f.InStockOnly = v
	}
	if v, err := strconv.ParseBool(q.Get("fragrant")); err == nil {
		f.IsFragrant = &v
	}
	if v, err := strconv.ParseBool(q.Get("featured")); err == nil {
		f.Featured = v
	}
	if v, err := strconv.ParseBool(q.Get("new")); err == nil {
		f.IsNew = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		f.Limit = v
	}

	return f
}
