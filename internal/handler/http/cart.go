package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/momomonster549/ecom-macsorchids/pkg/httputil"
	"github.com/momomonster549/ecom-macsorchids/pkg/validator"

	"github.com/momomonster549/ecom-macsorchids/internal/service"
)

// MaxQuantityPerLine caps the quantity a shopper can request per line. The
// store itself imposes no upper bound; this is a storefront policy.
const MaxQuantityPerLine = 10

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// AddToCartRequest is the JSON request body for adding a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID *int   `json:"variant_id,omitempty"`
}

// UpdateQuantityRequest is the JSON request body for setting a line quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"lte=10"`
}

// QuoteRequest selects shipping method and coupon for a price quote.
type QuoteRequest struct {
	ShippingMethod string `json:"shipping_method"`
	CouponCode     string `json:"coupon_code"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	cart, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// AddToCart handles POST /api/v1/cart/items
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.AddToCart(r.Context(), userID, req.ProductID, req.VariantID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// UpdateQuantity handles PUT /api/v1/cart/items/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// RemoveFromCart handles DELETE /api/v1/cart/items/{productId}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	cart, err := h.service.RemoveFromCart(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	cart, err := h.service.ClearCart(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// Quote handles GET /api/v1/cart/quote
func (h *CartHandler) Quote(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	cart, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	breakdown := service.Quote(cart.Lines, service.QuoteOptions{
		ShippingMethod: r.URL.Query().Get("shipping_method"),
		CouponCode:     r.URL.Query().Get("coupon"),
	})

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: breakdown})
}
