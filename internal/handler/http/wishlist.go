package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/momomonster549/ecom-macsorchids/pkg/httputil"
	"github.com/momomonster549/ecom-macsorchids/pkg/validator"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
	"github.com/momomonster549/ecom-macsorchids/internal/service"
)

// WishlistHandler handles HTTP requests for wishlist endpoints. The
// move-to-cart composites live here: a cart add followed by a wishlist
// remove, deliberately not atomic. A failure between the two leaves the
// product in both places, which is harmless.
type WishlistHandler struct {
	service *service.WishlistService
	cart    *service.CartService
	logger  *slog.Logger
}

// NewWishlistHandler creates a new wishlist HTTP handler.
func NewWishlistHandler(svc *service.WishlistService, cart *service.CartService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: svc,
		cart:    cart,
		logger:  logger,
	}
}

// AddToWishlistRequest is the JSON request body for adding a product.
type AddToWishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// GetWishlist handles GET /api/v1/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	wishlist, err := h.service.GetWishlist(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlist})
}

// AddToWishlist handles POST /api/v1/wishlist/items
func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req AddToWishlistRequest
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

	wishlist, err := h.service.AddToWishlist(r.Context(), userID, req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlist})
}

// RemoveFromWishlist handles DELETE /api/v1/wishlist/items/{productId}
func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	wishlist, err := h.service.RemoveFromWishlist(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlist})
}

// ClearWishlist handles DELETE /api/v1/wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	wishlist, err := h.service.ClearWishlist(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlist})
}

// Contains handles GET /api/v1/wishlist/items/{productId}
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	in, err := h.service.IsInWishlist(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]bool{"in_wishlist": in},
	})
}

// MoveToCart handles POST /api/v1/wishlist/{productId}/move-to-cart.
// The snapshot held by the wishlist entry is what goes into the cart; the
// cart add happens first, and only if it succeeds is the entry removed.
func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	wishlist, err := h.service.GetWishlist(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var entry *domain.Product
	for i := range wishlist.Entries {
		if wishlist.Entries[i].ID == productID {
			entry = &wishlist.Entries[i]
			break
		}
	}
	if entry == nil {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "NOT_FOUND", Message: "product is not on the wishlist"},
		})
		return
	}

	cart, err := h.cart.AddProduct(r.Context(), userID, *entry)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	remaining, err := h.service.RemoveFromWishlist(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]any{"cart": cart, "wishlist": remaining},
	})
}

// MoveAllToCart handles POST /api/v1/wishlist/move-all. Every entry moves;
// each one is added to the cart from its wishlist snapshot, then removed.
func (h *WishlistHandler) MoveAllToCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	wishlist, err := h.service.GetWishlist(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	moved := 0
	for _, entry := range wishlist.Entries {
		if _, err := h.cart.AddProduct(r.Context(), userID, entry); err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		if _, err := h.service.RemoveFromWishlist(r.Context(), userID, entry.ID); err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		moved++
	}

	cart, err := h.cart.GetCart(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	remaining, err := h.service.GetWishlist(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]any{
			"moved":    moved,
			"cart":     cart,
			"wishlist": remaining,
		},
	})
}
