package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/momomonster549/ecom-macsorchids/pkg/httputil"
	"github.com/momomonster549/ecom-macsorchids/pkg/validator"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
	"github.com/momomonster549/ecom-macsorchids/internal/service"
)

// CheckoutHandler handles HTTP requests for the simulated checkout flow.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// StartCheckoutRequest is the JSON request body for opening a session.
type StartCheckoutRequest struct {
	CouponCode string `json:"coupon_code"`
}

// InformationRequest is the JSON request body for the information step.
type InformationRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
}

// ShippingRequest is the JSON request body for the shipping step.
type ShippingRequest struct {
	Method string `json:"method" validate:"required,oneof=standard express"`
}

// Start handles POST /api/v1/checkout
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req StartCheckoutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
			})
			return
		}
	}

	session, err := h.service.StartCheckout(r.Context(), userID, req.CouponCode)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: session})
}

// GetSession handles GET /api/v1/checkout
func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	session, err := h.service.GetSession(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// SubmitInformation handles POST /api/v1/checkout/information
func (h *CheckoutHandler) SubmitInformation(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req InformationRequest
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

	contact := domain.ContactInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
	}

	session, err := h.service.SubmitInformation(r.Context(), userID, contact)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// SubmitShipping handles POST /api/v1/checkout/shipping
func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req ShippingRequest
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

	session, err := h.service.SubmitShipping(r.Context(), userID, req.Method)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// SubmitPayment handles POST /api/v1/checkout/payment
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	order, err := h.service.SubmitPayment(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}
