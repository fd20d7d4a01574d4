package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/momomonster549/ecom-macsorchids/pkg/httputil"
	"github.com/momomonster549/ecom-macsorchids/pkg/validator"

	"github.com/momomonster549/ecom-macsorchids/internal/content"
	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// ContentHandler handles HTTP requests for care guides, store info, and the
// contact form.
type ContentHandler struct {
	service *content.Service
	logger  *slog.Logger
}

// NewContentHandler creates a new content HTTP handler.
func NewContentHandler(svc *content.Service, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		service: svc,
		logger:  logger,
	}
}

// ContactRequest is the JSON request body for the contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// ListGuides handles GET /api/v1/guides
func (h *ContentHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	guides := h.service.ListGuides(r.Context(), r.URL.Query().Get("category"))
	if guides == nil {
		guides = []domain.CareGuide{}
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: guides})
}

// GetGuide handles GET /api/v1/guides/{slug}
func (h *ContentHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	guide, err := h.service.GuideBySlug(r.Context(), slug)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: guide})
}

// FeaturedGuide handles GET /api/v1/guides/featured
func (h *ContentHandler) FeaturedGuide(w http.ResponseWriter, r *http.Request) {
	guide, err := h.service.FeaturedGuide(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: guide})
}

// StoreInfo handles GET /api/v1/store-info
func (h *ContentHandler) StoreInfo(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.StoreInfo(r.Context())})
}

// SubmitContact handles POST /api/v1/contact
func (h *ContentHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
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

	msg := domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.service.SubmitContact(r.Context(), msg); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusAccepted, httputil.Response{
		Data: map[string]string{"status": "received"},
	})
}
