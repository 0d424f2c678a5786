package handler

import (
	"net/http"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// DashboardHandler handles the admin dashboard endpoints.
type DashboardHandler struct {
	logger zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		logger: logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Reports handles GET /api/dashboard/reports.
func (h *DashboardHandler) Reports(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	reports, err := s.Dashboard.Reports()
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, reports)
}

// Summary handles GET /api/dashboard/summary.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	summary, err := s.Dashboard.Summary()
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, summary)
}

// Users handles GET /api/dashboard/users?search=.
func (h *DashboardHandler) Users(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	users, err := s.Dashboard.Users(r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, users)
}

// Products handles GET /api/dashboard/products?search=.
func (h *DashboardHandler) Products(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	products, err := s.Dashboard.Products(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, products)
}

// AddProduct handles POST /api/dashboard/products.
func (h *DashboardHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var in model.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
		return
	}

	product, err := s.Dashboard.AddProduct(r.Context(), in)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusCreated, product)
}
