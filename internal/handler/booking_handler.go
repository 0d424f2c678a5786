package handler

import (
	"net/http"
	"time"

	"storefront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// bookingDateLayout is the wire layout of booking dates.
const bookingDateLayout = "2006-01-02"

// BookingHandler handles booking HTTP requests.
type BookingHandler struct {
	catalog  ProductCatalog
	location *time.Location
	logger   zerolog.Logger
}

// NewBookingHandler creates a new booking handler. Dates are interpreted in loc.
func NewBookingHandler(catalog ProductCatalog, loc *time.Location, logger zerolog.Logger) *BookingHandler {
	if loc == nil {
		loc = time.Local
	}
	return &BookingHandler{
		catalog:  catalog,
		location: loc,
		logger:   logger.With().Str("handler", "booking").Logger(),
	}
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := requireSignedIn(s, viewBookingsPrompt); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, s.App.Bookings())
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.BookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
		return
	}
	if req.ProductID == "" || req.Date == "" {
		writeError(w, r, model.ErrMissingField, h.logger)
		return
	}

	date, err := time.ParseInLocation(bookingDateLayout, req.Date, h.location)
	if err != nil {
		writeError(w, r, model.ErrInvalidBookingDate, h.logger)
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err := s.App.BookProduct(product, date); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusCreated, s.App.Bookings())
}

// Remove handles DELETE /api/bookings/{id}, where id is the product ID.
func (h *BookingHandler) Remove(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	s.App.RemoveBooking(chi.URLParam(r, "id"))
	writeJSON(w, r, http.StatusOK, s.App.Bookings())
}
