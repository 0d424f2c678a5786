package handler

import (
	"net/http"

	"storefront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	catalog ProductCatalog
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(catalog ProductCatalog, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := requireSignedIn(s, viewCartPrompt); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, s.App.Cart())
}

// AddItem handles POST /api/cart/items. Quantity defaults to 1.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
		return
	}
	if req.ProductID == "" {
		writeError(w, r, model.ErrMissingField, h.logger)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err := s.App.AddToCart(product, quantity); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, s.App.Cart())
}

// UpdateItem handles PUT /api/cart/items/{id}. A quantity of zero or less
// removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.QuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
		return
	}

	s.App.UpdateCartQuantity(chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, r, http.StatusOK, s.App.Cart())
}

// RemoveItem handles DELETE /api/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	s.App.RemoveFromCart(chi.URLParam(r, "id"))
	writeJSON(w, r, http.StatusOK, s.App.Cart())
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	s.App.ClearCart()
	writeJSON(w, r, http.StatusOK, s.App.Cart())
}

// Checkout handles POST /api/cart/checkout.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := s.App.Checkout(r.Context()); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, s.App.Cart())
}
