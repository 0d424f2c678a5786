package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// FavoritesHandler handles favorites HTTP requests.
type FavoritesHandler struct {
	catalog ProductCatalog
	logger  zerolog.Logger
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(catalog ProductCatalog, logger zerolog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "favorites").Logger(),
	}
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := requireSignedIn(s, viewFavoritesPrompt); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, s.App.Favorites())
}

// Toggle handles POST /api/favorites/{id}. Posting a favorite again removes it.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	product, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err := s.App.AddToFavorites(product); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, s.App.Favorites())
}

// Remove handles DELETE /api/favorites/{id}.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	s.App.RemoveFromFavorites(chi.URLParam(r, "id"))
	writeJSON(w, r, http.StatusOK, s.App.Favorites())
}
