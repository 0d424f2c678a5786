package handler

import (
	"net/http"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// AuthHandler handles sign-in, registration and the sign-in dialog.
type AuthHandler struct {
	logger zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		logger: logger.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/auth/login. Rejected credentials are a 200 with
// success set to false.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
		return
	}

	success, err := s.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, model.AuthResult{Success: success, User: s.Auth.User()})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
		return
	}

	success, err := s.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, model.AuthResult{Success: success, User: s.Auth.User()})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := s.Auth.Logout(r.Context()); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	h.status(w, r)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	h.status(w, r)
}

// dialogRequest optionally records where to go after signing in.
type dialogRequest struct {
	RedirectPath string `json:"redirectPath"`
}

// OpenDialog handles POST /api/auth/dialog. The body is optional.
func (h *AuthHandler) OpenDialog(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req dialogRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
			return
		}
	}

	if req.RedirectPath != "" {
		s.Auth.SetRedirectPath(req.RedirectPath)
	}
	s.Auth.OpenDialog()

	h.status(w, r)
}

// CloseDialog handles DELETE /api/auth/dialog.
func (h *AuthHandler) CloseDialog(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	s.Auth.CloseDialog()
	h.status(w, r)
}

func (h *AuthHandler) status(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	status, err := s.Auth.Status(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, status)
}
