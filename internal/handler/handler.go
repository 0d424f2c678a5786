package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/model"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// Envelope wraps every API response. Notifications and Redirect carry the
// toasts and navigation produced while serving the request.
type Envelope struct {
	Data          interface{}          `json:"data,omitempty"`
	Error         *model.ErrorResponse `json:"error,omitempty"`
	Notifications []model.Notification `json:"notifications"`
	Redirect      string               `json:"redirect,omitempty"`
}

// writeJSON writes data in an envelope with the given status code, draining
// the session's pending notifications and navigation target.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeEnvelope(w, r, status, Envelope{Data: data})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	env.Notifications = []model.Notification{}
	if s, ok := session.FromContext(r.Context()); ok {
		env.Notifications = s.Notifications.Drain()
		env.Redirect = s.Navigation.Take()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; an encode failure means the client went away.
	_ = json.NewEncoder(w).Encode(env)
}

// writeError maps err to a status code and writes it in an envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	status, body := classify(err)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("code", body.Error).
		Int("status", status).
		Msg("handler error")

	writeEnvelope(w, r, status, Envelope{Error: body})
}

// writeBadRequest reports malformed input that never reached the domain.
func writeBadRequest(w http.ResponseWriter, r *http.Request, code, message string, logger zerolog.Logger) {
	writeError(w, r, model.NewDomainError(code, message), logger)
}

func classify(err error) (int, *model.ErrorResponse) {
	if de, ok := model.AsDomainError(err); ok {
		return statusFor(de.Code), &model.ErrorResponse{Error: de.Code, Message: de.Message}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusRequestTimeout, &model.ErrorResponse{
			Error:   model.ErrCodeRequestCancelled,
			Message: "request cancelled",
		}
	}
	return http.StatusInternalServerError, &model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: "internal server error",
	}
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeAuthRequired:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeProductNotFound:
		return http.StatusNotFound
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

// decodeJSON reads at most maxBodyBytes of the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// currentSession returns the session attached by the session middleware.
func currentSession(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (*session.Session, bool) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, r, errors.New("no session in request context"), logger)
	}
	return s, ok
}
