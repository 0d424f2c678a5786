package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/model"
	"storefront/internal/session"
	"storefront/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// response mirrors Envelope with raw data for per-test decoding.
type response struct {
	Data          json.RawMessage      `json:"data"`
	Error         *model.ErrorResponse `json:"error"`
	Notifications []model.Notification `json:"notifications"`
	Redirect      string               `json:"redirect"`
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	m := session.NewManager(storage.NewMemoryBackend(), catalog.NewMock(), session.Timing{}, zerolog.Nop())
	return m.Create()
}

func signIn(t *testing.T, s *session.Session, email, password string) {
	t.Helper()
	ok, err := s.Auth.Login(context.Background(), email, password)
	require.NoError(t, err)
	require.True(t, ok)
	s.Notifications.Drain()
	s.Navigation.Take()
}

// withSession attaches s to every request.
func withSession(s *session.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), s)))
		})
	}
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr, resp
}

func titles(ns []model.Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Title)
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "Auth required", err: model.ErrAuthRequired, wantStatus: http.StatusUnauthorized, wantCode: model.ErrCodeAuthRequired},
		{name: "Forbidden", err: model.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: model.ErrCodeForbidden},
		{name: "Not found", err: model.ErrProductNotFound, wantStatus: http.StatusNotFound, wantCode: model.ErrCodeProductNotFound},
		{name: "Validation", err: model.ErrInvalidQuantity, wantStatus: http.StatusBadRequest, wantCode: model.ErrCodeInvalidQuantity},
		{name: "Wrapped domain error", err: errors.Join(errors.New("ctx"), model.ErrEmptyCart), wantStatus: http.StatusBadRequest, wantCode: model.ErrCodeEmptyCart},
		{name: "Cancelled", err: context.Canceled, wantStatus: http.StatusRequestTimeout, wantCode: model.ErrCodeRequestCancelled},
		{name: "Infrastructure", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: model.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Error)
		})
	}
}

func TestWriteJSON_WithoutSession(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, "ok")
	})

	rr, resp := do(t, h, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `"ok"`, string(resp.Data))
	assert.NotNil(t, resp.Notifications)
	assert.Empty(t, resp.Notifications)
}

func TestCurrentSession_Missing(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/cart", NewCartHandler(catalog.NewMock(), zerolog.Nop()).Get)

	rr, resp := do(t, r, http.MethodGet, "/api/cart", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, model.ErrCodeInternalError, resp.Error.Error)
}
