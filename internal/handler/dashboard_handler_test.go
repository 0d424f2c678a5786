package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/model"
	"storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardRouter(s *session.Session) http.Handler {
	h := NewDashboardHandler(zerolog.Nop())
	r := chi.NewRouter()
	r.Use(withSession(s))
	r.Get("/api/dashboard/reports", h.Reports)
	r.Get("/api/dashboard/summary", h.Summary)
	r.Get("/api/dashboard/users", h.Users)
	r.Get("/api/dashboard/products", h.Products)
	r.Post("/api/dashboard/products", h.AddProduct)
	return r
}

func TestDashboardHandler_Access(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		wantStatus   int
		wantRedirect string
	}{
		{name: "Signed out", wantStatus: http.StatusUnauthorized, wantRedirect: "/signin"},
		{name: "Standard user", email: "user@example.com", password: "user123", wantStatus: http.StatusForbidden, wantRedirect: "/"},
		{name: "Admin", email: "admin@example.com", password: "admin123", wantStatus: http.StatusOK},
	}

	paths := []string{
		"/api/dashboard/reports",
		"/api/dashboard/summary",
		"/api/dashboard/users",
		"/api/dashboard/products",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			if tt.email != "" {
				signIn(t, s, tt.email, tt.password)
			}
			router := dashboardRouter(s)

			for _, path := range paths {
				rr, resp := do(t, router, http.MethodGet, path, nil)
				assert.Equal(t, tt.wantStatus, rr.Code, path)
				assert.Equal(t, tt.wantRedirect, resp.Redirect, path)
			}
		})
	}
}

func TestDashboardHandler_Data(t *testing.T) {
	s := newTestSession(t)
	signIn(t, s, "admin@example.com", "admin123")
	router := dashboardRouter(s)

	_, resp := do(t, router, http.MethodGet, "/api/dashboard/reports", nil)
	var reports []model.SalesReport
	require.NoError(t, json.Unmarshal(resp.Data, &reports))
	assert.Len(t, reports, 7)

	_, resp = do(t, router, http.MethodGet, "/api/dashboard/summary", nil)
	var summary model.SalesSummary
	require.NoError(t, json.Unmarshal(resp.Data, &summary))
	assert.Equal(t, 138, summary.TotalUnits)
	assert.Equal(t, "Sneakers", summary.TopProducts[0].ProductName)

	_, resp = do(t, router, http.MethodGet, "/api/dashboard/users?search=john", nil)
	var users []model.DashboardUser
	require.NoError(t, json.Unmarshal(resp.Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "John Doe", users[0].Name)
}

func TestDashboardHandler_AddProduct(t *testing.T) {
	s := newTestSession(t)
	signIn(t, s, "admin@example.com", "admin123")
	router := dashboardRouter(s)

	rr, resp := do(t, router, http.MethodPost, "/api/dashboard/products",
		model.ProductInput{Name: "Canvas Tote", Price: "18.00", Category: "Accessories"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var p model.Product
	require.NoError(t, json.Unmarshal(resp.Data, &p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, []string{"Product added"}, titles(resp.Notifications))

	_, resp = do(t, router, http.MethodGet, "/api/dashboard/products?search=tote", nil)
	var products []model.Product
	require.NoError(t, json.Unmarshal(resp.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, p.ID, products[0].ID)

	rr, resp = do(t, router, http.MethodPost, "/api/dashboard/products", model.ProductInput{Name: "Tote", Price: "free"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, model.ErrCodeInvalidPrice, resp.Error.Error)
	assert.Equal(t, []string{"Invalid product"}, titles(resp.Notifications))

	rr, _ = do(t, router, http.MethodPost, "/api/dashboard/products", "[")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
