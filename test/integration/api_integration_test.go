package integration

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/model"
	"storefront/internal/storage"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingFlow_Integration(t *testing.T) {
	server, _ := SetupServer(t, storage.NewMemoryBackend())
	runShoppingFlow(t, server)
}

func TestShoppingFlow_Postgres_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	CleanupDB(t, testDB.Pool)

	server, _ := SetupServer(t, storage.NewPostgresBackend(testDB.Pool, zerolog.Nop()))
	runShoppingFlow(t, server)
}

func runShoppingFlow(t *testing.T, server http.Handler) {
	c := NewClient(t, server)

	t.Run("browse filtered catalogue", func(t *testing.T) {
		resp := c.Do(http.MethodGet, "/api/products?category=Footwear&inStock=true", nil)
		require.Equal(t, http.StatusOK, resp.Status)
		require.NotEmpty(t, c.SessionID)

		var products []model.Product
		resp.Decode(t, &products)
		ids := make([]string, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"3", "4"}, ids)
	})

	t.Run("adding to cart while signed out is gated", func(t *testing.T) {
		resp := c.Do(http.MethodPost, "/api/cart/items", model.CartItemRequest{ProductID: "1"})

		assert.Equal(t, http.StatusUnauthorized, resp.Status)
		assert.Equal(t, []string{"Authentication required"}, resp.Titles())

		status := c.Do(http.MethodGet, "/api/auth/me", nil)
		var auth model.AuthStatus
		status.Decode(t, &auth)
		assert.True(t, auth.DialogOpen)
		assert.Equal(t, "/cart", auth.RedirectPath)
	})

	t.Run("login resumes the requested page", func(t *testing.T) {
		resp := c.Do(http.MethodPost, "/api/auth/login", model.LoginRequest{
			Email:    "user@example.com",
			Password: "user123",
		})

		require.Equal(t, http.StatusOK, resp.Status)
		var result model.AuthResult
		resp.Decode(t, &result)
		assert.True(t, result.Success)
		assert.Equal(t, "/cart", resp.Redirect)
		assert.Equal(t, []string{"Welcome back!"}, resp.Titles())
	})

	t.Run("cart accumulates lines", func(t *testing.T) {
		two := 2
		c.Do(http.MethodPost, "/api/cart/items", model.CartItemRequest{ProductID: "1", Quantity: &two})
		c.Do(http.MethodPost, "/api/cart/items", model.CartItemRequest{ProductID: "1"})
		c.Do(http.MethodPost, "/api/cart/items", model.CartItemRequest{ProductID: "2"})

		resp := c.Do(http.MethodGet, "/api/cart", nil)
		require.Equal(t, http.StatusOK, resp.Status)

		var cart model.CartView
		resp.Decode(t, &cart)
		require.Len(t, cart.Lines, 2)
		assert.Equal(t, 3, cart.Lines[0].Quantity)

		// 3 x 29.99 + 89.99 (list prices)
		assert.True(t, decimal.RequireFromString("179.96").Equal(cart.Total), cart.Total.String())
	})

	t.Run("favorites toggle", func(t *testing.T) {
		c.Do(http.MethodPost, "/api/favorites/2", nil)
		c.Do(http.MethodPost, "/api/favorites/5", nil)
		c.Do(http.MethodPost, "/api/favorites/2", nil)

		resp := c.Do(http.MethodGet, "/api/favorites", nil)
		var favorites []model.Product
		resp.Decode(t, &favorites)
		require.Len(t, favorites, 1)
		assert.Equal(t, "5", favorites[0].ID)
	})

	t.Run("booking a future date", func(t *testing.T) {
		date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		resp := c.Do(http.MethodPost, "/api/bookings", model.BookingRequest{ProductID: "6", Date: date})
		assert.Equal(t, http.StatusCreated, resp.Status)

		resp = c.Do(http.MethodPost, "/api/bookings", model.BookingRequest{ProductID: "6", Date: "2000-01-01"})
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Equal(t, []string{"Invalid date"}, resp.Titles())
	})

	t.Run("checkout empties the cart", func(t *testing.T) {
		resp := c.Do(http.MethodPost, "/api/cart/checkout", nil)
		require.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, []string{"Order placed!"}, resp.Titles())

		var cart model.CartView
		resp.Decode(t, &cart)
		assert.Empty(t, cart.Lines)
		assert.True(t, cart.Total.IsZero())

		resp = c.Do(http.MethodPost, "/api/cart/checkout", nil)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})

	t.Run("chatbot recommends", func(t *testing.T) {
		resp := c.Do(http.MethodPost, "/api/chat", model.ChatRequest{Message: "I need shoes"})
		require.Equal(t, http.StatusOK, resp.Status)

		var reply model.ChatReply
		resp.Decode(t, &reply)
		assert.Equal(t, model.SenderBot, reply.Message.Sender)
		assert.NotEmpty(t, reply.Message.Content)
	})

	t.Run("dashboard requires admin", func(t *testing.T) {
		resp := c.Do(http.MethodGet, "/api/dashboard/summary", nil)
		assert.Equal(t, http.StatusForbidden, resp.Status)
		assert.Equal(t, "/", resp.Redirect)
	})

	t.Run("logout keeps the session", func(t *testing.T) {
		id := c.SessionID
		resp := c.Do(http.MethodPost, "/api/auth/logout", nil)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, id, c.SessionID)

		resp = c.Do(http.MethodGet, "/api/cart", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
	})
}

func TestAdminDashboard_Integration(t *testing.T) {
	server, _ := SetupServer(t, storage.NewMemoryBackend())
	c := NewClient(t, server)

	resp := c.Do(http.MethodPost, "/api/auth/login", model.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin123",
	})
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, []string{"Welcome back, Admin!"}, resp.Titles())

	resp = c.Do(http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.Status)
	var summary model.SalesSummary
	resp.Decode(t, &summary)
	assert.Equal(t, 138, summary.TotalUnits)
	assert.Equal(t, "8609.05", summary.TotalRevenue.StringFixed(2))

	resp = c.Do(http.MethodPost, "/api/dashboard/products", model.ProductInput{
		Name:        "Rain Jacket",
		Description: "Waterproof shell",
		Price:       "120",
		Category:    "Clothing",
		InStock:     true,
	})
	require.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, []string{"Product added"}, resp.Titles())

	resp = c.Do(http.MethodGet, "/api/dashboard/products?search=rain", nil)
	var products []model.Product
	resp.Decode(t, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Rain Jacket", products[0].Name)
}

func TestSessionsAreIsolated_Integration(t *testing.T) {
	server, manager := SetupServer(t, storage.NewMemoryBackend())

	alice := NewClient(t, server)
	bob := NewClient(t, server)

	alice.Do(http.MethodPost, "/api/auth/login", model.LoginRequest{Email: "user@example.com", Password: "user123"})
	alice.Do(http.MethodPost, "/api/cart/items", model.CartItemRequest{ProductID: "2"})

	resp := bob.Do(http.MethodGet, "/api/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.NotEqual(t, alice.SessionID, bob.SessionID)
	assert.Equal(t, 2, manager.Len())
}
