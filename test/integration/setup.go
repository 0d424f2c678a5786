package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/router"
	"storefront/internal/session"
	"storefront/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the session store schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPoolFromURL(ctx, connStr, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB removes every stored session flag.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM session_kv"); err != nil {
		t.Logf("failed to clean session_kv: %v", err)
	}
}

// SetupServer builds the full HTTP stack over backend with no simulated delays.
func SetupServer(t *testing.T, backend storage.Backend) (http.Handler, *session.Manager) {
	t.Helper()

	logger := zerolog.Nop()
	manager := session.NewManager(backend, catalog.NewMock(), session.Timing{}, logger)
	return router.New(router.NewHandlers(manager, logger), manager, logger), manager
}

// Response mirrors the API envelope with raw data.
type Response struct {
	Status        int
	Data          json.RawMessage      `json:"data"`
	Error         *model.ErrorResponse `json:"error"`
	Notifications []model.Notification `json:"notifications"`
	Redirect      string               `json:"redirect"`
}

// Client drives the API as one browser tab, carrying the session header.
type Client struct {
	t         *testing.T
	server    http.Handler
	SessionID string
}

// NewClient creates a client with no session yet.
func NewClient(t *testing.T, server http.Handler) *Client {
	return &Client{t: t, server: server}
}

// Do sends one request and decodes the envelope.
func (c *Client) Do(method, path string, body interface{}) Response {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.SessionID != "" {
		req.Header.Set(middleware.SessionHeader, c.SessionID)
	}

	w := httptest.NewRecorder()
	c.server.ServeHTTP(w, req)

	c.SessionID = w.Header().Get(middleware.SessionHeader)

	resp := Response{Status: w.Code}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// Decode unmarshals the response data into v.
func (r Response) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v))
}

// Titles lists the notification titles in order.
func (r Response) Titles() []string {
	out := make([]string, 0, len(r.Notifications))
	for _, n := range r.Notifications {
		out = append(out, n.Title)
	}
	return out
}
