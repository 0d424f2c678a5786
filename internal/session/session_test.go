package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/auth"
	"storefront/internal/catalog"
	"storefront/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, storage.Backend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	return NewManager(backend, catalog.NewMock(), Timing{}, zerolog.Nop()), backend
}

func TestManager_Resolve(t *testing.T) {
	m, _ := newTestManager(t)

	s, created := m.Resolve("")
	require.True(t, created)
	require.NotEmpty(t, s.ID)

	again, created := m.Resolve(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := m.Resolve("unknown-id")
	assert.True(t, created)
	assert.NotEqual(t, "unknown-id", other.ID)
	assert.Equal(t, 2, m.Len())
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	a := m.Create()
	b := m.Create()

	ok, err := a.Auth.Login(ctx, "user@example.com", "user123")
	require.NoError(t, err)
	require.True(t, ok)

	p, err := m.Catalog().Get("1")
	require.NoError(t, err)
	require.NoError(t, a.App.AddToCart(p, 2))

	assert.Equal(t, 2, a.App.CartItemQuantity("1"))
	assert.Equal(t, 0, b.App.CartItemQuantity("1"))
	assert.False(t, b.Auth.IsAuthenticated())

	assert.Equal(t, "/", a.Navigation.Take())
	assert.Len(t, a.Notifications.Drain(), 2)
	assert.Empty(t, b.Notifications.Drain())
}

func TestManager_GateIsShared(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Create()

	p, err := m.Catalog().Get("3")
	require.NoError(t, err)

	assert.Error(t, s.App.AddToCart(p, 1))
	assert.True(t, s.Auth.DialogOpen())
	assert.Equal(t, "/cart", s.Auth.RedirectPath())
}

func TestManager_Delete(t *testing.T) {
	m, backend := newTestManager(t)
	ctx := context.Background()

	s := m.Create()
	_, err := s.Auth.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, s.ID))

	_, ok := m.Get(s.ID)
	assert.False(t, ok)
	_, err = backend.Scope(s.ID).Get(ctx, auth.KeyAuthenticated)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, m.Delete(ctx, "missing"))
}

func TestManager_ChatRecommendsFromCatalog(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Create()

	reply, err := s.Chat.Send(context.Background(), "shoes")
	require.NoError(t, err)
	require.Len(t, reply.Recommendations, 1)
	assert.Equal(t, "Sneakers", reply.Recommendations[0].Name)
}

func TestContext(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Create()

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	got, ok := FromContext(NewContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}

// fakeNow is a settable clock for the manager.
type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestManager_Sweep(t *testing.T) {
	m, backend := newTestManager(t)
	clock := &fakeNow{t: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	m.now = clock.Now
	ctx := context.Background()

	idle := m.Create()
	_, err := idle.Auth.Login(ctx, "user@example.com", "user123")
	require.NoError(t, err)

	active := m.Create()

	clock.Advance(30 * time.Minute)
	_, created := m.Resolve(active.ID)
	require.False(t, created)

	clock.Advance(45 * time.Minute)

	removed, err := m.Sweep(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := m.Get(idle.ID)
	assert.False(t, ok)
	_, ok = m.Get(active.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, m.Len())

	_, err = backend.Scope(idle.ID).Get(ctx, auth.KeyAuthenticated)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	again, created := m.Resolve(idle.ID)
	assert.True(t, created)
	assert.NotEqual(t, idle.ID, again.ID)
}

func TestManager_Sweep_SkipsBusySessions(t *testing.T) {
	m, _ := newTestManager(t)
	clock := &fakeNow{t: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	m.now = clock.Now

	s := m.Create()
	clock.Advance(2 * time.Hour)

	s.Lock()
	removed, err := m.Sweep(context.Background(), time.Hour)
	s.Unlock()

	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, m.Len())

	removed, err = m.Sweep(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, m.Len())
}

func TestManager_RunSweeper(t *testing.T) {
	m, _ := newTestManager(t)
	for i := 0; i < 5; i++ {
		m.Create()
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.RunSweeper(ctx, 5*time.Millisecond, time.Nanosecond)
	}()

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
