// Package session keeps the per-client component graph, keyed by session ID.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"storefront/internal/appstate"
	"storefront/internal/auth"
	"storefront/internal/catalog"
	"storefront/internal/chatbot"
	"storefront/internal/dashboard"
	"storefront/internal/shell"
	"storefront/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Timing holds the simulated latencies applied by session components.
type Timing struct {
	AuthLatency   time.Duration
	CheckoutDelay time.Duration
	ChatDelay     time.Duration
}

// Session is the state of one client. Requests on a session are serialized
// with Lock and Unlock.
type Session struct {
	mu       sync.Mutex
	lastSeen atomic.Int64 // unix nanoseconds

	ID            string
	Created       time.Time
	Store         storage.Store
	Notifications *shell.Tray
	Navigation    *shell.Recorder
	Auth          *auth.State
	App           *appstate.State
	Chat          *chatbot.Bot
	Dashboard     *dashboard.Dashboard
}

// Lock gives the caller exclusive use of the session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// LastSeen returns when the session was last resolved.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// Manager creates and finds sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	backend storage.Backend
	catalog *catalog.Catalog
	timing  Timing
	newID   func() string
	now     func() time.Time
	logger  zerolog.Logger
}

// NewManager creates an empty registry. Session stores are scoped from
// backend by session ID.
func NewManager(backend storage.Backend, cat *catalog.Catalog, timing Timing, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		backend:  backend,
		catalog:  cat,
		timing:   timing,
		newID:    func() string { return uuid.NewString() },
		now:      time.Now,
		logger:   logger.With().Str("component", "session").Logger(),
	}
}

// Catalog returns the shared product catalogue.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Resolve returns the session with id, creating a fresh one under a new ID
// when id is empty or unknown. created reports which happened.
func (m *Manager) Resolve(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			s.touch(m.now())
			return s, false
		}
	}
	return m.Create(), true
}

// Create registers a new signed-out session.
func (m *Manager) Create() *Session {
	s := m.build(m.newID())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Debug().Str("session_id", s.ID).Msg("session created")
	return s
}

func (m *Manager) build(id string) *Session {
	logger := m.logger.With().Str("session_id", id).Logger()

	store := m.backend.Scope(id)
	tray := shell.NewTray(logger)
	nav := shell.NewRecorder()

	authState := auth.New(store, tray, nav, m.timing.AuthLatency, logger)

	created := m.now()

	s := &Session{
		ID:            id,
		Created:       created,
		Store:         store,
		Notifications: tray,
		Navigation:    nav,
		Auth:          authState,
		App:           appstate.New(authState, tray, m.timing.CheckoutDelay, logger),
		Chat:          chatbot.New(chatbot.Pool(m.catalog, chatbot.DefaultPoolIDs...), m.timing.ChatDelay, logger),
		Dashboard:     dashboard.New(authState, m.catalog, store, tray, nav, logger),
	}
	s.touch(created)
	return s
}

// Delete forgets the session and clears its persisted keys.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	if err := s.Store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", id, err)
	}
	return nil
}

// Sweep deletes every session not resolved within idle and returns how many
// were removed. Sessions serving a request are skipped.
func (m *Manager) Sweep(ctx context.Context, idle time.Duration) (int, error) {
	cutoff := m.now().Add(-idle)

	m.mu.RLock()
	candidates := make([]*Session, 0)
	for _, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			candidates = append(candidates, s)
		}
	}
	m.mu.RUnlock()

	removed := 0
	for _, s := range candidates {
		if !s.mu.TryLock() {
			continue
		}
		if !s.LastSeen().Before(cutoff) {
			s.mu.Unlock()
			continue
		}
		err := m.Delete(ctx, s.ID)
		s.mu.Unlock()
		if err != nil {
			return removed, err
		}
		removed++
	}

	if removed > 0 {
		m.logger.Info().Int("removed", removed).Int("live", m.Len()).Msg("idle sessions evicted")
	}
	return removed, nil
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.Sweep(ctx, idle); err != nil && ctx.Err() == nil {
				m.logger.Error().Err(err).Msg("failed to evict idle sessions")
			}
		}
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
