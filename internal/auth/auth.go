// Package auth implements the mock sign-in flow of a session and the gate
// that every protected action goes through.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront/internal/clock"
	"storefront/internal/model"
	"storefront/internal/shell"
	"storefront/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Persisted flag keys.
const (
	KeyAuthenticated = "isAuthenticated"
	KeyRole          = "userRole"
)

const defaultPrompt = "Please sign in to continue."

// State holds the signed-in user of one session.
type State struct {
	mu           sync.Mutex
	user         *model.User
	loading      bool
	dialogOpen   bool
	redirectPath string

	store     storage.Store
	notifier  shell.Notifier
	navigator shell.Navigator
	latency   time.Duration
	newID     func() string
	logger    zerolog.Logger
}

// New creates a signed-out auth state. latency is the simulated network delay
// applied to Login and Register.
func New(
	store storage.Store,
	notifier shell.Notifier,
	navigator shell.Navigator,
	latency time.Duration,
	logger zerolog.Logger,
) *State {
	return &State{
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		latency:   latency,
		newID:     func() string { return uuid.NewString() },
		logger:    logger.With().Str("component", "auth").Logger(),
	}
}

// Login signs in with one of the demo accounts. A credential mismatch is
// reported through a notification and returns false with a nil error; the
// error is reserved for cancellation and storage failures.
func (s *State) Login(ctx context.Context, email, password string) (bool, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := clock.Sleep(ctx, s.latency); err != nil {
		return false, err
	}

	acct, ok := lookup(email, password)
	if !ok {
		s.logger.Warn().Str("email", email).Msg("login rejected")
		s.notifier.Notify(shell.Alert("Login failed", "Invalid email or password. Please try again."))
		return false, nil
	}

	if err := s.signIn(ctx, acct.user, acct.welcome); err != nil {
		return false, err
	}
	return true, nil
}

// Register creates a standard account and signs it in. Blank fields are a
// validation failure; no other checks are made.
func (s *State) Register(ctx context.Context, name, email, password string) (bool, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := clock.Sleep(ctx, s.latency); err != nil {
		return false, err
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		s.notifier.Notify(shell.Alert("Registration failed", "Please fill in all required fields."))
		return false, nil
	}

	user := model.User{
		ID:    s.newID(),
		Name:  name,
		Email: email,
	}

	welcome := shell.Info("Registration successful!", "Welcome to our shopping assistant.")
	if err := s.signIn(ctx, user, welcome); err != nil {
		return false, err
	}
	return true, nil
}

func (s *State) signIn(ctx context.Context, user model.User, welcome model.Notification) error {
	if err := s.store.Set(ctx, KeyAuthenticated, "true"); err != nil {
		return fmt.Errorf("failed to persist authentication flag: %w", err)
	}
	if err := s.store.Set(ctx, KeyRole, user.Role()); err != nil {
		if delErr := s.store.Delete(ctx, KeyAuthenticated); delErr != nil {
			s.logger.Error().Err(delErr).Msg("failed to roll back authentication flag")
		}
		return fmt.Errorf("failed to persist user role: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.dialogOpen = false
	target := s.redirectPath
	s.redirectPath = ""
	s.mu.Unlock()

	if target == "" {
		target = shell.PathHome
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("role", user.Role()).
		Str("redirect", target).
		Msg("user signed in")

	s.notifier.Notify(welcome)
	s.navigator.Navigate(target)

	return nil
}

// Logout clears the user and the persisted flags.
func (s *State) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyAuthenticated); err != nil {
		return fmt.Errorf("failed to clear authentication flag: %w", err)
	}
	if err := s.store.Delete(ctx, KeyRole); err != nil {
		return fmt.Errorf("failed to clear user role: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.logger.Info().Msg("user signed out")

	s.notifier.Notify(shell.Info("Logged out", "You have been successfully logged out."))
	s.navigator.Navigate(shell.PathHome)

	return nil
}

// RequireAuth runs action immediately when a user is signed in and returns
// true. Otherwise it records redirectPath (when non-empty), opens the sign-in
// dialog, shows one "Authentication required" notice with reason as its
// description and returns false. The action is never queued.
func (s *State) RequireAuth(redirectPath, reason string, action func()) bool {
	s.mu.Lock()
	authenticated := s.user != nil
	if !authenticated {
		if redirectPath != "" {
			s.redirectPath = redirectPath
		}
		s.dialogOpen = true
	}
	s.mu.Unlock()

	if !authenticated {
		if reason == "" {
			reason = defaultPrompt
		}
		s.logger.Debug().Str("redirect", redirectPath).Msg("authentication required")
		s.notifier.Notify(shell.Alert("Authentication required", reason))
		return false
	}

	action()
	return true
}

// IsAuthenticated reports whether a user is signed in.
func (s *State) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// User returns a copy of the signed-in user, or nil.
func (s *State) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoading reports whether a Login or Register call is waiting.
func (s *State) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *State) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// DialogOpen reports whether the sign-in dialog is showing.
func (s *State) DialogOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogOpen
}

// OpenDialog shows the sign-in dialog.
func (s *State) OpenDialog() {
	s.mu.Lock()
	s.dialogOpen = true
	s.mu.Unlock()
}

// CloseDialog hides the sign-in dialog. The redirect path is kept.
func (s *State) CloseDialog() {
	s.mu.Lock()
	s.dialogOpen = false
	s.mu.Unlock()
}

// RedirectPath returns the route to resume after signing in.
func (s *State) RedirectPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redirectPath
}

// SetRedirectPath records the route to resume after signing in.
func (s *State) SetRedirectPath(path string) {
	s.mu.Lock()
	s.redirectPath = path
	s.mu.Unlock()
}

// PersistedRole returns the stored role flag, or "" when none is stored.
func (s *State) PersistedRole(ctx context.Context) (string, error) {
	role, err := s.store.Get(ctx, KeyRole)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read user role: %w", err)
	}
	return role, nil
}

// Status summarises the state for API responses.
func (s *State) Status(ctx context.Context) (model.AuthStatus, error) {
	role, err := s.PersistedRole(ctx)
	if err != nil {
		return model.AuthStatus{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := model.AuthStatus{
		IsAuthenticated: s.user != nil,
		Role:            role,
		DialogOpen:      s.dialogOpen,
		RedirectPath:    s.redirectPath,
	}
	if s.user != nil {
		u := *s.user
		status.User = &u
	}
	return status, nil
}
