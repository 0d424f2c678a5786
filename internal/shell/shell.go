// Package shell holds the collaborators supplied by the surrounding
// application: transient notifications and navigation.
package shell

import (
	"sync"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(n model.Notification)
}

// Navigator moves the user to a client-side route.
type Navigator interface {
	Navigate(path string)
}

// Client-side routes used as navigation and redirect targets.
const (
	PathHome      = "/"
	PathSignIn    = "/signin"
	PathProducts  = "/products"
	PathDashboard = "/dashboard"
	PathCart      = "/cart"
	PathFavorites = "/favorites"
	PathProfile   = "/profile"
)

// ProductPath returns the detail route of a product.
func ProductPath(id string) string {
	return PathProducts + "/" + id
}

// Info builds a default notification.
func Info(title, description string) model.Notification {
	return model.Notification{Title: title, Description: description, Variant: model.VariantDefault}
}

// Alert builds a destructive notification.
func Alert(title, description string) model.Notification {
	return model.Notification{Title: title, Description: description, Variant: model.VariantDestructive}
}

// Tray collects notifications until a response drains them.
type Tray struct {
	mu      sync.Mutex
	pending []model.Notification
	logger  zerolog.Logger
}

// NewTray creates an empty notification tray.
func NewTray(logger zerolog.Logger) *Tray {
	return &Tray{logger: logger.With().Str("component", "notifications").Logger()}
}

// Notify queues n.
func (t *Tray) Notify(n model.Notification) {
	t.logger.Debug().
		Str("title", n.Title).
		Str("variant", n.Variant).
		Msg("notification")

	t.mu.Lock()
	t.pending = append(t.pending, n)
	t.mu.Unlock()
}

// Drain returns and forgets the queued notifications.
func (t *Tray) Drain() []model.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.pending
	t.pending = nil
	if out == nil {
		return []model.Notification{}
	}
	return out
}

// Recorder remembers the most recent navigation target.
type Recorder struct {
	mu   sync.Mutex
	path string
}

// NewRecorder creates a navigation recorder with no pending target.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Navigate records path as the pending target.
func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	r.path = path
	r.mu.Unlock()
}

// Take returns and clears the pending target.
func (r *Recorder) Take() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path
	r.path = ""
	return path
}
