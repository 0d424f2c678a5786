// Package storage provides the key-value store that backs persisted session
// flags. Each session works against its own namespace.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("storage: key not found")

// Store is a namespaced key-value store.
type Store interface {
	// Get returns the value for key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key in the namespace.
	Clear(ctx context.Context) error
}

// Backend hands out namespaced stores over one underlying connection.
type Backend interface {
	// Scope returns the store for namespace.
	Scope(namespace string) Store

	// Close releases the underlying connection.
	Close() error
}
