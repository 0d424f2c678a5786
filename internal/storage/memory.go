package storage

import (
	"context"
	"sync"
)

// memoryBackend keeps all namespaces in process memory.
type memoryBackend struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemoryBackend creates an in-process backend. Data is lost on restart.
func NewMemoryBackend() Backend {
	return &memoryBackend{
		data: make(map[string]map[string]string),
	}
}

func (b *memoryBackend) Scope(namespace string) Store {
	return &memoryStore{backend: b, namespace: namespace}
}

func (b *memoryBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = make(map[string]map[string]string)
	return nil
}

type memoryStore struct {
	backend   *memoryBackend
	namespace string
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	value, ok := s.backend.data[s.namespace][key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	ns, ok := s.backend.data[s.namespace]
	if !ok {
		ns = make(map[string]string)
		s.backend.data[s.namespace] = ns
	}
	ns[key] = value
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	delete(s.backend.data[s.namespace], key)
	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	delete(s.backend.data, s.namespace)
	return nil
}
