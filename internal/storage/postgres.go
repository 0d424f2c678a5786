package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresBackend stores namespaced keys in the session_kv table.
type postgresBackend struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresBackend creates a PostgreSQL-backed store. The session_kv table
// must exist; see database.EnsureSchema.
func NewPostgresBackend(pool *pgxpool.Pool, logger zerolog.Logger) Backend {
	return &postgresBackend{
		pool:   pool,
		logger: logger.With().Str("component", "postgres-storage").Logger(),
	}
}

func (b *postgresBackend) Scope(namespace string) Store {
	return &postgresStore{backend: b, namespace: namespace}
}

func (b *postgresBackend) Close() error {
	b.pool.Close()
	return nil
}

type postgresStore struct {
	backend   *postgresBackend
	namespace string
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, error) {
	query := `
		SELECT value
		FROM session_kv
		WHERE namespace = $1 AND key = $2
	`

	var value string
	err := s.backend.pool.QueryRow(ctx, query, s.namespace, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		s.backend.logger.Error().Err(err).
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to query session value")
		return "", fmt.Errorf("failed to query session value: %w", err)
	}

	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO session_kv (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.backend.pool.Exec(ctx, query, s.namespace, key, value); err != nil {
		s.backend.logger.Error().Err(err).
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to store session value")
		return fmt.Errorf("failed to store session value: %w", err)
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM session_kv WHERE namespace = $1 AND key = $2`

	if _, err := s.backend.pool.Exec(ctx, query, s.namespace, key); err != nil {
		return fmt.Errorf("failed to delete session value: %w", err)
	}
	return nil
}

func (s *postgresStore) Clear(ctx context.Context) error {
	query := `DELETE FROM session_kv WHERE namespace = $1`

	tag, err := s.backend.pool.Exec(ctx, query, s.namespace)
	if err != nil {
		return fmt.Errorf("failed to clear session values: %w", err)
	}

	s.backend.logger.Debug().
		Str("namespace", s.namespace).
		Int64("deleted", tag.RowsAffected()).
		Msg("session namespace cleared")

	return nil
}
