package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultRedisTTL is how long an idle session namespace survives in Redis.
const DefaultRedisTTL = 24 * time.Hour

// redisBackend stores each namespace as one Redis hash.
type redisBackend struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisBackend creates a backend over an existing client. A zero ttl
// selects DefaultRedisTTL.
func NewRedisBackend(client *redis.Client, ttl time.Duration, logger zerolog.Logger) Backend {
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &redisBackend{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "redis-storage").Logger(),
	}
}

// DialRedis connects to Redis and verifies the connection.
func DialRedis(ctx context.Context, addr, password string, db int, logger zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	logger.Info().Str("addr", addr).Int("db", db).Msg("redis connection established")

	return client, nil
}

func (b *redisBackend) Scope(namespace string) Store {
	return &redisStore{backend: b, key: hashKey(namespace)}
}

func (b *redisBackend) Close() error {
	return b.client.Close()
}

type redisStore struct {
	backend *redisBackend
	key     string
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.backend.client.HGet(ctx, s.key, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		s.backend.logger.Error().Err(err).Str("hash", s.key).Str("field", key).Msg("redis hget failed")
		return "", fmt.Errorf("redis hget failed: %w", err)
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	pipe := s.backend.client.TxPipeline()
	pipe.HSet(ctx, s.key, key, value)
	pipe.Expire(ctx, s.key, s.backend.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		s.backend.logger.Error().Err(err).Str("hash", s.key).Str("field", key).Msg("redis hset failed")
		return fmt.Errorf("redis hset failed: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.backend.client.HDel(ctx, s.key, key).Err(); err != nil {
		return fmt.Errorf("redis hdel failed: %w", err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.backend.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func hashKey(namespace string) string {
	return fmt.Sprintf("storefront:session:%s", namespace)
}
