package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"eventora/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

// Store is a JSON cache over Redis. Every failure degrades to a miss; the
// database remains the source of truth and callers never see cache errors.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

func NewStore(client *redis.Client, cfg config.RedisConfig, logger *slog.Logger) *Store {
	return &Store{client: client, ttl: cfg.TTL, logger: logger}
}

// GetJSON reports whether the key was present and decodable.
func (s *Store) GetJSON(ctx context.Context, key string, dst any) bool {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.WarnContext(ctx, "cache entry corrupt", slog.String("key", key))
		return false
	}
	return true
}

func (s *Store) SetJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// DeleteByPrefix removes every key under the prefix via SCAN, so invalidation
// never blocks Redis the way KEYS would.
func (s *Store) DeleteByPrefix(ctx context.Context, prefix string) {
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.WarnContext(ctx, "cache delete failed", slog.String("key", iter.Val()))
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.WarnContext(ctx, "cache scan failed", slog.String("prefix", prefix), slog.String("error", err.Error()))
	}
}

func (s *Store) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WarnContext(ctx, "cache delete failed", slog.String("key", key))
	}
}
