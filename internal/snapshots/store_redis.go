package snapshots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "resume:snapshot:"

// RedisStore keeps snapshots as plain string values. A zero TTL keeps them
// until overwritten.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisStore parses a redis:// URL and builds the client.
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisStore{Client: redis.NewClient(opts), TTL: ttl}, nil
}

// Ping verifies connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// Load reads the snapshot value.
func (s *RedisStore) Load(ctx context.Context, owner, key string) ([]byte, error) {
	if !validKey(owner, key) {
		return nil, ErrInvalidInput
	}
	data, err := s.Client.Get(ctx, redisKey(owner, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

// Save writes the snapshot value.
func (s *RedisStore) Save(ctx context.Context, owner, key string, data []byte) error {
	if !validKey(owner, key) {
		return ErrInvalidInput
	}
	if err := s.Client.Set(ctx, redisKey(owner, key), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.Client.Close()
}

func redisKey(owner, key string) string {
	return redisKeyPrefix + owner + ":" + key
}

var _ Store = (*RedisStore)(nil)
