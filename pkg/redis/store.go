package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a namespaced string key/value view over a Redis client.
type Store struct {
	db     redis.UniversalClient
	prefix string
}

// NewStore wraps client. Every key is stored under prefix.
func NewStore(client redis.UniversalClient, prefix string) *Store {
	return &Store{db: client, prefix: prefix}
}

// Get returns the value for key. A missing key is reported as ok == false
// with a nil error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.db.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores value under key. A zero ttl keeps the key until it is deleted.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.db.Set(ctx, s.prefix+key, value, ttl).Err()
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.Del(ctx, s.prefix+key).Err()
}
