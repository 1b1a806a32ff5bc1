package onboarding

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisStore implements Store on a Redis client. Entries never expire:
// session and seller-profile records persist until explicitly replaced.
type RedisStore struct {
	rdb *redis.Client // Redis client
}

// NewRedisStore returns a Store backed by the given Redis client
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := s.rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// Set stores a value in Redis, JSON-encoded, with no TTL
func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return s.rdb.Set(ctx, key, b, 0).Err() // Persist without expiry
}

// Has reports whether the key exists in Redis
func (s *RedisStore) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key).Result() // Count existing keys
	if err != nil {
		return false, err // Return error on Redis failure
	}
	return n > 0, nil
}
