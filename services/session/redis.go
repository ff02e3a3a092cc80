package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"labline/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "bot:sess:"

// RedisStore is the production Store backed by Redis. Sessions are stored as
// JSON under a per-user key. A zero TTL keeps sessions until a terminal
// transition deletes them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) GetOrCreate(ctx context.Context, userID string) (*models.Session, error) {
	key := sessionKeyPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.NewSession(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session for %s: %w", userID, err)
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session for %s: %w", userID, err)
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	sess.UpdatedAt = time.Now()
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session for %s: %w", sess.UserID, err)
	}
	key := sessionKeyPrefix + sess.UserID
	if err := s.client.Set(ctx, key, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session for %s: %w", sess.UserID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+userID).Err()
}
