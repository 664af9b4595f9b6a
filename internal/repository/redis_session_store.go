package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/RuslanKralin/e-commerce-store/pkg/redis"
)

// sessionKeyPrefix namespaces refresh sessions in Redis
const sessionKeyPrefix = "refreshToken:"

// RedisSessionStore implements SessionStore using Redis. One session per
// user: writing a new refresh token replaces the previous one.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a new RedisSessionStore
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return sessionKeyPrefix + userID.String()
}

// Put stores the refresh token for a user with the given TTL
func (s *RedisSessionStore) Put(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(userID), refreshToken, ttl).Err()
}

// Get returns the stored refresh token, or empty string when no session
// exists
func (s *RedisSessionStore) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

// Delete removes the user's session
func (s *RedisSessionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(userID)).Err()
}
