package sessionRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"petalflow/models"
	"petalflow/utils"

	"github.com/go-redis/redis/v8"
)

// RedisSessionRepo implements SessionRepository on the session cache DB.
type RedisSessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepo creates a Redis-backed session repository.
func NewRedisSessionRepo(client *redis.Client, ttl time.Duration) SessionRepository {
	return &RedisSessionRepo{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return utils.SessionKeyPrefix + sessionID
}

// Get retrieves and decodes a session blob.
func (r *RedisSessionRepo) Get(sessionID string) (*models.OnboardingSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}

	var session models.OnboardingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", sessionID, err)
	}
	return &session, nil
}

// Save encodes and stores a session blob, sliding the TTL.
func (r *RedisSessionRepo) Save(session *models.OnboardingSession) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.SessionID, err)
	}
	if err := r.client.Set(ctx, sessionKey(session.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.SessionID, err)
	}
	return nil
}

// Delete removes a session blob.
func (r *RedisSessionRepo) Delete(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
