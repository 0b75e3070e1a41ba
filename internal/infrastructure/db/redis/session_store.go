package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lifebit/platform/internal/core/domain"
)

// Key layout:
//
//	session:<id>        → user ID (TTL = refresh lifetime)
//	usersessions:<uid>  → set of session IDs, for RevokeAll
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	id := uuid.NewString()

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.sessionKey(id), userID, ttl)
	pipe.SAdd(ctx, s.userKey(userID), id)
	// The index set outlives sessions slightly; stale members are pruned on
	// RevokeAll and expire with the set itself.
	pipe.Expire(ctx, s.userKey(userID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

// Consume claims the session with GETDEL, so a replayed refresh racing the
// legitimate one cannot both succeed — exactly one caller gets the user ID.
func (s *SessionStore) Consume(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return "", domain.ErrSessionExpired
	}
	if err != nil {
		return "", fmt.Errorf("consume session: %w", err)
	}

	_ = s.client.SRem(ctx, s.userKey(userID), sessionID).Err()
	return userID, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	userID, err := s.client.Get(ctx, s.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.sessionKey(sessionID))
	pipe.SRem(ctx, s.userKey(userID), sessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// RevokeAll drops every session of the user in one pass.
func (s *SessionStore) RevokeAll(ctx context.Context, userID string) error {
	ids, err := s.client.SMembers(ctx, s.userKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, s.sessionKey(id))
	}
	pipe.Del(ctx, s.userKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

func (s *SessionStore) sessionKey(id string) string {
	return "session:" + id
}

func (s *SessionStore) userKey(userID string) string {
	return "usersessions:" + userID
}
