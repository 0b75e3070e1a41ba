package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

// ChangeTicketStore keeps single-use email-change tickets.
//
// Key layout:
//
//	emailchange:<token>        → JSON ticket (TTL-bound)
//	emailchange:pending:<uid>  → latest token for the user
//
// Saving a new ticket deletes the user's previous token, so only the most
// recent confirmation link works. Consume uses GETDEL, so two concurrent
// confirms of the same token cannot both succeed.
type ChangeTicketStore struct {
	client *redis.Client
}

// NewChangeTicketStore creates a ChangeTicketStore wrapping the given Redis client.
func NewChangeTicketStore(client *redis.Client) *ChangeTicketStore {
	return &ChangeTicketStore{client: client}
}

func (s *ChangeTicketStore) Save(ctx context.Context, token string, ticket ports.ChangeTicket, ttl time.Duration) error {
	encoded, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("encode ticket: %w", err)
	}

	prev, err := s.client.Get(ctx, s.pendingKey(ticket.UserID)).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("lookup pending ticket: %w", err)
	}

	pipe := s.client.TxPipeline()
	if prev != "" {
		pipe.Del(ctx, s.tokenKey(prev))
	}
	pipe.Set(ctx, s.tokenKey(token), encoded, ttl)
	pipe.Set(ctx, s.pendingKey(ticket.UserID), token, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save ticket: %w", err)
	}
	return nil
}

func (s *ChangeTicketStore) Consume(ctx context.Context, token string) (ports.ChangeTicket, error) {
	encoded, err := s.client.GetDel(ctx, s.tokenKey(token)).Result()
	if err == redis.Nil {
		return ports.ChangeTicket{}, domain.ErrChangeTokenInvalid
	}
	if err != nil {
		return ports.ChangeTicket{}, fmt.Errorf("consume ticket: %w", err)
	}

	var ticket ports.ChangeTicket
	if err := json.Unmarshal([]byte(encoded), &ticket); err != nil {
		return ports.ChangeTicket{}, fmt.Errorf("decode ticket: %w", err)
	}

	_ = s.client.Del(ctx, s.pendingKey(ticket.UserID)).Err()
	return ticket, nil
}

func (s *ChangeTicketStore) tokenKey(token string) string {
	return "emailchange:" + token
}

func (s *ChangeTicketStore) pendingKey(userID string) string {
	return "emailchange:pending:" + userID
}
