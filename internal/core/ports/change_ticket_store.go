package ports

import (
	"context"
	"time"
)

// ChangeTicket is the payload behind an email-change confirmation token.
type ChangeTicket struct {
	UserID   string `json:"user_id"`
	NewEmail string `json:"new_email"`
}

// ChangeTicketStore keeps single-use email-change tickets. A user has at most
// one pending ticket: saving a new one invalidates the previous token.
// Consume must be atomic — two concurrent confirms of the same token cannot
// both succeed.
type ChangeTicketStore interface {
	Save(ctx context.Context, token string, ticket ChangeTicket, ttl time.Duration) error
	Consume(ctx context.Context, token string) (ChangeTicket, error)
}
