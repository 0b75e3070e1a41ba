package ports

import (
	"context"
	"time"
)

// SessionStore persists opaque refresh sessions. Consume must claim a
// session atomically so that a replayed refresh cookie racing the legitimate
// one cannot mint two sessions; the auth service collapses every failure to
// domain.ErrSessionExpired.
type SessionStore interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (sessionID string, err error)
	// Consume atomically claims and invalidates the session, returning its
	// owner. A second Consume of the same ID fails.
	Consume(ctx context.Context, sessionID string) (userID string, err error)
	// Delete revokes a single session. Unknown IDs are not an error.
	Delete(ctx context.Context, sessionID string) error
	// RevokeAll invalidates every session belonging to userID.
	RevokeAll(ctx context.Context, userID string) error
}
