package ports

import (
	"context"

	"github.com/lifebit/platform/internal/core/domain"
)

// AuthResult bundles everything a successful authentication hands back:
// a short-lived access token and the opaque refresh session ID that the
// transport layer sets as an httpOnly cookie.
type AuthResult struct {
	AccessToken string
	SessionID   string
	User        *domain.User
}

type AuthService interface {
	// Login verifies credentials and opens a fresh refresh session.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Refresh rotates the refresh session and mints a new access token.
	// Any failure collapses to domain.ErrSessionExpired.
	Refresh(ctx context.Context, sessionID string) (*AuthResult, error)
	// Logout revokes a single refresh session. Unknown IDs are not an error.
	Logout(ctx context.Context, sessionID string) error
	// UpdatePassword re-verifies the current password, stores the new hash
	// and revokes every other refresh session of the user.
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (*AuthResult, error)
}
