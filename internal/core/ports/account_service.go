package ports

import (
	"context"

	"github.com/lifebit/platform/internal/core/domain"
)

// AccountService covers the profile ("mi cuenta") operations, including the
// two server round trips of the guarded email-change flow and the public
// confirmation step reached from the emailed link.
type AccountService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, surname string) (*domain.User, error)

	// VerifyPassword backs step one of the email-change flow.
	VerifyPassword(ctx context.Context, userID, password string) error
	// RequestEmailChange issues a single-use ticket for newEmail and hands the
	// confirmation link to the mail dispatcher. Replaces any pending ticket.
	RequestEmailChange(ctx context.Context, userID, newEmail string) error
	// ConfirmEmailChange consumes the ticket, updates the account email and
	// revokes every refresh session so the user logs in again.
	ConfirmEmailChange(ctx context.Context, token string) error

	UnlinkGoogle(ctx context.Context, userID string) error
}
