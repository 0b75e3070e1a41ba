package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

// AccountService implements profile operations and the server half of the
// guarded email-change flow.
type AccountService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	tickets    ports.ChangeTicketStore
	mail       ports.MailDispatcher
	appBaseURL string
	ticketTTL  time.Duration
	log        zerolog.Logger
}

func NewAccountService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	tickets ports.ChangeTicketStore,
	mail ports.MailDispatcher,
	appBaseURL string,
	ticketTTL time.Duration,
	log zerolog.Logger,
) *AccountService {
	if ticketTTL <= 0 {
		ticketTTL = time.Hour
	}
	return &AccountService{
		users:      users,
		sessions:   sessions,
		tickets:    tickets,
		mail:       mail,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		ticketTTL:  ticketTTL,
		log:        log,
	}
}

func (s *AccountService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID, name, surname string) (*domain.User, error) {
	if err := s.users.UpdateProfile(ctx, userID, name, surname); err != nil {
		return nil, err
	}
	return s.Profile(ctx, userID)
}

// VerifyPassword backs step one of the email-change flow. It proves the
// caller still knows the current password; the flow's second step is
// re-authorized independently, this check grants nothing by itself.
func (s *AccountService) VerifyPassword(ctx context.Context, userID, password string) error {
	if password == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (s *AccountService) RequestEmailChange(ctx context.Context, userID, newEmail string) error {
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))
	if newEmail == "" {
		return domain.ErrInvalidEmail
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if existing, err := s.users.FindByEmail(ctx, newEmail); err == nil && existing.ID != user.ID {
		return domain.ErrEmailInUse
	} else if err != nil && err != domain.ErrUserNotFound {
		return err
	}

	token := uuid.NewString()
	ticket := ports.ChangeTicket{UserID: user.ID, NewEmail: newEmail}
	if err := s.tickets.Save(ctx, token, ticket, s.ticketTTL); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/auth/verificar-email?token=%s", s.appBaseURL, token)
	s.mail.Enqueue(ports.OutboundMail{
		To:      newEmail,
		Subject: "Confirma tu nuevo correo en LifeBit",
		Body: fmt.Sprintf(
			"Hola %s,\n\nPara confirmar el cambio de correo de tu cuenta abre el siguiente enlace:\n\n%s\n\nEl enlace expira en %d minutos. Si no solicitaste este cambio, ignora este mensaje.",
			user.Name, link, int(s.ticketTTL.Minutes()),
		),
	})

	s.log.Info().Str("user_id", user.ID).Msg("email change requested")
	return nil
}

// ConfirmEmailChange consumes the single-use ticket. Email uniqueness is
// re-checked here because another account may have taken the address between
// request and confirmation.
func (s *AccountService) ConfirmEmailChange(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrChangeTokenInvalid
	}

	ticket, err := s.tickets.Consume(ctx, token)
	if err != nil {
		return domain.ErrChangeTokenInvalid
	}

	if existing, err := s.users.FindByEmail(ctx, ticket.NewEmail); err == nil && existing.ID != ticket.UserID {
		return domain.ErrEmailInUse
	} else if err != nil && err != domain.ErrUserNotFound {
		return err
	}

	if err := s.users.UpdateEmail(ctx, ticket.UserID, ticket.NewEmail); err != nil {
		return err
	}

	// Every open session still identifies the old address; force a re-login.
	if err := s.sessions.RevokeAll(ctx, ticket.UserID); err != nil {
		s.log.Warn().Err(err).Str("user_id", ticket.UserID).Msg("session revocation after email change failed")
	}

	s.log.Info().Str("user_id", ticket.UserID).Msg("email change confirmed")
	return nil
}

func (s *AccountService) UnlinkGoogle(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.GoogleLinked {
		return domain.ErrGoogleNotLinked
	}
	return s.users.SetGoogleLinked(ctx, userID, false)
}
