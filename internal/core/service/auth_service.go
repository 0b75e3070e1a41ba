package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

// AuthService implements login, refresh-session rotation, logout and
// password updates.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// Refresh rotates the refresh session: the presented ID is atomically
// consumed before a new one is created, so a replayed cookie racing the
// legitimate refresh loses — only one of the two can claim the session.
// Every failure collapses to ErrSessionExpired — the client treats them all
// as logged-out and never shows an error.
func (s *AuthService) Refresh(ctx context.Context, sessionID string) (*ports.AuthResult, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionExpired
	}

	userID, err := s.sessions.Consume(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}
	return result, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (*ports.AuthResult, error) {
	if currentPassword == "" || newPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return nil, err
	}

	// Old sessions carry the pre-change credential; force them out.
	if err := s.sessions.RevokeAll(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	sessionID, err := s.sessions.Create(ctx, user.ID, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{
		AccessToken: token,
		SessionID:   sessionID,
		User:        user.Sanitized(),
	}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"email":    user.Email,
		"role":     string(user.Role),
		"condo_id": user.CondoID,
		"exp":      time.Now().Add(s.accessTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
