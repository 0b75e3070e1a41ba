package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifebit/platform/internal/core/domain"
)

type stubUserRepo struct {
	createFunc             func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByIDFunc           func(ctx context.Context, id string) (*domain.User, error)
	findByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	updateEmailFunc        func(ctx context.Context, id, email string) error
	updatePasswordHashFunc func(ctx context.Context, id, hash string) error
	updateProfileFunc      func(ctx context.Context, id, name, surname string) error
	setGoogleLinkedFunc    func(ctx context.Context, id string, linked bool) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFunc(ctx, user)
}
func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFunc(ctx, id)
}
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFunc(ctx, email)
}
func (s *stubUserRepo) UpdateEmail(ctx context.Context, id, email string) error {
	return s.updateEmailFunc(ctx, id, email)
}
func (s *stubUserRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return s.updatePasswordHashFunc(ctx, id, hash)
}
func (s *stubUserRepo) UpdateProfile(ctx context.Context, id, name, surname string) error {
	return s.updateProfileFunc(ctx, id, name, surname)
}
func (s *stubUserRepo) SetGoogleLinked(ctx context.Context, id string, linked bool) error {
	return s.setGoogleLinkedFunc(ctx, id, linked)
}

type stubSessionStore struct {
	createFunc    func(ctx context.Context, userID string, ttl time.Duration) (string, error)
	consumeFunc   func(ctx context.Context, sessionID string) (string, error)
	deleteFunc    func(ctx context.Context, sessionID string) error
	revokeAllFunc func(ctx context.Context, userID string) error
}

func (s *stubSessionStore) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	return s.createFunc(ctx, userID, ttl)
}
func (s *stubSessionStore) Consume(ctx context.Context, sessionID string) (string, error) {
	return s.consumeFunc(ctx, sessionID)
}
func (s *stubSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.deleteFunc(ctx, sessionID)
}
func (s *stubSessionStore) RevokeAll(ctx context.Context, userID string) error {
	return s.revokeAllFunc(ctx, userID)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func testUser(t *testing.T) *domain.User {
	return &domain.User{
		ID:           "u1",
		Email:        "ana@example.com",
		PasswordHash: hashOf(t, "secreta123"),
		Role:         domain.RoleOwner,
		CondoID:      "c1",
	}
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t)
	users := &stubUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	sessions := &stubSessionStore{
		createFunc: func(ctx context.Context, userID string, ttl time.Duration) (string, error) {
			return "s1", nil
		},
	}
	svc := NewAuthService(users, sessions, "shhh", time.Minute, time.Hour)

	result, err := svc.Login(context.Background(), "ana@example.com", "secreta123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.SessionID != "s1" {
		t.Fatalf("expected session s1, got %q", result.SessionID)
	}
	if result.User.PasswordHash != "" {
		t.Fatal("password hash leaked in result")
	}

	token, err := jwt.Parse(result.AccessToken, func(tk *jwt.Token) (any, error) {
		return []byte("shhh"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("access token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "u1" || claims["role"] != "owner" || claims["condo_id"] != "c1" {
		t.Fatalf("unexpected claims %v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := &stubUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return testUser(t), nil
		},
	}
	svc := NewAuthService(users, &stubSessionStore{}, "shhh", time.Minute, time.Hour)

	if _, err := svc.Login(context.Background(), "ana@example.com", "mala"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmailHidesExistence(t *testing.T) {
	users := &stubUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(users, &stubSessionStore{}, "shhh", time.Minute, time.Hour)

	if _, err := svc.Login(context.Background(), "nadie@example.com", "secreta123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	user := testUser(t)
	var consumed string
	users := &stubUserRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return user, nil
		},
	}
	sessions := &stubSessionStore{
		consumeFunc: func(ctx context.Context, sessionID string) (string, error) {
			consumed = sessionID
			return "u1", nil
		},
		createFunc: func(ctx context.Context, userID string, ttl time.Duration) (string, error) {
			return "s2", nil
		},
	}
	svc := NewAuthService(users, sessions, "shhh", time.Minute, time.Hour)

	result, err := svc.Refresh(context.Background(), "s1")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if consumed != "s1" {
		t.Fatalf("expected s1 consumed before rotation, got %q", consumed)
	}
	if result.SessionID != "s2" {
		t.Fatalf("expected rotated session s2, got %q", result.SessionID)
	}
}

func TestRefreshReplayedSessionFails(t *testing.T) {
	user := testUser(t)
	users := &stubUserRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return user, nil
		},
	}
	claimed := false
	sessions := &stubSessionStore{
		consumeFunc: func(ctx context.Context, sessionID string) (string, error) {
			if claimed {
				return "", domain.ErrSessionExpired
			}
			claimed = true
			return "u1", nil
		},
		createFunc: func(ctx context.Context, userID string, ttl time.Duration) (string, error) {
			return "s2", nil
		},
	}
	svc := NewAuthService(users, sessions, "shhh", time.Minute, time.Hour)

	if _, err := svc.Refresh(context.Background(), "s1"); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	// Replaying the same cookie after the session was claimed must not mint
	// a second session.
	if _, err := svc.Refresh(context.Background(), "s1"); err != domain.ErrSessionExpired {
		t.Fatalf("expected ErrSessionExpired on replay, got %v", err)
	}
}

func TestRefreshFailuresCollapseToSessionExpired(t *testing.T) {
	cases := []struct {
		name     string
		sessions *stubSessionStore
		users    *stubUserRepo
	}{
		{
			name: "unknown session",
			sessions: &stubSessionStore{
				consumeFunc: func(ctx context.Context, sessionID string) (string, error) {
					return "", errors.New("not found")
				},
			},
			users: &stubUserRepo{},
		},
		{
			name: "user gone",
			sessions: &stubSessionStore{
				consumeFunc: func(ctx context.Context, sessionID string) (string, error) {
					return "u1", nil
				},
			},
			users: &stubUserRepo{
				findByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				},
			},
		},
	}
	for _, tc := range cases {
		svc := NewAuthService(tc.users, tc.sessions, "shhh", time.Minute, time.Hour)
		if _, err := svc.Refresh(context.Background(), "s1"); err != domain.ErrSessionExpired {
			t.Fatalf("%s: expected ErrSessionExpired, got %v", tc.name, err)
		}
	}

	svc := NewAuthService(&stubUserRepo{}, &stubSessionStore{}, "shhh", time.Minute, time.Hour)
	if _, err := svc.Refresh(context.Background(), ""); err != domain.ErrSessionExpired {
		t.Fatalf("empty session ID: expected ErrSessionExpired, got %v", err)
	}
}

func TestUpdatePasswordRevokesOtherSessions(t *testing.T) {
	user := testUser(t)
	var storedHash string
	var revoked string
	users := &stubUserRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return user, nil
		},
		updatePasswordHashFunc: func(ctx context.Context, id, hash string) error {
			storedHash = hash
			return nil
		},
	}
	sessions := &stubSessionStore{
		revokeAllFunc: func(ctx context.Context, userID string) error {
			revoked = userID
			return nil
		},
		createFunc: func(ctx context.Context, userID string, ttl time.Duration) (string, error) {
			return "s-next", nil
		},
	}
	svc := NewAuthService(users, sessions, "shhh", time.Minute, time.Hour)

	result, err := svc.UpdatePassword(context.Background(), "u1", "secreta123", "nueva456")
	if err != nil {
		t.Fatalf("update password: %v", err)
	}
	if revoked != "u1" {
		t.Fatalf("expected all sessions of u1 revoked, got %q", revoked)
	}
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("nueva456")) != nil {
		t.Fatal("stored hash does not match the new password")
	}
	if result.SessionID != "s-next" {
		t.Fatalf("expected fresh session after revocation, got %q", result.SessionID)
	}
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	users := &stubUserRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return testUser(t), nil
		},
	}
	svc := NewAuthService(users, &stubSessionStore{}, "shhh", time.Minute, time.Hour)

	if _, err := svc.UpdatePassword(context.Background(), "u1", "mala", "nueva456"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutEmptySessionIsNoOp(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, &stubSessionStore{}, "shhh", time.Minute, time.Hour)
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout: %v", err)
	}
}
