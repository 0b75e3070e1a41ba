package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

type stubAuthService struct {
	loginFunc          func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	refreshFunc        func(ctx context.Context, sessionID string) (*ports.AuthResult, error)
	logoutFunc         func(ctx context.Context, sessionID string) error
	updatePasswordFunc func(ctx context.Context, userID, currentPassword, newPassword string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFunc(ctx, email, password)
}
func (s *stubAuthService) Refresh(ctx context.Context, sessionID string) (*ports.AuthResult, error) {
	return s.refreshFunc(ctx, sessionID)
}
func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFunc(ctx, sessionID)
}
func (s *stubAuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (*ports.AuthResult, error) {
	return s.updatePasswordFunc(ctx, userID, currentPassword, newPassword)
}

type stubAccountService struct {
	verifyPasswordFunc     func(ctx context.Context, userID, password string) error
	requestEmailChangeFunc func(ctx context.Context, userID, newEmail string) error
	confirmEmailChangeFunc func(ctx context.Context, token string) error
}

func (s *stubAccountService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return nil, nil
}
func (s *stubAccountService) UpdateProfile(ctx context.Context, userID, name, surname string) (*domain.User, error) {
	return nil, nil
}
func (s *stubAccountService) VerifyPassword(ctx context.Context, userID, password string) error {
	return s.verifyPasswordFunc(ctx, userID, password)
}
func (s *stubAccountService) RequestEmailChange(ctx context.Context, userID, newEmail string) error {
	return s.requestEmailChangeFunc(ctx, userID, newEmail)
}
func (s *stubAccountService) ConfirmEmailChange(ctx context.Context, token string) error {
	return s.confirmEmailChangeFunc(ctx, token)
}
func (s *stubAccountService) UnlinkGoogle(ctx context.Context, userID string) error {
	return nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginSetsRefreshCookie(t *testing.T) {
	auth := &stubAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				AccessToken: "tok",
				SessionID:   "s1",
				User:        &domain.User{ID: "u1", Email: email, Role: domain.RoleOwner},
			}, nil
		},
	}
	h := NewAuthHandler(auth, &stubAccountService{}, false, 720*time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"secreta123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "tok" || resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("unexpected response %+v", resp)
	}

	cookie := findCookie(t, rec, refreshCookieName)
	if cookie.Value != "s1" {
		t.Fatalf("expected session cookie s1, got %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("refresh cookie must be httpOnly")
	}
	if cookie.Path != "/auth" {
		t.Fatalf("expected cookie scoped to /auth, got %q", cookie.Path)
	}
}

func TestLoginRejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubAccountService{}, false, time.Hour)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"no-es-correo","password":"x"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRefreshWithoutCookieFails(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubAccountService{}, false, time.Hour)

	c, _ := newTestContext(t, http.MethodPost, "/auth/refresh", "")
	if err := h.Refresh(c); err != domain.ErrSessionExpired {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestRefreshRotatesCookie(t *testing.T) {
	auth := &stubAuthService{
		refreshFunc: func(ctx context.Context, sessionID string) (*ports.AuthResult, error) {
			if sessionID != "s1" {
				t.Fatalf("expected session s1, got %q", sessionID)
			}
			return &ports.AuthResult{
				AccessToken: "tok2",
				SessionID:   "s2",
				User:        &domain.User{ID: "u1", Role: domain.RoleOwner},
			}, nil
		},
	}
	h := NewAuthHandler(auth, &stubAccountService{}, false, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "s1"})

	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	cookie := findCookie(t, rec, refreshCookieName)
	if cookie.Value != "s2" {
		t.Fatalf("expected rotated cookie s2, got %q", cookie.Value)
	}
}

func TestRefreshFailureClearsCookie(t *testing.T) {
	auth := &stubAuthService{
		refreshFunc: func(ctx context.Context, sessionID string) (*ports.AuthResult, error) {
			return nil, domain.ErrSessionExpired
		},
	}
	h := NewAuthHandler(auth, &stubAccountService{}, false, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "s-viejo"})

	if err := h.Refresh(c); err != domain.ErrSessionExpired {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	cookie := findCookie(t, rec, refreshCookieName)
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("expected cleared cookie, got %+v", cookie)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	var revoked string
	auth := &stubAuthService{
		logoutFunc: func(ctx context.Context, sessionID string) error {
			revoked = sessionID
			return nil
		},
	}
	h := NewAuthHandler(auth, &stubAccountService{}, false, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "s1"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if revoked != "s1" {
		t.Fatalf("expected session s1 revoked, got %q", revoked)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	cookie := findCookie(t, rec, refreshCookieName)
	if cookie.MaxAge != -1 {
		t.Fatalf("expected expired cookie, got MaxAge %d", cookie.MaxAge)
	}
}

func TestVerifyEmailChange(t *testing.T) {
	account := &stubAccountService{
		confirmEmailChangeFunc: func(ctx context.Context, token string) error {
			if token != "tok-1" {
				return domain.ErrChangeTokenInvalid
			}
			return nil
		},
	}
	h := NewAuthHandler(&stubAuthService{}, account, false, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/verify-email-change", `{"token":"tok-1"}`)
	if err := h.VerifyEmailChange(c); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c, _ = newTestContext(t, http.MethodPost, "/auth/verify-email-change", `{"token":"tok-malo"}`)
	if err := h.VerifyEmailChange(c); err != domain.ErrChangeTokenInvalid {
		t.Fatalf("expected ErrChangeTokenInvalid, got %v", err)
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}
