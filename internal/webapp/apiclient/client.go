// Package apiclient is the typed HTTP client for the collaborator API. It
// carries the refresh cookie in a jar, attaches the bearer token to
// authenticated calls, and decodes the server's error envelope into APIError
// so callers can surface the message verbatim.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/webapp/session"
)

// APIError is a non-2xx response with a decoded error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// ErrorMessage returns the server-provided message for display.
func (e *APIError) ErrorMessage() string { return e.Message }

// Client talks to the collaborator API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	tokenFn func() string
}

// New creates a Client for baseURL. tokenFn supplies the current access
// token for authenticated calls; pass the session store's accessor.
func New(baseURL string, tokenFn func() string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		tokenFn: tokenFn,
	}, nil
}

type credentialsResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *domain.User `json:"user"`
}

// Login authenticates with email and password. The refresh cookie lands in
// the jar; the caller feeds the returned credentials to the session store.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Credentials, error) {
	var out credentialsResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &session.Credentials{AccessToken: out.AccessToken, User: out.User}, nil
}

// Refresh exchanges the refresh cookie for fresh credentials.
func (c *Client) Refresh(ctx context.Context) (*session.Credentials, error) {
	var out credentialsResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, &out); err != nil {
		return nil, err
	}
	return &session.Credentials{AccessToken: out.AccessToken, User: out.User}, nil
}

// Logout revokes the server-side session and clears the refresh cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// UpdatePassword changes the password; the server revokes every other
// session on success.
func (c *Client) UpdatePassword(ctx context.Context, current, next string) error {
	return c.do(ctx, http.MethodPatch, "/auth/update-password", map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	}, nil)
}

// VerifyPassword checks the current password without changing anything.
func (c *Client) VerifyPassword(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodPost, "/perfil/verify-password", map[string]string{
		"password": password,
	}, nil)
}

// RequestEmailChange stores the pending address and triggers the
// verification mail.
func (c *Client) RequestEmailChange(ctx context.Context, newEmail string) error {
	return c.do(ctx, http.MethodPost, "/perfil/request-email-change", map[string]string{
		"newEmail": newEmail,
	}, nil)
}

// ConfirmEmailChange applies the pending change identified by token. The
// endpoint is public; the token is the credential.
func (c *Client) ConfirmEmailChange(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/verify-email-change", map[string]string{
		"token": token,
	}, nil)
}

// Profile fetches the authenticated user's record.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/perfil", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile saves the user's name and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, name, surname string) (*domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodPatch, "/perfil", map[string]string{
		"name":    name,
		"surname": surname,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UnlinkGoogle removes the Google association from the account.
func (c *Client) UnlinkGoogle(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/perfil/google/desvincular", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		return &APIError{Status: resp.StatusCode}
	}
	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}
