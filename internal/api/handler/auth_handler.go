package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lifebit/platform/internal/api/metrics"
	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

// refreshCookieName is the httpOnly cookie carrying the opaque refresh
// session ID. It is the only credential that survives a page reload.
const refreshCookieName = "lifebit_session"

type AuthHandler struct {
	authService    ports.AuthService
	accountService ports.AccountService
	cookieSecure   bool
	refreshTTL     time.Duration
}

func NewAuthHandler(authService ports.AuthService, accountService ports.AccountService, cookieSecure bool, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accountService: accountService,
		cookieSecure:   cookieSecure,
		refreshTTL:     refreshTTL,
	}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72"`
}

type verifyEmailChangeRequest struct {
	Token string `json:"token" validate:"required"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken,omitempty"`
	User        *domain.User `json:"user,omitempty"`
}

// Login authenticates a user, opens a refresh session and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setRefreshCookie(c, result.SessionID)
	return c.JSON(http.StatusOK, authResponse{AccessToken: result.AccessToken, User: result.User})
}

// Refresh rotates the refresh session identified by the cookie and mints a
// fresh access token. Every failure is a plain 401 — the client collapses
// them all to logged-out and never shows an error.
//
// @Summary      Refresh session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		metrics.RefreshesTotal.WithLabelValues("expired").Inc()
		return domain.ErrSessionExpired
	}

	result, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		metrics.RefreshesTotal.WithLabelValues("expired").Inc()
		h.clearRefreshCookie(c)
		return err
	}

	metrics.RefreshesTotal.WithLabelValues("success").Inc()
	h.setRefreshCookie(c, result.SessionID)
	return c.JSON(http.StatusOK, authResponse{AccessToken: result.AccessToken, User: result.User})
}

// Logout revokes the refresh session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	h.clearRefreshCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// UpdatePassword changes the password of the authenticated user and rotates
// every credential: old sessions are revoked and a fresh token is returned.
//
// @Summary      Update password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      updatePasswordRequest  true  "Current and new password"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/update-password [patch]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.UpdatePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, result.SessionID)
	return c.JSON(http.StatusOK, authResponse{AccessToken: result.AccessToken, User: result.User})
}

// VerifyEmailChange consumes the single-use token from the emailed link.
// The route is public: the user follows the link from a fresh browser and
// is forced to log in again afterwards.
//
// @Summary      Confirm an email change
// @Tags         auth
// @Accept       json
// @Param        body  body  verifyEmailChangeRequest  true  "Token from the emailed link"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Router       /auth/verify-email-change [post]
func (h *AuthHandler) VerifyEmailChange(c echo.Context) error {
	var req verifyEmailChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.accountService.ConfirmEmailChange(c.Request().Context(), req.Token); err != nil {
		switch err {
		case domain.ErrChangeTokenInvalid:
			metrics.EmailChangeConfirmsTotal.WithLabelValues("invalid_token").Inc()
		case domain.ErrEmailInUse:
			metrics.EmailChangeConfirmsTotal.WithLabelValues("email_in_use").Inc()
		}
		return err
	}

	metrics.EmailChangeConfirmsTotal.WithLabelValues("success").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    sessionID,
		Path:     "/auth",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
