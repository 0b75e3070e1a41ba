package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifebit/platform/internal/api/metrics"
	"github.com/lifebit/platform/internal/core/ports"
)

type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type updateProfileRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Surname string `json:"surname" validate:"required,max=100"`
}

type verifyPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type requestEmailChangeRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email,max=255"`
}

// Profile returns the authenticated user's account.
//
// @Summary      Get profile
// @Tags         perfil
// @Produce      json
// @Success      200  {object}  domain.User
// @Router       /perfil [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.accountService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates name and surname.
//
// @Summary      Update profile
// @Tags         perfil
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Router       /perfil [patch]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accountService.UpdateProfile(c.Request().Context(), userID, req.Name, req.Surname)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// VerifyPassword backs step one of the email-change dialog. It succeeds or
// fails without side effects; the change itself is authorized again on the
// second request.
//
// @Summary      Verify the current password
// @Tags         perfil
// @Accept       json
// @Param        body  body  verifyPasswordRequest  true  "Current password"
// @Success      204
// @Failure      401   {object}  map[string]string
// @Router       /perfil/verify-password [post]
func (h *AccountHandler) VerifyPassword(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req verifyPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.accountService.VerifyPassword(c.Request().Context(), userID, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RequestEmailChange issues the single-use confirmation ticket and queues
// the mail carrying the link.
//
// @Summary      Request an email change
// @Tags         perfil
// @Accept       json
// @Param        body  body  requestEmailChangeRequest  true  "New email address"
// @Success      204
// @Failure      409   {object}  map[string]string
// @Router       /perfil/request-email-change [post]
func (h *AccountHandler) RequestEmailChange(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req requestEmailChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.accountService.RequestEmailChange(c.Request().Context(), userID, req.NewEmail); err != nil {
		return err
	}

	metrics.EmailChangeRequestsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// UnlinkGoogle detaches the linked Google account.
//
// @Summary      Unlink Google account
// @Tags         perfil
// @Success      204
// @Failure      409   {object}  map[string]string
// @Router       /perfil/google/desvincular [post]
func (h *AccountHandler) UnlinkGoogle(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.accountService.UnlinkGoogle(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
