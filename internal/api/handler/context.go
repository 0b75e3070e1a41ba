package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user ID
// proves the middleware ran. Role-gated handlers additionally need a condo,
// without which the JWT is structurally valid but operationally unusable.
func ctxClaims(c echo.Context) (userID, role, condoID string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	condoID, _ = c.Get("condo_id").(string)
	return userID, role, condoID, nil
}

// ctxCondo is ctxClaims for handlers that cannot operate without a
// condominium bound to the token.
func ctxCondo(c echo.Context) (userID, condoID string, err error) {
	userID, _, condoID, err = ctxClaims(c)
	if err != nil {
		return "", "", err
	}
	if condoID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing condominium identity")
	}
	return userID, condoID, nil
}
