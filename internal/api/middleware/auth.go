package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the bearer JWT and injects the identity claims into the
// echo context as plain strings: user_id, email, role and condo_id. A token
// without a subject is rejected here so downstream handlers can rely on
// user_id being present; condo_id may legitimately be empty until the
// account is bound to a condominium, and handlers that need one check it
// themselves.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID := claimString(claims, "sub")
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			c.Set("user_id", userID)
			c.Set("email", claimString(claims, "email"))
			c.Set("role", claimString(claims, "role"))
			c.Set("condo_id", claimString(claims, "condo_id"))

			return next(c)
		}
	}
}

// claimString reads a claim that may be absent or non-string in tokens
// minted by older releases.
func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
