package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lifebit/platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// message is user-facing and localized; raw causes only ever reach the log.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Messages are the exact
	// strings the web app surfaces as field errors, in the product locale.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Contraseña incorrecta"
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, "La sesión ha expirado"
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict, "El correo ya está en uso"
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest, "El correo no es válido"
	case errors.Is(err, domain.ErrChangeTokenInvalid):
		return http.StatusBadRequest, "El enlace de verificación no es válido o ha expirado"
	case errors.Is(err, domain.ErrGoogleNotLinked):
		return http.StatusConflict, "No hay una cuenta de Google vinculada"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Acceso denegado"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuario no encontrado"
	case errors.Is(err, domain.ErrResidentNotFound):
		return http.StatusNotFound, "Residente no encontrado"
	case errors.Is(err, domain.ErrDuplicateResident):
		return http.StatusConflict, "El residente ya existe"
	case errors.Is(err, domain.ErrInvalidResidentStatus):
		return http.StatusUnprocessableEntity, "Estado de residente no válido"
	case errors.Is(err, domain.ErrResourceNotFound):
		return http.StatusNotFound, "Recurso no encontrado"
	case errors.Is(err, domain.ErrDuplicateResource):
		return http.StatusConflict, "El recurso ya existe"
	case errors.Is(err, domain.ErrCondoNotFound):
		return http.StatusNotFound, "Condominio no encontrado"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Ocurrió un error inesperado. Intenta de nuevo."
}
