package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lifebit/platform/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandlerDomainMappings(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Contraseña incorrecta"},
		{domain.ErrSessionExpired, http.StatusUnauthorized, "La sesión ha expirado"},
		{domain.ErrEmailInUse, http.StatusConflict, "El correo ya está en uso"},
		{domain.ErrChangeTokenInvalid, http.StatusBadRequest, "El enlace de verificación no es válido o ha expirado"},
		{domain.ErrGoogleNotLinked, http.StatusConflict, "No hay una cuenta de Google vinculada"},
		{domain.ErrResidentNotFound, http.StatusNotFound, "Residente no encontrado"},
	}
	for _, tc := range cases {
		code, msg := handleError(t, tc.err)
		if code != tc.wantCode || msg != tc.wantMsg {
			t.Fatalf("%v: got %d %q, want %d %q", tc.err, code, msg, tc.wantCode, tc.wantMsg)
		}
	}
}

func TestErrorHandlerHidesUnexpectedCauses(t *testing.T) {
	code, msg := handleError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Ocurrió un error inesperado. Intenta de nuevo." {
		t.Fatalf("internal cause leaked: %q", msg)
	}
}

func TestErrorHandlerPassesEchoErrors(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("got %d %q", code, msg)
	}
}
