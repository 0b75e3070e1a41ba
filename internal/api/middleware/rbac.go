package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifebit/platform/internal/api/metrics"
	"github.com/lifebit/platform/internal/core/domain"
)

// RBAC enforces role-based access control. An empty role list means
// authentication-only: any valid token passes.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues(c.Path()).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Acceso denegado"})
			}
			return next(c)
		}
	}
}
