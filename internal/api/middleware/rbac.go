package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

// RequireRoles gates an operation on the request principal's roles. Requests
// without a principal get 401; authenticated requests lacking every allowed
// role get 403. The gate is fail-open, this layer is fail-closed.
func RequireRoles(allowedRoles ...domain.RoleName) echo.MiddlewareFunc {
	allowed := make(map[domain.RoleName]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := CurrentPrincipal(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			for _, r := range principal.Roles {
				if _, ok := allowed[r]; ok {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
	}
}
