package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentacar/rentacar-api/internal/api/middleware"
	"github.com/rentacar/rentacar-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the authentication gate.
// Owner-scoped handlers resolve identity from here, never from caller input,
// so a spoofed id in the payload cannot reach the service layer.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
