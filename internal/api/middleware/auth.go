package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
)

// principalKey is the echo context key the authenticated principal is stored
// under for the remainder of the request.
const principalKey = "principal"

// skipPaths never require a prior token; the gate does not even attempt
// authentication for them.
var skipPaths = map[string]struct{}{
	"/register": {},
	"/login":    {},
}

// Authenticate is the per-request authentication gate. It extracts a bearer
// token, validates it, loads the matching user, and attaches a Principal to
// the request context. The gate is fail-open: any failure is logged and the
// request proceeds unauthenticated. Denial happens at the RBAC layer.
func Authenticate(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := skipPaths[c.Request().URL.Path]; skip {
				return next(c)
			}

			token, ok := bearerToken(c)
			if !ok || !tokens.Validate(token) {
				return next(c)
			}

			userID, ok := tokens.Subject(token)
			if !ok {
				return next(c)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				log.Warn().Err(err).Str("user_id", userID).Msg("authentication failed")
				return next(c)
			}

			c.Set(principalKey, domain.Principal{UserID: user.ID, Roles: user.Roles})
			log.Debug().Str("user_id", user.ID).Msg("user authenticated")

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. Absence or a
// non-Bearer scheme means the request proceeds unauthenticated.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// CurrentPrincipal returns the principal attached by Authenticate, if any.
func CurrentPrincipal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
