package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

// timestampLayout matches the envelope format the web clients already parse.
const timestampLayout = "02-01-2006 15:04:05"

// errorResponse is the canonical error envelope for all API errors: the HTTP
// status, a single message, the time of failure, and the originating path.
type errorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{
			Status:    code,
			Message:   msg,
			Timestamp: time.Now().Format(timestampLayout),
			Path:      c.Request().URL.Path,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, "contact message not found"
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusNotFound, "role not found"
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusConflict, "email already exists"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest, "your passwords are not matched"
	case errors.Is(err, domain.ErrBuiltInUser):
		return http.StatusBadRequest, "you don't have any permission to change this value"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrTooManyLogins):
		return http.StatusTooManyRequests, "too many login attempts, try again later"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
