package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/token"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Collapses every authentication failure into one generic message so the
//     response never reveals whether an account exists or why a token failed.
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

	// Known domain errors → deterministic HTTP codes. Invalid credentials and
	// every token failure share one message by design.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "authentication failed"
	case errors.Is(err, token.ErrExpired),
		errors.Is(err, token.ErrInvalid),
		errors.Is(err, token.ErrMissingClaims):
		return http.StatusUnauthorized, "authentication failed"
	case errors.Is(err, domain.ErrAgentExists):
		return http.StatusConflict, "agent already exists"
	case errors.Is(err, domain.ErrAgentNotFound):
		return http.StatusNotFound, "agent not found"
	case errors.Is(err, domain.ErrPropertyNotFound):
		return http.StatusNotFound, "property not found"
	case errors.Is(err, domain.ErrStateNotFound):
		return http.StatusNotFound, "state not found"
	case errors.Is(err, domain.ErrCityNotFound):
		return http.StatusNotFound, "city not found"
	case errors.Is(err, domain.ErrAddressNotFound):
		return http.StatusNotFound, "address not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
