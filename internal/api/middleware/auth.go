package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/api/metrics"
	"github.com/mikelm2020/estatehub/internal/core/token"
)

// PrincipalKey is the echo context key under which the resolved principal is
// stored. Handlers read it through the handler package's context helper.
const PrincipalKey = "principal"

// Auth resolves the request identity: it extracts the bearer token, decodes
// it through the codec, and attaches the resulting principal to the context.
// Every failure mode maps to the same generic 401; the distinction between
// missing, expired, and tampered tokens exists only in metrics and logs.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return unauthorized()
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("bad_header").Inc()
				return unauthorized()
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return unauthorized()
			}

			c.Set(PrincipalKey, claims.Principal())
			return next(c)
		}
	}
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrMissingClaims):
		return "missing_claims"
	default:
		return "invalid"
	}
}
