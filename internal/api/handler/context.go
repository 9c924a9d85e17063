package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: the id must be present
// (presence proves the middleware ran and the token carried an identity).
// A missing or empty role stays as-is — it simply carries no privilege.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get("principal").(domain.Principal)
	if !ok || principal.ID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
