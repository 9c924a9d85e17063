package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

// RBAC enforces role-based access control on top of Auth. It must run after
// Auth so the principal is already in the context.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalKey).(domain.Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
			}
			if _, ok := allowed[principal.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
