package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saldoamigo/internal/model"
)

// RBAC enforces role-based access control. It must run after Auth; a request
// without a principal is rejected outright.
func RBAC(allowedRoles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			if _, ok := allowed[p.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
