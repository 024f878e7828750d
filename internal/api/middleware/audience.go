package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiosk123/user-api/internal/api/version"
	"github.com/kiosk123/user-api/internal/core/domain"
)

// Audience enforces that admin-audience version descriptors are only served
// to callers whose resolved role is admin. Public descriptors pass through
// untouched. Must run after version.Middleware and Identify.
func Audience() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			desc := version.FromContext(c)
			if desc.Audience != version.AudienceAdmin {
				return next(c)
			}
			role, _ := c.Get("role").(string)
			if role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}
			return next(c)
		}
	}
}
