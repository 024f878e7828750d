package version

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const contextKey = "api_version"

// Middleware resolves the request's version descriptor and stores it in the
// echo context. Requests matching no descriptor are rejected with 406
// before they reach any handler.
func Middleware(r *Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := r.Resolve(c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusNotAcceptable, err.Error())
			}
			c.Set(contextKey, d)
			return next(c)
		}
	}
}

// FromContext returns the descriptor stored by Middleware. The zero
// Descriptor is returned when the middleware did not run.
func FromContext(c echo.Context) Descriptor {
	d, _ := c.Get(contextKey).(Descriptor)
	return d
}
