package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/api/metrics"
	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

// Authorize is the second auth stage. It must run after Authenticate and lets
// the request through only when the caller's role is in the route's allow-list.
func Authorize(allowed domain.RoleSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok || !allowed.Contains(identity.Role) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// Protect chains both stages for a route.
func Protect(tokens ports.TokenVerifier, allowed domain.RoleSet) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{Authenticate(tokens), Authorize(allowed)}
}
