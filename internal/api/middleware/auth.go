package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/api/metrics"
	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

const identityKey = "identity"

// Authenticate is the first auth stage: it proves who the caller is, whatever
// their role. A missing bearer token yields domain.ErrMissingToken; a token
// that fails verification (bad signature or expired) yields
// domain.ErrInvalidToken.
func Authenticate(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrMissingToken
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired_token"
				}
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return domain.ErrInvalidToken
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Authenticate.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// bearerToken extracts <token> from "Bearer <token>". The scheme is matched
// case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
