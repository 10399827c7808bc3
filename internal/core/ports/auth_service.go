package ports

import (
	"context"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

// AuthService implements the login and registration flows.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string, roleID int) (int64, error)
}

// TokenVerifier checks a token and returns the identity it proves.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	TokenVerifier
	Issue(accountID int64, role domain.Role) (string, error)
}

// PasswordHasher is a one-way salted hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
