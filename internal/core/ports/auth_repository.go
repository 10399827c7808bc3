package ports

import (
	"context"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

// AccountRepository is the credential store consumed by the auth flows.
type AccountRepository interface {
	// FindByEmail returns domain.ErrAccountNotFound when no account matches exactly.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Insert stores a new account and returns its generated identifier.
	Insert(ctx context.Context, email, passwordHash string, role domain.Role) (int64, error)
}
