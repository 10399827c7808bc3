package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		a      domain.Account
		roleID int
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role_id, created_at
		FROM accounts
		WHERE email = $1
	`, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &roleID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	role, err := domain.ParseRole(roleID)
	if err != nil {
		return nil, fmt.Errorf("find account %d: stored role %d: %w", a.ID, roleID, err)
	}
	a.Role = role
	return &a, nil
}

// Insert maps a unique violation on email to domain.ErrDuplicateEmail.
func (r *AccountRepository) Insert(ctx context.Context, email, passwordHash string, role domain.Role) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := insertReturningID(ctx, r.db, `
		INSERT INTO accounts (email, password_hash, role_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, email, passwordHash, int(role))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert account: %w", err)
	}
	return id, nil
}
