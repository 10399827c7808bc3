package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) List(ctx context.Context, filter ports.ReviewFilter) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// A NULL parameter disables the validated filter.
	rows, err := r.db.Query(ctx, `
		SELECT id, pseudonym, comment, validated, created_at
		FROM reviews
		WHERE ($1::boolean IS NULL OR validated = $1)
		ORDER BY created_at DESC, id DESC
	`, filter.Validated)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[domain.Review])
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rv domain.Review
	err := r.db.QueryRow(ctx, `
		SELECT id, pseudonym, comment, validated, created_at
		FROM reviews
		WHERE id = $1
	`, id).Scan(&rv.ID, &rv.Pseudonym, &rv.Comment, &rv.Validated, &rv.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &rv, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return insertReturningID(ctx, r.db, `
		INSERT INTO reviews (pseudonym, comment, validated, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, rv.Pseudonym, rv.Comment, rv.Validated, rv.CreatedAt)
}

func (r *ReviewRepository) UpdateComment(ctx context.Context, id int64, comment string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db, `UPDATE reviews SET comment = $1 WHERE id = $2`, comment, id)
}

func (r *ReviewRepository) SetValidated(ctx context.Context, id int64, validated bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db, `UPDATE reviews SET validated = $1 WHERE id = $2`, validated, id)
}
