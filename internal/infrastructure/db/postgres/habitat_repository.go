package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

type HabitatRepository struct {
	db DBTX
}

func NewHabitatRepository(db DBTX) *HabitatRepository {
	return &HabitatRepository{db: db}
}

func scanHabitat(row pgx.Row) (*domain.Habitat, error) {
	var h domain.Habitat
	if err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Comment); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HabitatRepository) List(ctx context.Context) ([]*domain.Habitat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, name, description, COALESCE(comment, '') FROM habitats ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query habitats: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Habitat, error) {
		return scanHabitat(row)
	})
}

func (r *HabitatRepository) FindByID(ctx context.Context, id int64) (*domain.Habitat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	h, err := scanHabitat(r.db.QueryRow(ctx,
		`SELECT id, name, description, COALESCE(comment, '') FROM habitats WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return h, nil
}

func (r *HabitatRepository) Create(ctx context.Context, h *domain.Habitat) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return insertReturningID(ctx, r.db,
		`INSERT INTO habitats (name, description, comment) VALUES ($1, $2, $3) RETURNING id`,
		h.Name, h.Description, h.Comment)
}

func (r *HabitatRepository) Update(ctx context.Context, h *domain.Habitat) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db,
		`UPDATE habitats SET name = $1, description = $2, comment = $3 WHERE id = $4`,
		h.Name, h.Description, h.Comment, h.ID)
}

func (r *HabitatRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db, `DELETE FROM habitats WHERE id = $1`, id)
}
