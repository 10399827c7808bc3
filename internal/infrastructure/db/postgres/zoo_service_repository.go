package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

type ZooServiceRepository struct {
	db DBTX
}

func NewZooServiceRepository(db DBTX) *ZooServiceRepository {
	return &ZooServiceRepository{db: db}
}

func (r *ZooServiceRepository) List(ctx context.Context) ([]*domain.ZooService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM services ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[domain.ZooService])
}

func (r *ZooServiceRepository) FindByID(ctx context.Context, id int64) (*domain.ZooService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.ZooService
	err := r.db.QueryRow(ctx, `SELECT id, name, description FROM services WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description)
	if err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *ZooServiceRepository) Create(ctx context.Context, s *domain.ZooService) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return insertReturningID(ctx, r.db,
		`INSERT INTO services (name, description) VALUES ($1, $2) RETURNING id`,
		s.Name, s.Description)
}

func (r *ZooServiceRepository) Update(ctx context.Context, s *domain.ZooService) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db,
		`UPDATE services SET name = $1, description = $2 WHERE id = $3`,
		s.Name, s.Description, s.ID)
}

func (r *ZooServiceRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db, `DELETE FROM services WHERE id = $1`, id)
}
