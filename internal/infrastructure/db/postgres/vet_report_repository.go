package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

type VetReportRepository struct {
	db DBTX
}

func NewVetReportRepository(db DBTX) *VetReportRepository {
	return &VetReportRepository{db: db}
}

func (r *VetReportRepository) List(ctx context.Context) ([]*domain.VetReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, animal_id, condition, COALESCE(comment, ''), visited_on
		FROM vet_reports
		ORDER BY visited_on DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query vet reports: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[domain.VetReport])
}

func (r *VetReportRepository) Create(ctx context.Context, rep *domain.VetReport) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return insertReturningID(ctx, r.db, `
		INSERT INTO vet_reports (animal_id, condition, comment, visited_on)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, rep.AnimalID, rep.Condition, rep.Comment, rep.VisitedOn)
}

func (r *VetReportRepository) Update(ctx context.Context, rep *domain.VetReport) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db, `
		UPDATE vet_reports SET condition = $1, comment = $2, visited_on = $3
		WHERE id = $4
	`, rep.Condition, rep.Comment, rep.VisitedOn, rep.ID)
}

func (r *VetReportRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db, `DELETE FROM vet_reports WHERE id = $1`, id)
}
