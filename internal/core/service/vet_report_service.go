package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

type VetReportService struct {
	repo    ports.VetReportRepository
	animals ports.AnimalRepository
}

func NewVetReportService(repo ports.VetReportRepository, animals ports.AnimalRepository) *VetReportService {
	return &VetReportService{repo: repo, animals: animals}
}

func (s *VetReportService) List(ctx context.Context) ([]*domain.VetReport, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vet reports: %w", err)
	}
	return reports, nil
}

// Create rejects reports for animals that do not exist.
func (s *VetReportService) Create(ctx context.Context, r *domain.VetReport) (int64, error) {
	if _, err := s.animals.FindByID(ctx, r.AnimalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("create vet report: %w", domain.NewInputError(fmt.Sprintf("unknown animal %d", r.AnimalID)))
		}
		return 0, fmt.Errorf("create vet report: animal %d: %w", r.AnimalID, err)
	}

	id, err := s.repo.Create(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("create vet report: %w", err)
	}
	return id, nil
}

func (s *VetReportService) Update(ctx context.Context, r *domain.VetReport) error {
	if err := s.repo.Update(ctx, r); err != nil {
		return fmt.Errorf("update vet report %d: %w", r.ID, err)
	}
	return nil
}

func (s *VetReportService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vet report %d: %w", id, err)
	}
	return nil
}
