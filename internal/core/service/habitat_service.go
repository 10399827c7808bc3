package service

import (
	"context"
	"fmt"

	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

type HabitatService struct {
	repo ports.HabitatRepository
}

func NewHabitatService(repo ports.HabitatRepository) *HabitatService {
	return &HabitatService{repo: repo}
}

func (s *HabitatService) List(ctx context.Context) ([]*domain.Habitat, error) {
	habitats, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habitats: %w", err)
	}
	return habitats, nil
}

func (s *HabitatService) Get(ctx context.Context, id int64) (*domain.Habitat, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get habitat %d: %w", id, err)
	}
	return h, nil
}

func (s *HabitatService) Create(ctx context.Context, h *domain.Habitat) (int64, error) {
	id, err := s.repo.Create(ctx, h)
	if err != nil {
		return 0, fmt.Errorf("create habitat: %w", err)
	}
	return id, nil
}

func (s *HabitatService) Update(ctx context.Context, h *domain.Habitat) error {
	if err := s.repo.Update(ctx, h); err != nil {
		return fmt.Errorf("update habitat %d: %w", h.ID, err)
	}
	return nil
}

func (s *HabitatService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete habitat %d: %w", id, err)
	}
	return nil
}
