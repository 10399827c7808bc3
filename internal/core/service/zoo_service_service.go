package service

import (
	"context"
	"fmt"

	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

// ZooServiceService manages the amenities offered to visitors.
type ZooServiceService struct {
	repo ports.ZooServiceRepository
}

func NewZooServiceService(repo ports.ZooServiceRepository) *ZooServiceService {
	return &ZooServiceService{repo: repo}
}

func (s *ZooServiceService) List(ctx context.Context) ([]*domain.ZooService, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return items, nil
}

func (s *ZooServiceService) Get(ctx context.Context, id int64) (*domain.ZooService, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service %d: %w", id, err)
	}
	return item, nil
}

func (s *ZooServiceService) Create(ctx context.Context, item *domain.ZooService) (int64, error) {
	id, err := s.repo.Create(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("create service: %w", err)
	}
	return id, nil
}

func (s *ZooServiceService) Update(ctx context.Context, item *domain.ZooService) error {
	if err := s.repo.Update(ctx, item); err != nil {
		return fmt.Errorf("update service %d: %w", item.ID, err)
	}
	return nil
}

func (s *ZooServiceService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service %d: %w", id, err)
	}
	return nil
}
