package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

type AnimalService struct {
	repo       ports.AnimalRepository
	clicks     ports.ClickCounter
	dispatcher ports.ClickDispatcher
	log        zerolog.Logger
}

func NewAnimalService(repo ports.AnimalRepository, clicks ports.ClickCounter, dispatcher ports.ClickDispatcher, log zerolog.Logger) *AnimalService {
	return &AnimalService{repo: repo, clicks: clicks, dispatcher: dispatcher, log: log}
}

func (s *AnimalService) List(ctx context.Context) ([]*domain.Animal, error) {
	animals, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return animals, nil
}

// Get attaches the current click count. A counter outage degrades to zero
// clicks instead of failing the read.
func (s *AnimalService) Get(ctx context.Context, id int64) (*domain.Animal, error) {
	animal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get animal %d: %w", id, err)
	}

	n, err := s.clicks.Count(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Int64("animal_id", id).Msg("click count unavailable")
	}
	animal.Clicks = n
	return animal, nil
}

// Popular returns the most viewed animals in rank order. Ranked ids that no
// longer exist in the store are skipped.
func (s *AnimalService) Popular(ctx context.Context) ([]*domain.Animal, error) {
	ranking, err := s.clicks.Top(ctx, domain.PopularAnimalsLimit)
	if err != nil {
		return nil, fmt.Errorf("popular animals: rank: %w", err)
	}
	if len(ranking) == 0 {
		return []*domain.Animal{}, nil
	}

	ids := make([]int64, len(ranking))
	for i, r := range ranking {
		ids[i] = r.AnimalID
	}

	found, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("popular animals: load: %w", err)
	}
	byID := make(map[int64]*domain.Animal, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	out := make([]*domain.Animal, 0, len(ranking))
	for _, r := range ranking {
		a, ok := byID[r.AnimalID]
		if !ok {
			continue
		}
		a.Clicks = r.Clicks
		out = append(out, a)
	}
	return out, nil
}

func (s *AnimalService) Create(ctx context.Context, a *domain.Animal) (int64, error) {
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("create animal: %w", err)
	}
	return id, nil
}

func (s *AnimalService) Update(ctx context.Context, a *domain.Animal) error {
	if err := s.repo.Update(ctx, a); err != nil {
		return fmt.Errorf("update animal %d: %w", a.ID, err)
	}
	return nil
}

func (s *AnimalService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete animal %d: %w", id, err)
	}
	if err := s.clicks.Forget(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("animal_id", id).Msg("failed to drop click counter")
	}
	return nil
}

func (s *AnimalService) RecordClick(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("record click %d: %w", id, err)
	}
	s.dispatcher.Enqueue(id)
	return nil
}
