package ports

import (
	"context"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

// AnimalService covers the animal routes, including click tracking.
type AnimalService interface {
	List(ctx context.Context) ([]*domain.Animal, error)
	Get(ctx context.Context, id int64) (*domain.Animal, error)
	Popular(ctx context.Context) ([]*domain.Animal, error)
	Create(ctx context.Context, a *domain.Animal) (int64, error)
	Update(ctx context.Context, a *domain.Animal) error
	Delete(ctx context.Context, id int64) error
	// RecordClick checks the animal exists and hands the click to the dispatcher.
	RecordClick(ctx context.Context, id int64) error
}

// ClickDispatcher accepts click events for asynchronous counting.
type ClickDispatcher interface {
	Enqueue(animalID int64)
}

type HabitatService interface {
	List(ctx context.Context) ([]*domain.Habitat, error)
	Get(ctx context.Context, id int64) (*domain.Habitat, error)
	Create(ctx context.Context, h *domain.Habitat) (int64, error)
	Update(ctx context.Context, h *domain.Habitat) error
	Delete(ctx context.Context, id int64) error
}

type ZooServiceService interface {
	List(ctx context.Context) ([]*domain.ZooService, error)
	Get(ctx context.Context, id int64) (*domain.ZooService, error)
	Create(ctx context.Context, s *domain.ZooService) (int64, error)
	Update(ctx context.Context, s *domain.ZooService) error
	Delete(ctx context.Context, id int64) error
}

type ReviewService interface {
	List(ctx context.Context, filter ReviewFilter) ([]*domain.Review, error)
	Get(ctx context.Context, id int64) (*domain.Review, error)
	Submit(ctx context.Context, pseudonym, comment string) (int64, error)
	EditComment(ctx context.Context, id int64, comment string) error
	SetValidated(ctx context.Context, id int64, validated bool) error
}

type VetReportService interface {
	List(ctx context.Context) ([]*domain.VetReport, error)
	Create(ctx context.Context, r *domain.VetReport) (int64, error)
	Update(ctx context.Context, r *domain.VetReport) error
	Delete(ctx context.Context, id int64) error
}
