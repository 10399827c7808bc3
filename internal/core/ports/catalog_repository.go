package ports

import (
	"context"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

// Repositories below return domain.ErrNotFound when a row addressed by id is
// absent, including updates and deletes that affect zero rows.

type AnimalRepository interface {
	List(ctx context.Context) ([]*domain.Animal, error)
	FindByID(ctx context.Context, id int64) (*domain.Animal, error)
	// FindByIDs returns the animals that exist, in no particular order.
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.Animal, error)
	Create(ctx context.Context, a *domain.Animal) (int64, error)
	Update(ctx context.Context, a *domain.Animal) error
	Delete(ctx context.Context, id int64) error
}

type HabitatRepository interface {
	List(ctx context.Context) ([]*domain.Habitat, error)
	FindByID(ctx context.Context, id int64) (*domain.Habitat, error)
	Create(ctx context.Context, h *domain.Habitat) (int64, error)
	Update(ctx context.Context, h *domain.Habitat) error
	Delete(ctx context.Context, id int64) error
}

type ZooServiceRepository interface {
	List(ctx context.Context) ([]*domain.ZooService, error)
	FindByID(ctx context.Context, id int64) (*domain.ZooService, error)
	Create(ctx context.Context, s *domain.ZooService) (int64, error)
	Update(ctx context.Context, s *domain.ZooService) error
	Delete(ctx context.Context, id int64) error
}

// ReviewFilter narrows the review listing. A nil Validated lists everything.
type ReviewFilter struct {
	Validated *bool
}

type ReviewRepository interface {
	List(ctx context.Context, filter ReviewFilter) ([]*domain.Review, error)
	FindByID(ctx context.Context, id int64) (*domain.Review, error)
	Create(ctx context.Context, r *domain.Review) (int64, error)
	UpdateComment(ctx context.Context, id int64, comment string) error
	SetValidated(ctx context.Context, id int64, validated bool) error
}

type VetReportRepository interface {
	List(ctx context.Context) ([]*domain.VetReport, error)
	Create(ctx context.Context, r *domain.VetReport) (int64, error)
	Update(ctx context.Context, r *domain.VetReport) error
	Delete(ctx context.Context, id int64) error
}

// ClickCounter keeps per-animal view counts.
type ClickCounter interface {
	Increment(ctx context.Context, animalID int64) error
	Count(ctx context.Context, animalID int64) (int64, error)
	// Top returns up to n animal ids ordered by descending count.
	Top(ctx context.Context, n int) ([]RankedAnimal, error)
	Forget(ctx context.Context, animalID int64) error
}

// RankedAnimal is one entry of the popularity ranking.
type RankedAnimal struct {
	AnimalID int64
	Clicks   int64
}
