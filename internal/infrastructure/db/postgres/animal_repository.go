package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

const animalColumns = `id, name, species, description, condition, breed_id, habitat_id`

type AnimalRepository struct {
	db DBTX
}

func NewAnimalRepository(db DBTX) *AnimalRepository {
	return &AnimalRepository{db: db}
}

func scanAnimal(row pgx.Row) (*domain.Animal, error) {
	var a domain.Animal
	err := row.Scan(&a.ID, &a.Name, &a.Species, &a.Description, &a.Condition, &a.BreedID, &a.HabitatID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAnimals(rows pgx.Rows) ([]*domain.Animal, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Animal, error) {
		return scanAnimal(row)
	})
}

func (r *AnimalRepository) List(ctx context.Context) ([]*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+animalColumns+` FROM animals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query animals: %w", err)
	}
	return collectAnimals(rows)
}

func (r *AnimalRepository) FindByID(ctx context.Context, id int64) (*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a, err := scanAnimal(r.db.QueryRow(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (r *AnimalRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("query animals by id: %w", err)
	}
	return collectAnimals(rows)
}

func (r *AnimalRepository) Create(ctx context.Context, a *domain.Animal) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return insertReturningID(ctx, r.db, `
		INSERT INTO animals (name, species, description, condition, breed_id, habitat_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, a.Name, a.Species, a.Description, a.Condition, a.BreedID, a.HabitatID)
}

func (r *AnimalRepository) Update(ctx context.Context, a *domain.Animal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db, `
		UPDATE animals
		SET name = $1, species = $2, description = $3, condition = $4, breed_id = $5, habitat_id = $6
		WHERE id = $7
	`, a.Name, a.Species, a.Description, a.Condition, a.BreedID, a.HabitatID, a.ID)
}

func (r *AnimalRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return execOne(ctx, r.db, `DELETE FROM animals WHERE id = $1`, id)
}
