package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

func toAnimal(id int64, req animalRequest) *domain.Animal {
	return &domain.Animal{
		ID:          id,
		Name:        req.Name,
		Species:     req.Species,
		Description: req.Description,
		Condition:   req.Condition,
		BreedID:     req.BreedID,
		HabitatID:   req.HabitatID,
	}
}

func toHabitat(id int64, req habitatRequest) *domain.Habitat {
	return &domain.Habitat{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Comment:     req.Comment,
	}
}

func toZooService(id int64, req zooServiceRequest) *domain.ZooService {
	return &domain.ZooService{ID: id, Name: req.Name, Description: req.Description}
}

func toVetReport(id, animalID int64, req vetReportUpdateRequest) (*domain.VetReport, error) {
	visited, err := time.Parse(dateLayout, req.VisitedOn)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "visited_on must be a date formatted as "+dateLayout)
	}
	return &domain.VetReport{
		ID:        id,
		AnimalID:  animalID,
		Condition: req.Condition,
		Comment:   req.Comment,
		VisitedOn: visited,
	}, nil
}
