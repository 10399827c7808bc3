package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/core/ports"
)

type AnimalHandler struct {
	service ports.AnimalService
}

func NewAnimalHandler(service ports.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

// List handles GET /animals.
func (h *AnimalHandler) List(c echo.Context) error {
	animals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}

// Popular handles GET /animals/popular, most viewed first.
func (h *AnimalHandler) Popular(c echo.Context) error {
	animals, err := h.service.Popular(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}

// Get handles GET /animals/:id.
func (h *AnimalHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	animal, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animal)
}

// Create handles POST /animals.
func (h *AnimalHandler) Create(c echo.Context) error {
	var req animalRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), toAnimal(0, req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Update handles PUT /animals/:id.
func (h *AnimalHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req animalRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), toAnimal(id, req)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /animals/:id.
func (h *AnimalHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Click handles POST /animals/:id/click. Counting happens in the background,
// so the response is 202.
func (h *AnimalHandler) Click(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.RecordClick(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "click accepted"})
}
