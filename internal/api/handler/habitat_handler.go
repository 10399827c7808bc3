package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/core/ports"
)

type HabitatHandler struct {
	service ports.HabitatService
}

func NewHabitatHandler(service ports.HabitatService) *HabitatHandler {
	return &HabitatHandler{service: service}
}

func (h *HabitatHandler) List(c echo.Context) error {
	habitats, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, habitats)
}

func (h *HabitatHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	habitat, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, habitat)
}

func (h *HabitatHandler) Create(c echo.Context) error {
	var req habitatRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), toHabitat(0, req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

func (h *HabitatHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req habitatRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), toHabitat(id, req)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *HabitatHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
