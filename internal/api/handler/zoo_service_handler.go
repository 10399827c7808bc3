package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/core/ports"
)

// ZooServiceHandler serves the /services routes (restaurant, guided tours...).
type ZooServiceHandler struct {
	service ports.ZooServiceService
}

func NewZooServiceHandler(service ports.ZooServiceService) *ZooServiceHandler {
	return &ZooServiceHandler{service: service}
}

func (h *ZooServiceHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ZooServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ZooServiceHandler) Create(c echo.Context) error {
	var req zooServiceRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), toZooService(0, req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

func (h *ZooServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req zooServiceRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), toZooService(id, req)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ZooServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
