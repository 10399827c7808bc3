package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/core/ports"
)

type VetReportHandler struct {
	service ports.VetReportService
}

func NewVetReportHandler(service ports.VetReportService) *VetReportHandler {
	return &VetReportHandler{service: service}
}

func (h *VetReportHandler) List(c echo.Context) error {
	reports, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

func (h *VetReportHandler) Create(c echo.Context) error {
	var req vetReportRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	report, err := toVetReport(0, req.AnimalID, vetReportUpdateRequest{
		Condition: req.Condition,
		Comment:   req.Comment,
		VisitedOn: req.VisitedOn,
	})
	if err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), report)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

func (h *VetReportHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req vetReportUpdateRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	report, err := toVetReport(id, 0, req)
	if err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), report); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VetReportHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
