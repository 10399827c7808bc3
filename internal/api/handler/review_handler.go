package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/core/ports"
)

type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET /reviews. The optional ?validated=true|false narrows the
// listing; the public site asks for validated reviews only.
func (h *ReviewHandler) List(c echo.Context) error {
	var filter ports.ReviewFilter
	if raw := c.QueryParam("validated"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "validated must be true or false")
		}
		filter.Validated = &v
	}

	reviews, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	review, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Submit handles POST /reviews from anonymous visitors. The review starts
// unvalidated.
func (h *ReviewHandler) Submit(c echo.Context) error {
	var req reviewRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	id, err := h.service.Submit(c.Request().Context(), req.Pseudonym, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// EditComment handles PUT /reviews/:id.
func (h *ReviewHandler) EditComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req reviewCommentRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.service.EditComment(c.Request().Context(), id, req.Comment); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetValidated handles PUT /reviews/:id/validation.
func (h *ReviewHandler) SetValidated(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req reviewValidationRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.service.SetValidated(c.Request().Context(), id, *req.Validated); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
