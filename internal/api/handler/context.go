package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id route parameter. Anything that is not a positive
// integer is a 400; the lookup itself decides between found and 404.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// bindValid decodes the request body into req and runs the struct validator.
// Both failures are client errors.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
