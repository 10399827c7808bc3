package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia/zoo-api/internal/api/metrics"
	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login. Unknown email and wrong password produce
// the same 401 body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case err == nil:
		metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return err
	default:
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Register handles POST /auth/register. The route is restricted to
// administrators by the router.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	id, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.RoleID)
	if err != nil {
		return err
	}

	metrics.AccountsRegisteredTotal.WithLabelValues(domain.Role(req.RoleID).String()).Inc()
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}
