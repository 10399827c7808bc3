package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthDependenciesHandler handles GET /health/ready, the readiness probe.
// It checks Postgres and Redis before declaring the service ready.
type HealthDependenciesHandler struct {
	db      Pinger
	redis   redis.Cmdable
	timeout time.Duration
}

func NewHealthDependenciesHandler(db Pinger, rdb redis.Cmdable) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db, redis: rdb, timeout: 3 * time.Second}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deps := map[string]dependencyStatus{
		"postgres": probe(h.db.Ping(ctx)),
		"redis":    probe(h.redis.Ping(ctx).Err()),
	}

	status, httpStatus := "ok", http.StatusOK
	for _, d := range deps {
		if d.Status != "ok" {
			status, httpStatus = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	return c.JSON(httpStatus, readinessResponse{Status: status, Dependencies: deps})
}

func probe(err error) dependencyStatus {
	if err != nil {
		return dependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}
