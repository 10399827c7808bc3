package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealth_Liveness(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealth_Readiness(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cases := []struct {
		name     string
		dbErr    error
		wantCode int
		wantPG   string
	}{
		{"all up", nil, http.StatusOK, "ok"},
		{"postgres down", errors.New("connection refused"), http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodGet, "/health/ready", "")
			if err := NewHealthDependenciesHandler(stubPinger{tc.dbErr}, rdb).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Dependencies["postgres"].Status != tc.wantPG || resp.Dependencies["redis"].Status != "ok" {
				t.Fatalf("unexpected dependencies: %+v", resp.Dependencies)
			}
		})
	}
}
