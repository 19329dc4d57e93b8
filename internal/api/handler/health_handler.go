package handler

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles GET /health-check, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "Server is up!")
}

// ReadinessHandler handles GET /health/ready, the readiness probe.
// Checks that the data directory is writable and, when configured, that Redis
// answers a ping.
type ReadinessHandler struct {
	dataDir string
	redis   *redis.Client // nil when Redis is disabled
}

func NewReadinessHandler(dataDir string, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{dataDir: dataDir, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Data directory writable ---
	probe := filepath.Join(h.dataDir, ".readiness")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		deps["datadir"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		_ = os.Remove(probe)
		deps["datadir"] = dependencyStatus{Status: "ok"}
	}

	// --- Redis ping (optional dependency) ---
	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
