package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHealthHandler_Liveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health-check", nil)
	rec := httptest.NewRecorder()

	if err := NewHealthHandler().Liveness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("liveness: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "Server is up!" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestReadinessHandler_HealthyDataDir(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	h := NewReadinessHandler(t.TempDir(), nil)
	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("readiness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Dependencies["datadir"].Status != "ok" {
		t.Fatalf("response = %+v", resp)
	}
	if _, probed := resp.Dependencies["redis"]; probed {
		t.Fatalf("redis probed despite being disabled: %+v", resp)
	}
}

func TestReadinessHandler_DegradesOnUnwritableDataDir(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	h := NewReadinessHandler("/nonexistent/showcase-data", nil)
	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("readiness: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["datadir"].Status != "unhealthy" {
		t.Fatalf("response = %+v", resp)
	}
}
