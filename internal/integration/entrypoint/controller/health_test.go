// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performHealthCheck(t *testing.T, h *HealthController) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.Check(ctx)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	var response HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return response
}

func TestHealthController_Check(t *testing.T) {
	tests := []struct {
		name         string
		dbChecker    func() bool
		cacheChecker func() bool
		wantDatabase string
		wantCache    string
	}{
		{
			name:         "all backing services up",
			dbChecker:    func() bool { return true },
			cacheChecker: func() bool { return true },
			wantDatabase: "connected",
			wantCache:    "connected",
		},
		{
			name:         "database down",
			dbChecker:    func() bool { return false },
			cacheChecker: func() bool { return true },
			wantDatabase: "disconnected",
			wantCache:    "connected",
		},
		{
			name:         "cache unreachable",
			dbChecker:    func() bool { return true },
			cacheChecker: func() bool { return false },
			wantDatabase: "connected",
			wantCache:    "disconnected",
		},
		{
			name:         "cache not configured",
			dbChecker:    func() bool { return true },
			cacheChecker: nil,
			wantDatabase: "connected",
			wantCache:    "disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := performHealthCheck(t, NewHealthController(tt.dbChecker, tt.cacheChecker))

			if response.Status != "ok" {
				t.Errorf("status = %q, want %q", response.Status, "ok")
			}
			if response.Database != tt.wantDatabase {
				t.Errorf("database = %q, want %q", response.Database, tt.wantDatabase)
			}
			if response.Cache != tt.wantCache {
				t.Errorf("cache = %q, want %q", response.Cache, tt.wantCache)
			}
			if response.Timestamp == "" {
				t.Error("timestamp is empty")
			}
		})
	}
}
