package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
)

func TestBuildApplication_MemoryStorageServesRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := buildApplication(context.Background(), Config{StorageDriver: StorageMemory, LockTTL: time.Second}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("build application: %v", err)
	}
	defer app.close()
	getRoutes(app)

	tests := []struct {
		method, path, body string
		status             int
	}{
		{http.MethodGet, "/v1/ping", "", http.StatusOK},
		{http.MethodPatch, "/v1/quotes/1/approve", `{"user_id":7}`, http.StatusNotFound},
		{http.MethodPatch, "/v1/quotes/1/reject", "", http.StatusNotFound},
		{http.MethodPatch, "/v1/quotes/x/delete", "", http.StatusBadRequest},
		{http.MethodGet, "/v1/inventory/1/availability", "", http.StatusNotFound},
		{http.MethodPost, "/v1/inventory/1/restock", `{"quantity":1}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		var req *http.Request
		if tt.body == "" {
			req = httptest.NewRequest(tt.method, tt.path, nil)
		} else {
			req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tt.status {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tt.method, tt.path, tt.status, w.Code, w.Body.String())
		}
	}
}

func TestBuildApplication_RejectsBadStorageConfig(t *testing.T) {
	logger := zaptest.NewLogger(t)

	if _, err := buildApplication(context.Background(), Config{StorageDriver: "cassandra"}, logger); err == nil {
		t.Fatalf("expected an error for an unknown driver")
	}
	if _, err := buildApplication(context.Background(), Config{StorageDriver: StoragePostgres}, logger); err == nil {
		t.Fatalf("expected an error when DATABASE_DSN is missing")
	}
}
