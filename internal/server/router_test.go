package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/nexa-crm/internal/entity"
	"github.com/diewo77/nexa-crm/internal/state"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := entity.NewStore(db).Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, state.NewMemoryStore())
}

func TestHealthEndpoints(t *testing.T) {
	h := newRouter(t)
	for _, path := range []string{"/health", "/healthz"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rr.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if body["status"] != "ok" {
			t.Fatalf("%s: unexpected status %q", path, body["status"])
		}
	}
}

func TestRouterServesAPIRoutes(t *testing.T) {
	h := newRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sectors", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("sectors: expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/state", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("state: expected 200, got %d", rr.Code)
	}
	var snap map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	// No company yet: the startup refresh resolves to the absent state.
	if snap["presence"] != "absent" {
		t.Fatalf("expected absent presence, got %v", snap["presence"])
	}
}
