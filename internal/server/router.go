// Package server assemble le routeur HTTP et ses middlewares.
package server

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/nexa-crm/internal/entity"
	"github.com/diewo77/nexa-crm/internal/handlers"
	"github.com/diewo77/nexa-crm/internal/httpx"
	"github.com/diewo77/nexa-crm/internal/services"
	"github.com/diewo77/nexa-crm/internal/state"
)

// New constructs the root http.Handler with all routes and middlewares
// applied. The local store carries the selected-company id.
func New(db *gorm.DB, local state.Store) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		// Lightweight DB check; detailed errors stay out of the body.
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	entities := entity.NewStore(db)
	stateSvc := services.NewCompanyStateService(entities, local)
	stateSvc.Refresh()

	onboardingSvc := services.NewOnboardingService(entities, local)
	studioSvc := services.NewStudioService(entities, stateSvc)

	handlers.NewSectorsHandler().Register(mux)
	handlers.NewStateHandler(stateSvc).Register(mux)
	handlers.NewOnboardingHandler(onboardingSvc, stateSvc).Register(mux)
	handlers.NewStudioHandler(studioSvc, stateSvc).Register(mux)

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, werr := w.Write([]byte("Nexa CRM API - voir /api/sectors")); werr != nil {
			_ = werr
		}
	})

	return withRecover(withLogging(mux))
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic sur %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
