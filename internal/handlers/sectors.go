// Package handlers expose le cœur applicatif en JSON : catalogue de
// secteurs, état entreprise, onboarding et studio d'administration.
package handlers

import (
	"net/http"

	"github.com/diewo77/nexa-crm/internal/httpx"
	"github.com/diewo77/nexa-crm/internal/i18n"
	"github.com/diewo77/nexa-crm/internal/sectors"
)

type SectorsHandler struct{}

func NewSectorsHandler() *SectorsHandler { return &SectorsHandler{} }

func (h *SectorsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/sectors", h.handle)
}

// handle serves the full catalog, or a single profile when ?id= is given.
// An unknown id is a 404, never a default profile.
func (h *SectorsHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSON(w, http.StatusOK, sectors.All())
		return
	}
	profile, ok := sectors.Get(id)
	if !ok {
		lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		httpx.JSONError(w, http.StatusNotFound, "not_found", map[string]string{"message": i18n.T(lang, "unknown_sector")})
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}
