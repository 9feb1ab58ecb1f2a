package handlers

import (
	"net/http"

	"github.com/diewo77/nexa-crm/internal/httpx"
	"github.com/diewo77/nexa-crm/internal/i18n"
	"github.com/diewo77/nexa-crm/internal/navigation"
	"github.com/diewo77/nexa-crm/internal/sectors"
	"github.com/diewo77/nexa-crm/internal/services"
)

type StateHandler struct {
	Service *services.CompanyStateService
}

func NewStateHandler(s *services.CompanyStateService) *StateHandler { return &StateHandler{Service: s} }

func (h *StateHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/state/select", h.handleSelect)
	mux.HandleFunc("/api/state/reset", h.handleReset)
	mux.HandleFunc("/api/navigation/menu", h.handleMenu)
	mux.HandleFunc("/api/dashboard/kpis", h.handleKPIs)
}

// GET returns the last snapshot; POST forces a refresh.
func (h *StateHandler) handleState(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		httpx.JSON(w, http.StatusOK, h.Service.Snapshot())
	case http.MethodPost:
		httpx.JSON(w, http.StatusOK, h.Service.Refresh())
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}
}

type selectRequest struct {
	CompanyID string `json:"company_id"`
}

func (h *StateHandler) handleSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	var req selectRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	if req.CompanyID == "" {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", map[string]string{"company_id": "required"})
		return
	}
	httpx.JSON(w, http.StatusOK, h.Service.SelectCompany(req.CompanyID))
}

func (h *StateHandler) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, h.Service.ResetAll())
}

// handleMenu builds the navigation entries from the resolved object list.
func (h *StateHandler) handleMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	snap := h.Service.Snapshot()
	httpx.JSON(w, http.StatusOK, navigation.BuildMenu(snap.CustomObjects))
}

// handleKPIs returns the dashboard KPI identifiers of the active sector.
func (h *StateHandler) handleKPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	snap := h.Service.Snapshot()
	if snap.Company == nil {
		httpx.JSONError(w, http.StatusNotFound, "no_active_company", map[string]string{"message": i18n.T(lang, "no_active_company")})
		return
	}
	profile, ok := sectors.Get(snap.Company.Sector)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", map[string]string{"message": i18n.T(lang, "unknown_sector")})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"sector": profile.ID, "kpis": profile.DashboardKPIs})
}
