package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/nexa-crm/internal/entity"
	"github.com/diewo77/nexa-crm/internal/httpx"
	"github.com/diewo77/nexa-crm/internal/i18n"
	"github.com/diewo77/nexa-crm/internal/services"
)

type StudioHandler struct {
	Service *services.StudioService
	State   *services.CompanyStateService
}

func NewStudioHandler(s *services.StudioService, st *services.CompanyStateService) *StudioHandler {
	return &StudioHandler{Service: s, State: st}
}

func (h *StudioHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/studio/objects", h.handleObjects)
	mux.HandleFunc("/api/studio/objects/types", h.handleObjectTypes)
	mux.HandleFunc("/api/studio/fields", h.handleFields)
	mux.HandleFunc("/api/studio/rules", h.handleRules)
	mux.HandleFunc("/api/studio/flows", h.handleFlows)
}

// writeStudioError maps service sentinels onto HTTP error codes.
func writeStudioError(w http.ResponseWriter, r *http.Request, err error) {
	lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	switch {
	case errors.Is(err, services.ErrMissingObjectName):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", map[string]string{"object_name": "required"})
	case errors.Is(err, services.ErrMissingName):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", map[string]string{"name": "required"})
	case errors.Is(err, services.ErrMissingLabel):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", map[string]string{"label": "required"})
	case errors.Is(err, services.ErrInvalidTrigger):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", map[string]string{"trigger": "invalid"})
	case errors.Is(err, services.ErrNoActiveCompany):
		httpx.JSONError(w, http.StatusConflict, "no_active_company", map[string]string{"message": i18n.T(lang, "no_active_company")})
	case errors.Is(err, entity.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", map[string]string{"message": i18n.T(lang, "not_found")})
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", map[string]string{"message": err.Error()})
	}
}

// GET lists the resolved objects of the active company; POST creates one.
func (h *StudioHandler) handleObjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		httpx.JSON(w, http.StatusOK, h.State.Snapshot().CustomObjects)
	case http.MethodPost:
		var in services.ObjectInput
		if err := httpx.Decode(r, &in); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
			return
		}
		obj, err := h.Service.CreateObject(in)
		if err != nil {
			writeStudioError(w, r, err)
			return
		}
		h.State.Refresh()
		httpx.JSON(w, http.StatusCreated, obj)
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}
}

type objectTypesRequest struct {
	ObjectID    string `json:"object_id"`
	RecordTypes string `json:"record_types"`
}

func (h *StudioHandler) handleObjectTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	var req objectTypesRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	if req.ObjectID == "" {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", map[string]string{"object_id": "required"})
		return
	}
	obj, err := h.Service.UpdateObjectTypes(req.ObjectID, req.RecordTypes)
	if err != nil {
		writeStudioError(w, r, err)
		return
	}
	h.State.Refresh()
	httpx.JSON(w, http.StatusOK, obj)
}

func (h *StudioHandler) handleFields(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		fields, err := h.Service.ListFields(r.URL.Query().Get("object_name"))
		if err != nil {
			writeStudioError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, fields)
	case http.MethodPost:
		var in services.FieldInput
		if err := httpx.Decode(r, &in); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
			return
		}
		field, err := h.Service.CreateField(in)
		if err != nil {
			writeStudioError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, field)
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}
}

func (h *StudioHandler) handleRules(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		rules, err := h.Service.ListRules(r.URL.Query().Get("object_name"))
		if err != nil {
			writeStudioError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, rules)
	case http.MethodPost:
		var in services.RuleInput
		if err := httpx.Decode(r, &in); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
			return
		}
		rule, err := h.Service.CreateRule(in)
		if err != nil {
			writeStudioError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, rule)
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}
}

func (h *StudioHandler) handleFlows(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		flows, err := h.Service.ListFlows(r.URL.Query().Get("object_name"))
		if err != nil {
			writeStudioError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, flows)
	case http.MethodPost:
		var in services.FlowInput
		if err := httpx.Decode(r, &in); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
			return
		}
		flow, err := h.Service.CreateFlow(in)
		if err != nil {
			writeStudioError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, flow)
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}
}
