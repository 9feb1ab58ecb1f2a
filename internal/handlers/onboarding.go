package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/diewo77/nexa-crm/internal/httpx"
	"github.com/diewo77/nexa-crm/internal/i18n"
	"github.com/diewo77/nexa-crm/internal/services"
)

type OnboardingHandler struct {
	Service *services.OnboardingService
	State   *services.CompanyStateService
}

func NewOnboardingHandler(s *services.OnboardingService, st *services.CompanyStateService) *OnboardingHandler {
	return &OnboardingHandler{Service: s, State: st}
}

func (h *OnboardingHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/onboarding", h.handle)
}

func (h *OnboardingHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	var in services.OnboardingInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	in.Name = strings.TrimSpace(in.Name)

	company, err := h.Service.Run(in)
	switch {
	case errors.Is(err, services.ErrMissingCompanyName):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", map[string]string{"name": "required"})
		return
	case errors.Is(err, services.ErrUnknownSector):
		lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		httpx.JSONError(w, http.StatusUnprocessableEntity, "unknown_sector", map[string]string{"message": i18n.T(lang, "unknown_sector")})
		return
	case err != nil:
		// A failure partway leaves the earlier writes in place; the raw
		// message is surfaced to the operator.
		httpx.JSONError(w, http.StatusInternalServerError, "onboarding_failed", map[string]string{"message": err.Error()})
		return
	}

	snapshot := h.State.Refresh()
	httpx.JSON(w, http.StatusCreated, map[string]any{"company": company, "state": snapshot})
}
