package services

import (
	"errors"
	"fmt"

	"github.com/diewo77/nexa-crm/internal/entity"
	"github.com/diewo77/nexa-crm/internal/models"
	"github.com/diewo77/nexa-crm/internal/sectors"
	"github.com/diewo77/nexa-crm/internal/state"
)

type OnboardingInput struct {
	Name    string `json:"name"`
	Sector  string `json:"sector"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

var (
	ErrMissingCompanyName = errors.New("missing_company_name")
	ErrUnknownSector      = errors.New("unknown_sector")
)

// Fonctionnalités activées par défaut à la création d'une entreprise.
var defaultFeatures = []string{"accounts", "contacts", "quotes", "invoices"}

// OnboardingService crée l'entreprise, sa configuration et un CustomObject
// par définition du secteur choisi.
type OnboardingService struct {
	Entities *entity.Store
	Local    state.Store
}

func NewOnboardingService(store *entity.Store, local state.Store) *OnboardingService {
	return &OnboardingService{Entities: store, Local: local}
}

// Run executes the onboarding sequence. The sector is validated before any
// write; after that the steps are sequential without compensation, a failure
// partway leaves the prior writes in place.
func (s *OnboardingService) Run(in OnboardingInput) (*models.Company, error) {
	if in.Name == "" {
		return nil, ErrMissingCompanyName
	}
	profile, ok := sectors.Get(in.Sector)
	if !ok {
		return nil, ErrUnknownSector
	}

	companyRec, err := s.Entities.Create("Company", map[string]any{
		"name":      in.Name,
		"sector":    in.Sector,
		"email":     in.Email,
		"phone":     in.Phone,
		"address":   in.Address,
		"is_active": true,
	})
	if err != nil {
		return nil, fmt.Errorf("création de l'entreprise: %w", err)
	}
	var company models.Company
	if err := companyRec.Decode(&company); err != nil {
		return nil, err
	}
	if err := s.Local.Set(company.ID); err != nil {
		return &company, fmt.Errorf("sélection de l'entreprise: %w", err)
	}

	if _, err := s.Entities.Create("AppConfiguration", map[string]any{
		"company_id":           company.ID,
		"sector":               in.Sector,
		"onboarding_completed": true,
		"features_enabled":     defaultFeatures,
	}); err != nil {
		return &company, fmt.Errorf("création de la configuration: %w", err)
	}

	for _, obj := range profile.CoreObjects {
		if err := s.createObjectRecord(obj, in.Sector, true); err != nil {
			return &company, err
		}
	}
	for _, obj := range profile.CustomObjects {
		if err := s.createObjectRecord(obj, in.Sector, false); err != nil {
			return &company, err
		}
	}
	return &company, nil
}

func (s *OnboardingService) createObjectRecord(obj sectors.Object, sector string, core bool) error {
	if _, err := s.Entities.Create("CustomObject", map[string]any{
		"name":         obj.Name,
		"label":        obj.Label,
		"label_plural": obj.PluralLabel(),
		"icon":         obj.Icon,
		"sector":       sector,
		"menu_order":   obj.MenuOrder,
		"record_types": obj.Types,
		"is_core":      core,
		"is_active":    true,
	}); err != nil {
		return fmt.Errorf("création de l'objet %s: %w", obj.Name, err)
	}
	return nil
}
