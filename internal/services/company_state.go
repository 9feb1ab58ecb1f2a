// Package services porte la logique métier : résolution de l'état
// entreprise, onboarding et mutations du studio d'administration.
package services

import (
	"log"
	"sort"

	"github.com/diewo77/nexa-crm/internal/entity"
	"github.com/diewo77/nexa-crm/internal/models"
	"github.com/diewo77/nexa-crm/internal/state"
)

// Presence dit si une entreprise active existe. Trois cas explicites,
// jamais un booléen surchargé.
type Presence string

const (
	PresenceLoading Presence = "loading"
	PresenceAbsent  Presence = "absent"
	PresencePresent Presence = "present"
)

// Snapshot est l'état composé exposé au reste de l'application.
type Snapshot struct {
	Presence      Presence                 `json:"presence"`
	Company       *models.Company          `json:"company,omitempty"`
	Config        *models.AppConfiguration `json:"config,omitempty"`
	CustomObjects []models.CustomObject    `json:"custom_objects"`
	Companies     []models.Company         `json:"companies"`
	Error         string                   `json:"error,omitempty"`
}

// Ordre fixe de suppression du reset complet : les dépendants avant leurs
// dépendances, Company et AppConfiguration en dernier.
var resetKinds = []string{
	"Payment", "Invoice", "Order", "QuoteLine", "Quote",
	"Opportunity", "Case", "Contract", "Asset",
	"Contact", "Lead", "Account", "Product",
	"FlowElement", "Flow", "ValidationRule", "CustomField", "CustomObject",
	"AppConfiguration", "Company",
}

// CompanyStateService résout l'entreprise active, sa configuration et ses
// objets métier applicables.
type CompanyStateService struct {
	Entities *entity.Store
	Local    state.Store

	snap Snapshot
}

func NewCompanyStateService(store *entity.Store, local state.Store) *CompanyStateService {
	return &CompanyStateService{
		Entities: store,
		Local:    local,
		snap:     Snapshot{Presence: PresenceLoading, CustomObjects: []models.CustomObject{}, Companies: []models.Company{}},
	}
}

// Snapshot returns the last resolved state.
func (s *CompanyStateService) Snapshot() Snapshot { return s.snap }

// Refresh reloads companies, selects one, and resolves its configuration and
// custom objects. A load failure keeps the previous company/config/objects
// and surfaces the message on the snapshot; the caller retries via Refresh.
func (s *CompanyStateService) Refresh() Snapshot {
	companies, err := s.loadCompanies()
	if err != nil {
		log.Printf("[state] échec du chargement des entreprises: %v", err)
		s.snap.Error = err.Error()
		return s.snap
	}
	if len(companies) == 0 {
		if err := s.Local.Clear(); err != nil {
			log.Printf("[state] échec de l'effacement de la sélection: %v", err)
		}
		s.snap = Snapshot{
			Presence:      PresenceAbsent,
			CustomObjects: []models.CustomObject{},
			Companies:     []models.Company{},
		}
		return s.snap
	}

	selected := s.selectFrom(companies)
	config, objects, err := s.resolveFor(selected)
	if err != nil {
		log.Printf("[state] échec de la résolution pour %s: %v", selected.ID, err)
		s.snap.Error = err.Error()
		s.snap.Companies = companies
		return s.snap
	}
	s.snap = Snapshot{
		Presence:      PresencePresent,
		Company:       &selected,
		Config:        config,
		CustomObjects: objects,
		Companies:     companies,
	}
	return s.snap
}

// SelectCompany persists the selection and re-derives against the already
// loaded company list; the list itself is not reloaded. An id absent from
// the list falls back to the most recent company on the next Refresh.
func (s *CompanyStateService) SelectCompany(id string) Snapshot {
	if err := s.Local.Set(id); err != nil {
		log.Printf("[state] échec de la persistance de la sélection: %v", err)
		s.snap.Error = err.Error()
		return s.snap
	}
	if len(s.snap.Companies) == 0 {
		return s.Refresh()
	}
	selected := s.selectFrom(s.snap.Companies)
	config, objects, err := s.resolveFor(selected)
	if err != nil {
		log.Printf("[state] échec de la résolution pour %s: %v", selected.ID, err)
		s.snap.Error = err.Error()
		return s.snap
	}
	s.snap.Presence = PresencePresent
	s.snap.Company = &selected
	s.snap.Config = config
	s.snap.CustomObjects = objects
	s.snap.Error = ""
	return s.snap
}

// ResetAll deletes every record of every known kind in the fixed order.
// Per-kind failures are logged and skipped; the state always ends with no
// company and a cleared local selection.
func (s *CompanyStateService) ResetAll() Snapshot {
	for _, kind := range resetKinds {
		recs, err := s.Entities.List(kind, "", 0)
		if err != nil {
			log.Printf("[reset] liste %s ignorée: %v", kind, err)
			continue
		}
		for _, rec := range recs {
			if err := s.Entities.Delete(kind, rec.ID); err != nil {
				log.Printf("[reset] suppression %s/%s ignorée: %v", kind, rec.ID, err)
			}
		}
	}
	if err := s.Local.Clear(); err != nil {
		log.Printf("[reset] échec de l'effacement de la sélection: %v", err)
	}
	s.snap = Snapshot{
		Presence:      PresenceAbsent,
		CustomObjects: []models.CustomObject{},
		Companies:     []models.Company{},
	}
	return s.snap
}

func (s *CompanyStateService) loadCompanies() ([]models.Company, error) {
	recs, err := s.Entities.List("Company", "-created_date", 0)
	if err != nil {
		return nil, err
	}
	companies := make([]models.Company, 0, len(recs))
	for _, rec := range recs {
		var c models.Company
		if err := rec.Decode(&c); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}

// selectFrom applies the selection rule: the persisted id wins when present
// in the list, otherwise the most recent company (first of the descending
// creation order).
func (s *CompanyStateService) selectFrom(companies []models.Company) models.Company {
	persisted, err := s.Local.Get()
	if err != nil {
		log.Printf("[state] lecture de la sélection impossible: %v", err)
		persisted = ""
	}
	if persisted != "" {
		for _, c := range companies {
			if c.ID == persisted {
				return c
			}
		}
	}
	return companies[0]
}

func (s *CompanyStateService) resolveFor(company models.Company) (*models.AppConfiguration, []models.CustomObject, error) {
	var config *models.AppConfiguration
	confRecs, err := s.Entities.Filter("AppConfiguration", map[string]any{"company_id": company.ID})
	if err != nil {
		return nil, nil, err
	}
	if len(confRecs) > 0 {
		var c models.AppConfiguration
		if err := confRecs[0].Decode(&c); err != nil {
			return nil, nil, err
		}
		config = &c
	}
	objects, err := s.resolveObjects(company.Sector)
	if err != nil {
		return nil, nil, err
	}
	return config, objects, nil
}

// resolveObjects keeps the active objects applicable to the sector, dropping
// later duplicates by name, then sorts by menu order ascending with 100 as
// the fallback for an absent order. The sort is stable: catalog insertion
// order breaks ties.
func (s *CompanyStateService) resolveObjects(sector string) ([]models.CustomObject, error) {
	recs, err := s.Entities.Filter("CustomObject", map[string]any{"is_active": true})
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	objects := make([]models.CustomObject, 0, len(recs))
	for _, rec := range recs {
		var o models.CustomObject
		if err := rec.Decode(&o); err != nil {
			return nil, err
		}
		if !o.AppliesTo(sector) || seen[o.Name] {
			continue
		}
		seen[o.Name] = true
		objects = append(objects, o)
	}
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].EffectiveMenuOrder() < objects[j].EffectiveMenuOrder()
	})
	return objects, nil
}
