package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diewo77/nexa-crm/internal/entity"
	"github.com/diewo77/nexa-crm/internal/models"
)

var (
	ErrMissingObjectName = errors.New("missing_object_name")
	ErrMissingLabel      = errors.New("missing_label")
	ErrMissingName       = errors.New("missing_name")
	ErrNoActiveCompany   = errors.New("no_active_company")
	ErrInvalidTrigger    = errors.New("invalid_trigger")
)

// NormalizeObjectName ramène un nom technique à sa forme stockée : espaces
// extérieurs retirés, minuscules, espaces internes remplacés par des
// underscores.
func NormalizeObjectName(value string) string {
	name := strings.ToLower(strings.TrimSpace(value))
	return strings.Join(strings.Fields(name), "_")
}

// ParseCommaList splits a comma-separated input, trims each entry and drops
// the empty ones.
func ParseCommaList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type ObjectInput struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	LabelPlural string `json:"label_plural"`
	Icon        string `json:"icon"`
	RecordTypes string `json:"record_types"`
}

type FieldInput struct {
	ObjectName   string `json:"object_name"`
	Name         string `json:"name"`
	Label        string `json:"label"`
	FieldType    string `json:"field_type"`
	Required     bool   `json:"required"`
	Options      string `json:"options"`
	DefaultValue string `json:"default_value"`
}

type RuleInput struct {
	ObjectName   string `json:"object_name"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ErrorMessage string `json:"error_message"`
	Definition   string `json:"definition"`
}

type FlowInput struct {
	ObjectName  string `json:"object_name"`
	Name        string `json:"name"`
	Trigger     string `json:"trigger"`
	Description string `json:"description"`
}

// StudioService porte les mutations du studio d'administration : extension
// de l'ensemble d'objets du secteur actif sans toucher au catalogue statique.
type StudioService struct {
	Entities *entity.Store
	State    *CompanyStateService
}

func NewStudioService(store *entity.Store, stateSvc *CompanyStateService) *StudioService {
	return &StudioService{Entities: store, State: stateSvc}
}

// CreateObject stores a new operator-defined object for the active sector.
// The menu order is the current maximum across resolved objects plus 10,
// leaving gaps for manual reordering.
func (s *StudioService) CreateObject(in ObjectInput) (*models.CustomObject, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrMissingObjectName
	}
	if in.Label == "" {
		return nil, ErrMissingLabel
	}
	snap := s.State.Snapshot()
	if snap.Company == nil {
		return nil, ErrNoActiveCompany
	}
	labelPlural := in.LabelPlural
	if labelPlural == "" {
		labelPlural = in.Label
	}
	icon := in.Icon
	if icon == "" {
		icon = "Box"
	}
	rec, err := s.Entities.Create("CustomObject", map[string]any{
		"name":         NormalizeObjectName(in.Name),
		"label":        in.Label,
		"label_plural": labelPlural,
		"icon":         icon,
		"sector":       snap.Company.Sector,
		"menu_order":   s.nextMenuOrder(snap.CustomObjects),
		"record_types": ParseCommaList(in.RecordTypes),
		"is_core":      false,
		"is_active":    true,
	})
	if err != nil {
		return nil, fmt.Errorf("création de l'objet: %w", err)
	}
	var obj models.CustomObject
	if err := rec.Decode(&obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// nextMenuOrder walks the resolved object list; an absent menu order counts
// as 0 here, unlike the navigation sort.
func (s *StudioService) nextMenuOrder(objects []models.CustomObject) int {
	max := 0
	for _, o := range objects {
		if o.MenuOrder != nil && *o.MenuOrder > max {
			max = *o.MenuOrder
		}
	}
	return max + 10
}

// UpdateObjectTypes replaces the record types of an object with the freshly
// parsed list; no merge with the previous values.
func (s *StudioService) UpdateObjectTypes(objectID, recordTypes string) (*models.CustomObject, error) {
	rec, err := s.Entities.Update("CustomObject", objectID, map[string]any{
		"record_types": ParseCommaList(recordTypes),
	})
	if err != nil {
		return nil, err
	}
	var obj models.CustomObject
	if err := rec.Decode(&obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// CreateField extends an object's schema declaratively. Options are only
// kept for select fields.
func (s *StudioService) CreateField(in FieldInput) (*models.CustomField, error) {
	if in.ObjectName == "" {
		return nil, ErrMissingObjectName
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrMissingName
	}
	if in.Label == "" {
		return nil, ErrMissingLabel
	}
	options := []string{}
	if in.FieldType == "select" {
		options = ParseCommaList(in.Options)
	}
	var defaultValue any
	if in.DefaultValue != "" {
		defaultValue = in.DefaultValue
	}
	rec, err := s.Entities.Create("CustomField", map[string]any{
		"object_name":   in.ObjectName,
		"name":          NormalizeObjectName(in.Name),
		"label":         in.Label,
		"field_type":    in.FieldType,
		"required":      in.Required,
		"options":       options,
		"default_value": defaultValue,
	})
	if err != nil {
		return nil, fmt.Errorf("création du champ: %w", err)
	}
	var field models.CustomField
	if err := rec.Decode(&field); err != nil {
		return nil, err
	}
	return &field, nil
}

// CreateRule stores a validation rule verbatim; the definition is never
// evaluated here.
func (s *StudioService) CreateRule(in RuleInput) (*models.ValidationRule, error) {
	if in.ObjectName == "" {
		return nil, ErrMissingObjectName
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrMissingName
	}
	rec, err := s.Entities.Create("ValidationRule", map[string]any{
		"object_name":   in.ObjectName,
		"name":          in.Name,
		"description":   in.Description,
		"error_message": in.ErrorMessage,
		"definition":    in.Definition,
	})
	if err != nil {
		return nil, fmt.Errorf("création de la règle: %w", err)
	}
	var rule models.ValidationRule
	if err := rec.Decode(&rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// CreateFlow stores a flow, created inactive; no execution engine reads it.
func (s *StudioService) CreateFlow(in FlowInput) (*models.Flow, error) {
	if in.ObjectName == "" {
		return nil, ErrMissingObjectName
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrMissingName
	}
	trigger := in.Trigger
	if trigger == "" {
		trigger = models.TriggerOnCreate
	}
	switch trigger {
	case models.TriggerOnCreate, models.TriggerOnUpdate, models.TriggerOnStatusChange:
	default:
		return nil, ErrInvalidTrigger
	}
	rec, err := s.Entities.Create("Flow", map[string]any{
		"object_name": in.ObjectName,
		"name":        in.Name,
		"trigger":     trigger,
		"description": in.Description,
		"is_active":   false,
	})
	if err != nil {
		return nil, fmt.Errorf("création du flow: %w", err)
	}
	var flow models.Flow
	if err := rec.Decode(&flow); err != nil {
		return nil, err
	}
	return &flow, nil
}

// ListFields returns the declarative fields of an object.
func (s *StudioService) ListFields(objectName string) ([]models.CustomField, error) {
	recs, err := s.Entities.Filter("CustomField", map[string]any{"object_name": objectName})
	if err != nil {
		return nil, err
	}
	out := make([]models.CustomField, 0, len(recs))
	for _, rec := range recs {
		var f models.CustomField
		if err := rec.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ListRules returns the validation rules of an object.
func (s *StudioService) ListRules(objectName string) ([]models.ValidationRule, error) {
	recs, err := s.Entities.Filter("ValidationRule", map[string]any{"object_name": objectName})
	if err != nil {
		return nil, err
	}
	out := make([]models.ValidationRule, 0, len(recs))
	for _, rec := range recs {
		var r models.ValidationRule
		if err := rec.Decode(&r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ListFlows returns the flows of an object.
func (s *StudioService) ListFlows(objectName string) ([]models.Flow, error) {
	recs, err := s.Entities.Filter("Flow", map[string]any{"object_name": objectName})
	if err != nil {
		return nil, err
	}
	out := make([]models.Flow, 0, len(recs))
	for _, rec := range recs {
		var f models.Flow
		if err := rec.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
