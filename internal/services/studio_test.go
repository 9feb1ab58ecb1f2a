package services

import (
	"errors"
	"testing"

	"github.com/diewo77/nexa-crm/internal/state"
)

func TestNormalizeObjectName(t *testing.T) {
	cases := map[string]string{
		" Ma Mission ":  "ma_mission",
		"CHANTIER":      "chantier",
		"suivi  client": "suivi_client",
		"deja_bon":      "deja_bon",
	}
	for in, want := range cases {
		if got := NormalizeObjectName(in); got != want {
			t.Fatalf("NormalizeObjectName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseCommaList(t *testing.T) {
	got := ParseCommaList("A, B ,  C")
	if len(got) != 3 || got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Fatalf("unexpected list: %v", got)
	}
	got = ParseCommaList("A,,B")
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected empties dropped, got %v", got)
	}
	if got := ParseCommaList(""); len(got) != 0 {
		t.Fatalf("expected empty input to parse empty, got %v", got)
	}
}

func newStudio(t *testing.T) (*StudioService, *CompanyStateService) {
	t.Helper()
	store := newTestEntities(t)
	stateSvc := NewCompanyStateService(store, state.NewMemoryStore())
	return NewStudioService(store, stateSvc), stateSvc
}

func TestCreateObjectNormalizesAndAssignsMenuOrder(t *testing.T) {
	studio, stateSvc := newStudio(t)
	createCompany(t, studio.Entities, "Conseil SA", "conseil_ingenierie")
	studio.Entities.Create("CustomObject", map[string]any{"name": "existant", "label": "Existant", "sector": "conseil_ingenierie", "is_active": true, "menu_order": 80})
	stateSvc.Refresh()

	obj, err := studio.CreateObject(ObjectInput{Name: " Ma Mission ", Label: "Mission", RecordTypes: "Audit, Conseil"})
	if err != nil {
		t.Fatalf("create object: %v", err)
	}
	if obj.Name != "ma_mission" {
		t.Fatalf("expected normalized name, got %q", obj.Name)
	}
	if obj.MenuOrder == nil || *obj.MenuOrder != 90 {
		t.Fatalf("expected menu_order 90, got %v", obj.MenuOrder)
	}
	if obj.Sector != "conseil_ingenierie" || obj.IsCore || !obj.IsActive {
		t.Fatalf("unexpected defaults: %+v", obj)
	}
	if len(obj.RecordTypes) != 2 || obj.RecordTypes[0] != "Audit" {
		t.Fatalf("unexpected record types: %v", obj.RecordTypes)
	}
	if obj.Icon != "Box" || obj.LabelPlural != "Mission" {
		t.Fatalf("expected icon and plural fallbacks, got %q / %q", obj.Icon, obj.LabelPlural)
	}
}

func TestCreateObjectRequiresActiveCompany(t *testing.T) {
	studio, _ := newStudio(t)
	if _, err := studio.CreateObject(ObjectInput{Name: "x", Label: "X"}); !errors.Is(err, ErrNoActiveCompany) {
		t.Fatalf("expected ErrNoActiveCompany, got %v", err)
	}
}

func TestCreateObjectValidatesInput(t *testing.T) {
	studio, _ := newStudio(t)
	if _, err := studio.CreateObject(ObjectInput{Label: "X"}); !errors.Is(err, ErrMissingObjectName) {
		t.Fatalf("expected ErrMissingObjectName, got %v", err)
	}
	if _, err := studio.CreateObject(ObjectInput{Name: "x"}); !errors.Is(err, ErrMissingLabel) {
		t.Fatalf("expected ErrMissingLabel, got %v", err)
	}
}

func TestUpdateObjectTypesReplacesList(t *testing.T) {
	studio, stateSvc := newStudio(t)
	createCompany(t, studio.Entities, "Retail", "commerce_retail")
	stateSvc.Refresh()

	obj, err := studio.CreateObject(ObjectInput{Name: "magasin", Label: "Magasin", RecordTypes: "Boutique"})
	if err != nil {
		t.Fatalf("create object: %v", err)
	}
	updated, err := studio.UpdateObjectTypes(obj.ID, "A, B ,  C")
	if err != nil {
		t.Fatalf("update types: %v", err)
	}
	if len(updated.RecordTypes) != 3 || updated.RecordTypes[0] != "A" || updated.RecordTypes[2] != "C" {
		t.Fatalf("expected replaced list, got %v", updated.RecordTypes)
	}
}

func TestCreateFieldKeepsOptionsOnlyForSelect(t *testing.T) {
	studio, _ := newStudio(t)

	field, err := studio.CreateField(FieldInput{ObjectName: "magasin", Name: " Code Postal ", Label: "Code postal", FieldType: "text", Options: "A,B"})
	if err != nil {
		t.Fatalf("create text field: %v", err)
	}
	if field.Name != "code_postal" {
		t.Fatalf("expected normalized field name, got %q", field.Name)
	}
	if len(field.Options) != 0 {
		t.Fatalf("expected no options on a text field, got %v", field.Options)
	}

	sel, err := studio.CreateField(FieldInput{ObjectName: "magasin", Name: "statut", Label: "Statut", FieldType: "select", Options: "Ouvert, Fermé"})
	if err != nil {
		t.Fatalf("create select field: %v", err)
	}
	if len(sel.Options) != 2 || sel.Options[1] != "Fermé" {
		t.Fatalf("unexpected options: %v", sel.Options)
	}
}

func TestCreateFlowDefaultsInactive(t *testing.T) {
	studio, _ := newStudio(t)
	flow, err := studio.CreateFlow(FlowInput{ObjectName: "magasin", Name: "Relance", Trigger: "on_status_change"})
	if err != nil {
		t.Fatalf("create flow: %v", err)
	}
	if flow.IsActive {
		t.Fatalf("expected inactive flow on creation")
	}
	if flow.Trigger != "on_status_change" {
		t.Fatalf("unexpected trigger: %q", flow.Trigger)
	}
	if _, err := studio.CreateFlow(FlowInput{ObjectName: "magasin", Name: "Mauvais", Trigger: "on_delete"}); !errors.Is(err, ErrInvalidTrigger) {
		t.Fatalf("expected ErrInvalidTrigger, got %v", err)
	}
}

func TestCreateRuleStoresDefinitionVerbatim(t *testing.T) {
	studio, _ := newStudio(t)
	rule, err := studio.CreateRule(RuleInput{ObjectName: "magasin", Name: "Montant positif", Definition: "{\"field\":\"amount\",\"op\":\">\",\"value\":0}"})
	if err != nil {
		t.Fatalf("create rule: %v", err)
	}
	if rule.Definition == "" || rule.ObjectName != "magasin" {
		t.Fatalf("unexpected rule: %+v", rule)
	}
	rules, err := studio.ListRules("magasin")
	if err != nil {
		t.Fatalf("list rules: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
}

func TestListFieldsFiltersByObjectName(t *testing.T) {
	studio, _ := newStudio(t)
	if _, err := studio.CreateField(FieldInput{ObjectName: "a", Name: "x", Label: "X", FieldType: "text"}); err != nil {
		t.Fatalf("create field: %v", err)
	}
	if _, err := studio.CreateField(FieldInput{ObjectName: "b", Name: "y", Label: "Y", FieldType: "text"}); err != nil {
		t.Fatalf("create field: %v", err)
	}
	fields, err := studio.ListFields("a")
	if err != nil {
		t.Fatalf("list fields: %v", err)
	}
	if len(fields) != 1 || fields[0].Name != "x" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}
