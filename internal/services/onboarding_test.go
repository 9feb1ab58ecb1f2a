package services

import (
	"errors"
	"testing"

	"github.com/diewo77/nexa-crm/internal/models"
	"github.com/diewo77/nexa-crm/internal/sectors"
	"github.com/diewo77/nexa-crm/internal/state"
)

func TestOnboardingRejectsUnknownSectorBeforeAnyWrite(t *testing.T) {
	store := newTestEntities(t)
	svc := NewOnboardingService(store, state.NewMemoryStore())

	if _, err := svc.Run(OnboardingInput{Name: "Acme", Sector: "inconnu"}); !errors.Is(err, ErrUnknownSector) {
		t.Fatalf("expected ErrUnknownSector, got %v", err)
	}
	for _, kind := range []string{"Company", "AppConfiguration", "CustomObject"} {
		recs, err := store.List(kind, "", 0)
		if err != nil {
			t.Fatalf("list %s: %v", kind, err)
		}
		if len(recs) != 0 {
			t.Fatalf("expected no %s writes, got %d", kind, len(recs))
		}
	}
}

func TestOnboardingRejectsMissingName(t *testing.T) {
	store := newTestEntities(t)
	svc := NewOnboardingService(store, state.NewMemoryStore())
	if _, err := svc.Run(OnboardingInput{Sector: "industrie"}); !errors.Is(err, ErrMissingCompanyName) {
		t.Fatalf("expected ErrMissingCompanyName, got %v", err)
	}
}

func TestOnboardingCreatesCompanyConfigurationAndObjects(t *testing.T) {
	store := newTestEntities(t)
	local := state.NewMemoryStore()
	svc := NewOnboardingService(store, local)

	company, err := svc.Run(OnboardingInput{Name: "BTP Dupont", Sector: "construction_btp", Email: "contact@dupont.fr"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if company.ID == "" || company.Sector != "construction_btp" || !company.IsActive {
		t.Fatalf("unexpected company: %+v", company)
	}
	if id, _ := local.Get(); id != company.ID {
		t.Fatalf("expected the new company to be selected, got %q", id)
	}

	confRecs, err := store.Filter("AppConfiguration", map[string]any{"company_id": company.ID})
	if err != nil {
		t.Fatalf("filter configuration: %v", err)
	}
	if len(confRecs) != 1 {
		t.Fatalf("expected one configuration, got %d", len(confRecs))
	}
	var conf models.AppConfiguration
	if err := confRecs[0].Decode(&conf); err != nil {
		t.Fatalf("decode configuration: %v", err)
	}
	if !conf.OnboardingCompleted {
		t.Fatalf("expected onboarding_completed")
	}
	if len(conf.FeaturesEnabled) != 4 || conf.FeaturesEnabled[0] != "accounts" {
		t.Fatalf("unexpected features: %v", conf.FeaturesEnabled)
	}

	profile, _ := sectors.Get("construction_btp")
	wantObjects := len(profile.CoreObjects) + len(profile.CustomObjects)
	objRecs, err := store.List("CustomObject", "", 0)
	if err != nil {
		t.Fatalf("list objects: %v", err)
	}
	if len(objRecs) != wantObjects {
		t.Fatalf("expected %d custom objects, got %d", wantObjects, len(objRecs))
	}

	coreRecs, err := store.Filter("CustomObject", map[string]any{"is_core": true})
	if err != nil {
		t.Fatalf("filter core: %v", err)
	}
	if len(coreRecs) != len(profile.CoreObjects) {
		t.Fatalf("expected %d core objects, got %d", len(profile.CoreObjects), len(coreRecs))
	}
	var first models.CustomObject
	if err := objRecs[0].Decode(&first); err != nil {
		t.Fatalf("decode object: %v", err)
	}
	if first.Sector != "construction_btp" || !first.IsActive {
		t.Fatalf("unexpected object defaults: %+v", first)
	}
	if first.MenuOrder == nil {
		t.Fatalf("expected catalog menu_order to be stored")
	}
}
