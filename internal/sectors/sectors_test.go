package sectors

import "testing"

func TestGetUnknownSectorIsAbsent(t *testing.T) {
	if _, ok := Get("secteur_inconnu"); ok {
		t.Fatalf("expected absent for unknown sector")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("expected absent for empty id")
	}
	// No default profile is ever substituted.
	p, _ := Get("secteur_inconnu")
	if p.ID != "" || p.Label != "" {
		t.Fatalf("expected zero profile, got %+v", p)
	}
}

func TestGetReturnsProfile(t *testing.T) {
	p, ok := Get("construction_btp")
	if !ok {
		t.Fatalf("expected construction_btp to exist")
	}
	if p.Label != "Construction & BTP" || p.Icon != "HardHat" || p.Color != "#f59e0b" {
		t.Fatalf("unexpected profile metadata: %+v", p)
	}
	if len(p.CoreObjects) == 0 || len(p.CustomObjects) == 0 || len(p.DashboardKPIs) == 0 {
		t.Fatalf("expected populated profile")
	}
}

func TestAllKeepsDeclarationOrder(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("expected 10 sectors, got %d", len(all))
	}
	if all[0].ID != "commerce_retail" || all[9].ID != "enseignement_formation" {
		t.Fatalf("unexpected order: first=%s last=%s", all[0].ID, all[9].ID)
	}
	seen := map[string]bool{}
	for _, p := range all {
		if seen[p.ID] {
			t.Fatalf("duplicate sector id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestObjectNamesUniquePerSector(t *testing.T) {
	for _, p := range All() {
		seen := map[string]bool{}
		for _, obj := range p.Objects() {
			if seen[obj.Name] {
				t.Fatalf("sector %s declares %s twice", p.ID, obj.Name)
			}
			seen[obj.Name] = true
		}
	}
}

func TestSelectFieldsCarryOptions(t *testing.T) {
	for _, p := range All() {
		for _, obj := range p.Objects() {
			for _, f := range obj.Fields {
				if f.Type == FieldSelect && len(f.Options) == 0 {
					t.Fatalf("sector %s object %s field %s: select without options", p.ID, obj.Name, f.Name)
				}
				if f.Type != FieldSelect && len(f.Options) > 0 {
					t.Fatalf("sector %s object %s field %s: options on non-select", p.ID, obj.Name, f.Name)
				}
			}
		}
	}
}

func TestPluralLabelFallsBack(t *testing.T) {
	o := Object{Label: "Mission"}
	if o.PluralLabel() != "Mission" {
		t.Fatalf("expected singular fallback")
	}
	o.LabelPlural = "Missions"
	if o.PluralLabel() != "Missions" {
		t.Fatalf("expected explicit plural")
	}
}
