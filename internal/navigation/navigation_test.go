package navigation

import (
	"testing"

	"github.com/diewo77/nexa-crm/internal/models"
)

func TestResolvePageStandardObjects(t *testing.T) {
	cases := map[string]string{
		"account": "Accounts",
		"contact": "Contacts",
		"invoice": "Invoices",
		"payment": "Payments",
		"asset":   "Assets",
	}
	for name, want := range cases {
		if got := ResolvePage(name); got != want {
			t.Fatalf("ResolvePage(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestResolvePageDerivesCustomIdentifier(t *testing.T) {
	got := ResolvePage("custom_widget")
	if got != "CustomObject_custom_widget" {
		t.Fatalf("unexpected derived page: %q", got)
	}
	// Stable across calls.
	if ResolvePage("custom_widget") != got {
		t.Fatalf("expected stable resolution")
	}
	for std := range map[string]bool{"account": true, "invoice": true} {
		if ResolvePage(std) == got {
			t.Fatalf("derived id collides with standard mapping")
		}
	}
}

func TestIconOrDefault(t *testing.T) {
	if got := IconOrDefault("HardHat"); got != "Box" {
		t.Fatalf("expected unknown icon to fall back to Box, got %q", got)
	}
	if got := IconOrDefault("Construction"); got != "Construction" {
		t.Fatalf("expected known icon to pass through, got %q", got)
	}
	if got := IconOrDefault(""); got != "Box" {
		t.Fatalf("expected empty icon to fall back to Box, got %q", got)
	}
}

func TestBuildMenuStartsWithDashboard(t *testing.T) {
	order := 10
	items := BuildMenu([]models.CustomObject{
		{Name: "chantier", Label: "Chantier", LabelPlural: "Chantiers", Icon: "Construction", MenuOrder: &order},
		{Name: "account", Label: "Client"},
	})
	if len(items) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(items))
	}
	first := items[0]
	if first.Label != "Tableau de bord" || first.Icon != "LayoutDashboard" || first.Page != "Home" {
		t.Fatalf("unexpected dashboard entry: %+v", first)
	}
	if items[1].Label != "Chantiers" || items[1].Page != "CustomObject_chantier" {
		t.Fatalf("unexpected entry: %+v", items[1])
	}
	// Singular label and Box icon as fallbacks.
	if items[2].Label != "Client" || items[2].Icon != "Box" || items[2].Page != "Accounts" {
		t.Fatalf("unexpected entry: %+v", items[2])
	}
}
