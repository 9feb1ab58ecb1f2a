package entity

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s := NewStore(db)
	if err := s.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}

func TestCreateAssignsIdentityAndStamps(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Create("Company", map[string]any{"name": "Acme", "sector": "immobilier"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == "" {
		t.Fatalf("expected generated id")
	}
	if rec.CreatedDate == "" || rec.UpdatedDate != rec.CreatedDate {
		t.Fatalf("expected matching stamps, got %q / %q", rec.CreatedDate, rec.UpdatedDate)
	}
	fields, err := rec.Fields()
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if fields["name"] != "Acme" || fields["id"] != rec.ID {
		t.Fatalf("unexpected fields: %#v", fields)
	}
}

func TestListKindsArePartitioned(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create("Company", map[string]any{"name": "A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create("CustomObject", map[string]any{"name": "chantier"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	recs, err := s.List("Company", "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 company, got %d", len(recs))
	}
	empty, err := s.List("Invoice", "", 0)
	if err != nil {
		t.Fatalf("list empty kind: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty kind, got %d records", len(empty))
	}
}

func TestListSortByCreatedDateDescending(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Create("Company", map[string]any{"name": name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	recs, err := s.List("Company", "-created_date", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected limit 2, got %d", len(recs))
	}
	var got []string
	for _, r := range recs {
		fields, err := r.Fields()
		if err != nil {
			t.Fatalf("fields: %v", err)
		}
		got = append(got, fields["name"].(string))
	}
	if got[0] != "third" || got[1] != "second" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestListSortByDocumentFieldKeepsMissingFirst(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create("CustomObject", map[string]any{"name": "a", "menu_order": 50}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create("CustomObject", map[string]any{"name": "b"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create("CustomObject", map[string]any{"name": "c", "menu_order": 10}); err != nil {
		t.Fatalf("create: %v", err)
	}
	recs, err := s.List("CustomObject", "menu_order", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []string
	for _, r := range recs {
		fields, err := r.Fields()
		if err != nil {
			t.Fatalf("fields: %v", err)
		}
		got = append(got, fields["name"].(string))
	}
	if len(got) != 3 || got[0] != "b" || got[1] != "c" || got[2] != "a" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestFilterMatchesAllEqualities(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create("CustomObject", map[string]any{"name": "chantier", "sector": "construction_btp", "is_active": true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create("CustomObject", map[string]any{"name": "patient", "sector": "sante_social", "is_active": true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create("CustomObject", map[string]any{"name": "ancien", "sector": "construction_btp", "is_active": false}); err != nil {
		t.Fatalf("create: %v", err)
	}
	recs, err := s.Filter("CustomObject", map[string]any{"sector": "construction_btp", "is_active": true})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	fields, err := recs[0].Fields()
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if fields["name"] != "chantier" {
		t.Fatalf("unexpected record: %#v", fields)
	}
}

func TestFilterNormalizesIntegerPredicates(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create("CustomObject", map[string]any{"name": "a", "menu_order": 30}); err != nil {
		t.Fatalf("create: %v", err)
	}
	recs, err := s.Filter("CustomObject", map[string]any{"menu_order": 30})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected int predicate to match stored number, got %d records", len(recs))
	}
}

func TestUpdateMergesAndBumpsStamp(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Create("CustomObject", map[string]any{"name": "chantier", "label": "Chantier"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := s.Update("CustomObject", rec.ID, map[string]any{"label": "Chantiers BTP", "is_active": false})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	fields, err := updated.Fields()
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if fields["name"] != "chantier" || fields["label"] != "Chantiers BTP" || fields["is_active"] != false {
		t.Fatalf("unexpected merge result: %#v", fields)
	}
	if updated.UpdatedDate < rec.UpdatedDate {
		t.Fatalf("updated_date went backwards: %q -> %q", rec.UpdatedDate, updated.UpdatedDate)
	}
}

func TestUpdateUnknownIdReturnsNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Update("CustomObject", "missing", map[string]any{"label": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Create("Company", map[string]any{"name": "A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Delete("Company", rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete("Company", rec.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := s.Get("Company", rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDecodeIntoTypedView(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Create("Company", map[string]any{"name": "Acme", "sector": "industrie", "is_active": true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var view struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Sector   string `json:"sector"`
		IsActive bool   `json:"is_active"`
	}
	if err := rec.Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.ID != rec.ID || view.Name != "Acme" || view.Sector != "industrie" || !view.IsActive {
		t.Fatalf("unexpected view: %#v", view)
	}
}
