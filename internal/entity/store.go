// Package entity fournit le stockage générique des enregistrements métier :
// une seule table partitionnée par "kind" (Company, CustomObject, ...), le
// document lui-même étant conservé en JSON.
package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// stampLayout is RFC3339 with fixed-width fractional seconds so that the
// stored strings order lexicographically like the instants they encode.
const stampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound signale un enregistrement absent pour le couple (kind, id).
var ErrNotFound = errors.New("record_not_found")

// Record est la ligne persistée. Le document applicatif vit dans Data (JSON) ;
// id, kind et les horodatages sont des colonnes à part entière.
type Record struct {
	ID          string `gorm:"primaryKey;size:64"`
	Kind        string `gorm:"index;size:64"`
	CreatedDate string `gorm:"size:40"`
	UpdatedDate string `gorm:"size:40"`
	Data        string
}

// Fields returns the full field map of the record: the JSON document merged
// with the reserved id/created_date/updated_date keys.
func (r Record) Fields() (map[string]any, error) {
	out := map[string]any{}
	if r.Data != "" {
		if err := json.Unmarshal([]byte(r.Data), &out); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", r.ID, err)
		}
	}
	out["id"] = r.ID
	out["created_date"] = r.CreatedDate
	out["updated_date"] = r.UpdatedDate
	return out, nil
}

// Decode unmarshals the record (document + reserved keys) into a typed view.
func (r Record) Decode(v any) error {
	fields, err := r.Fields()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Store expose les opérations list/filter/create/update/delete par kind.
// N'importe quel nom de kind est accepté, y compris un kind encore vide.
type Store struct{ DB *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{DB: db} }

// Migrate creates the records table.
func (s *Store) Migrate() error { return s.DB.AutoMigrate(&Record{}) }

// reserved keys are columns, never part of the JSON document.
func isReservedKey(k string) bool {
	return k == "id" || k == "kind" || k == "created_date" || k == "updated_date"
}

// List returns the records of a kind ordered by sortSpec, a field name
// optionally prefixed with "-" for descending. Column fields are ordered in
// SQL; document fields are ordered in memory with a stable sort, a record
// missing the field ranking first ascending and last descending. limit <= 0
// means no limit.
func (s *Store) List(kind, sortSpec string, limit int) ([]Record, error) {
	field := sortSpec
	desc := false
	if strings.HasPrefix(field, "-") {
		field = field[1:]
		desc = true
	}
	if field == "" {
		field = "created_date"
	}

	q := s.DB.Where("kind = ?", kind)
	if isReservedKey(field) && field != "kind" {
		col := field
		if desc {
			col += " desc"
		}
		q = q.Order(col)
		if limit > 0 {
			q = q.Limit(limit)
		}
		var recs []Record
		if err := q.Find(&recs).Error; err != nil {
			return nil, err
		}
		return recs, nil
	}

	// Document field: load the partition in creation order, then sort here.
	var recs []Record
	if err := q.Order("created_date").Find(&recs).Error; err != nil {
		return nil, err
	}
	values := make([]any, len(recs))
	for i, r := range recs {
		fields, err := r.Fields()
		if err != nil {
			return nil, err
		}
		values[i] = fields[field]
	}
	sort.SliceStable(recs, func(i, j int) bool {
		less, ok := compareValues(values[i], values[j])
		if !ok {
			return false
		}
		if desc {
			return !less
		}
		return less
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// compareValues orders two JSON values. The second return value is false when
// the pair is not comparable (equal, or incompatible types), keeping the sort
// stable in that case. A nil value sorts before any present value.
func compareValues(a, b any) (less, ok bool) {
	if a == nil && b == nil {
		return false, false
	}
	if a == nil {
		return true, true
	}
	if b == nil {
		return false, true
	}
	switch av := a.(type) {
	case float64:
		if bv, isNum := b.(float64); isNum {
			if av == bv {
				return false, false
			}
			return av < bv, true
		}
	case string:
		if bv, isStr := b.(string); isStr {
			if av == bv {
				return false, false
			}
			return av < bv, true
		}
	case bool:
		if bv, isBool := b.(bool); isBool {
			if av == bv {
				return false, false
			}
			return !av && bv, true
		}
	}
	return false, false
}

// Filter returns the records of a kind whose fields match every key/value of
// the predicate map. Only JSON scalars compare equal (strings, booleans,
// numbers); compound values never match.
func (s *Store) Filter(kind string, where map[string]any) ([]Record, error) {
	var recs []Record
	if err := s.DB.Where("kind = ?", kind).Order("created_date").Find(&recs).Error; err != nil {
		return nil, err
	}
	if len(where) == 0 {
		return recs, nil
	}
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		fields, err := r.Fields()
		if err != nil {
			return nil, err
		}
		match := true
		for k, want := range where {
			if !scalarEqual(fields[k], want) {
				match = false
				break
			}
		}
		if match {
			out = append(out, r)
		}
	}
	return out, nil
}

func scalarEqual(have, want any) bool {
	if have == nil || want == nil {
		return have == nil && want == nil
	}
	switch wv := normalizeScalar(want).(type) {
	case float64:
		hv, ok := normalizeScalar(have).(float64)
		return ok && hv == wv
	case string:
		hv, ok := have.(string)
		return ok && hv == wv
	case bool:
		hv, ok := have.(bool)
		return ok && hv == wv
	}
	return false
}

// normalizeScalar aligns Go integer inputs with JSON's float64 numbers.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	}
	return v
}

// Create stores a new record of the given kind: generated uuid, creation and
// update stamps, the remaining fields as the JSON document. Reserved keys in
// the input are ignored.
func (s *Store) Create(kind string, fields map[string]any) (Record, error) {
	doc := map[string]any{}
	for k, v := range fields {
		if isReservedKey(k) {
			continue
		}
		doc[k] = v
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return Record{}, fmt.Errorf("encode record: %w", err)
	}
	now := time.Now().UTC().Format(stampLayout)
	rec := Record{
		ID:          uuid.NewString(),
		Kind:        kind,
		CreatedDate: now,
		UpdatedDate: now,
		Data:        string(raw),
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Get returns one record by (kind, id).
func (s *Store) Get(kind, id string) (Record, error) {
	var rec Record
	err := s.DB.Where("kind = ? AND id = ?", kind, id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Update merges fields into the record's document and bumps updated_date.
// Returns ErrNotFound when the (kind, id) pair does not exist.
func (s *Store) Update(kind, id string, fields map[string]any) (Record, error) {
	rec, err := s.Get(kind, id)
	if err != nil {
		return Record{}, err
	}
	doc := map[string]any{}
	if rec.Data != "" {
		if err := json.Unmarshal([]byte(rec.Data), &doc); err != nil {
			return Record{}, fmt.Errorf("decode record %s: %w", id, err)
		}
	}
	for k, v := range fields {
		if isReservedKey(k) {
			continue
		}
		doc[k] = v
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return Record{}, fmt.Errorf("encode record: %w", err)
	}
	rec.Data = string(raw)
	rec.UpdatedDate = time.Now().UTC().Format(stampLayout)
	if err := s.DB.Save(&rec).Error; err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Delete removes a record. Deleting an absent record is not an error.
func (s *Store) Delete(kind, id string) error {
	return s.DB.Where("kind = ? AND id = ?", kind, id).Delete(&Record{}).Error
}
