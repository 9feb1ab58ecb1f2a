// Package sectors expose la configuration statique par secteur d'activité :
// objets métier, types d'enregistrement, champs et KPIs de chaque secteur.
package sectors

// FieldType enumerates the supported field kinds.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
)

// Field describes a single field of an object definition.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"field_type"`
	Required bool      `json:"required,omitempty"`
	Options  []string  `json:"options,omitempty"`
	Default  any       `json:"default_value,omitempty"`
}

// Object is a business object definition belonging to a sector profile.
type Object struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	LabelPlural string   `json:"label_plural,omitempty"`
	Icon        string   `json:"icon"`
	MenuOrder   int      `json:"menu_order"`
	Types       []string `json:"types,omitempty"`
	Fields      []Field  `json:"fields,omitempty"`
}

// PluralLabel returns the plural label, falling back to the singular one.
func (o Object) PluralLabel() string {
	if o.LabelPlural != "" {
		return o.LabelPlural
	}
	return o.Label
}

// Profile describes everything a sector brings: branding, core objects,
// sector specific objects and dashboard KPIs.
type Profile struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Icon          string   `json:"icon"`
	Color         string   `json:"color"`
	Description   string   `json:"description"`
	CoreObjects   []Object `json:"core_objects"`
	CustomObjects []Object `json:"custom_objects"`
	DashboardKPIs []string `json:"dashboard_kpis"`
}

// Objects returns core then custom object definitions, in catalog order.
func (p Profile) Objects() []Object {
	out := make([]Object, 0, len(p.CoreObjects)+len(p.CustomObjects))
	out = append(out, p.CoreObjects...)
	out = append(out, p.CustomObjects...)
	return out
}

// Get looks up a sector profile by id. The second return value reports
// whether the sector exists; callers must handle the absent case, there is
// no default profile.
func Get(id string) (Profile, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// All returns every sector profile in catalog declaration order.
func All() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}
