// Package models contient les vues typées des enregistrements persistés.
// Les documents restent des JSON sans schéma côté stockage ; ces structures
// servent au décodage côté services et handlers.
package models

// Company est l'entreprise configurée lors de l'onboarding. Plusieurs
// enregistrements peuvent coexister, un seul est sélectionné par client.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	SIRET       string `json:"siret,omitempty"`
	TVANumber   string `json:"tva_number,omitempty"`
	Website     string `json:"website,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedDate string `json:"created_date,omitempty"`
	UpdatedDate string `json:"updated_date,omitempty"`
}

// AppConfiguration accompagne une Company, créée une fois à l'onboarding.
type AppConfiguration struct {
	ID                  string   `json:"id"`
	CompanyID           string   `json:"company_id"`
	Sector              string   `json:"sector"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
	FeaturesEnabled     []string `json:"features_enabled"`
	CreatedDate         string   `json:"created_date,omitempty"`
}

// SectorAll est la valeur sentinelle d'un CustomObject valable pour tous les
// secteurs.
const SectorAll = "all"

// CustomObject est le pendant dynamique d'une définition d'objet du
// catalogue : créé à l'onboarding ou via le studio d'administration.
type CustomObject struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	LabelPlural string   `json:"label_plural,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Sector      string   `json:"sector"`
	MenuOrder   *int     `json:"menu_order,omitempty"`
	RecordTypes []string `json:"record_types,omitempty"`
	IsCore      bool     `json:"is_core"`
	IsActive    bool     `json:"is_active"`
	CreatedDate string   `json:"created_date,omitempty"`
}

// AppliesTo reports whether the object is available for the given sector.
func (o CustomObject) AppliesTo(sector string) bool {
	return o.Sector == SectorAll || o.Sector == sector
}

// EffectiveMenuOrder returns the menu order used for sorting; an absent value
// counts as 100 without being written back.
func (o CustomObject) EffectiveMenuOrder() int {
	if o.MenuOrder == nil {
		return 100
	}
	return *o.MenuOrder
}

// CustomField étend déclarativement le schéma d'un objet, référencé par nom.
type CustomField struct {
	ID           string   `json:"id"`
	ObjectName   string   `json:"object_name"`
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	FieldType    string   `json:"field_type"`
	Required     bool     `json:"required"`
	Options      []string `json:"options,omitempty"`
	DefaultValue any      `json:"default_value,omitempty"`
}

// ValidationRule est stockée telle quelle, jamais évaluée ici.
type ValidationRule struct {
	ID           string `json:"id"`
	ObjectName   string `json:"object_name"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	Definition   string `json:"definition,omitempty"`
}

// Déclencheurs admis pour un Flow.
const (
	TriggerOnCreate       = "on_create"
	TriggerOnUpdate       = "on_update"
	TriggerOnStatusChange = "on_status_change"
)

// Flow décrit une automatisation déclarative, stockée mais non exécutée.
type Flow struct {
	ID          string `json:"id"`
	ObjectName  string `json:"object_name"`
	Name        string `json:"name"`
	Trigger     string `json:"trigger"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}
