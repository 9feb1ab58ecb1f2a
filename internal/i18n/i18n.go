// Package i18n fournit les libellés localisés de l'API. Le français est la
// langue par défaut, l'anglais est reconnu via Accept-Language.
package i18n

import "strings"

// DetectLanguage picks the response language from an Accept-Language header.
// Only English is recognized explicitly; everything else falls back to
// French.
func DetectLanguage(acceptLanguage string) string {
	lang := strings.ToLower(strings.TrimSpace(acceptLanguage))
	if strings.HasPrefix(lang, "en") {
		return "en"
	}
	return "fr"
}

var translations = map[string]map[string]string{
	"fr": {
		"required":            "Requis",
		"not_found":           "Introuvable",
		"invalid_payload":     "Requête invalide",
		"internal_error":      "Erreur interne",
		"unknown_sector":      "Secteur inconnu",
		"no_active_company":   "Aucune entreprise active",
		"field_type_text":     "Texte",
		"field_type_number":   "Nombre",
		"field_type_date":     "Date",
		"field_type_select":   "Liste de choix",
		"field_type_checkbox": "Case à cocher",
	},
	"en": {
		"required":            "Required",
		"not_found":           "Not found",
		"invalid_payload":     "Invalid request",
		"internal_error":      "Internal error",
		"unknown_sector":      "Unknown sector",
		"no_active_company":   "No active company",
		"field_type_text":     "Text",
		"field_type_number":   "Number",
		"field_type_date":     "Date",
		"field_type_select":   "Select",
		"field_type_checkbox": "Checkbox",
	},
}

// T translates a code for a language. Unknown languages fall back to the
// French translation, unknown codes fall back to the code itself.
func T(lang, code string) string {
	if msgs, ok := translations[lang]; ok {
		if msg, ok := msgs[code]; ok {
			return msg
		}
	}
	if msg, ok := translations["fr"][code]; ok {
		return msg
	}
	return code
}
