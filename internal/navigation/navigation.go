// Package navigation traduit les objets métier en pages et entrées de menu.
// Tables de correspondance finies avec repli explicite, pas de dispatch par
// réflexion.
package navigation

import "github.com/diewo77/nexa-crm/internal/models"

// objectToPage mappe les objets standards vers leur page dédiée. Tout autre
// nom d'objet produit un identifiant dérivé CustomObject_<name>.
var objectToPage = map[string]string{
	"account":     "Accounts",
	"contact":     "Contacts",
	"lead":        "Leads",
	"opportunity": "Opportunities",
	"product":     "Products",
	"quote":       "Quotes",
	"order":       "Orders",
	"invoice":     "Invoices",
	"payment":     "Payments",
	"case":        "Cases",
	"contract":    "Contracts",
	"asset":       "Assets",
}

// ResolvePage returns the page identifier for an object name. There is no
// error case: unknown names yield a derived, stable identifier.
func ResolvePage(objectName string) string {
	if page, ok := objectToPage[objectName]; ok {
		return page
	}
	return "CustomObject_" + objectName
}

// knownIcons liste les noms d'icônes affichables par le client.
var knownIcons = map[string]bool{
	"LayoutDashboard": true, "Building2": true, "Users": true, "UserPlus": true,
	"Target": true, "Package": true, "FileText": true, "ShoppingCart": true,
	"Receipt": true, "CreditCard": true, "MessageSquare": true, "FileCheck": true,
	"Box": true, "Settings": true, "Home": true, "Briefcase": true,
	"Calendar": true, "Clock": true, "Wrench": true, "Truck": true,
	"Heart": true, "Sparkles": true, "Store": true, "Warehouse": true,
	"Construction": true, "GraduationCap": true, "Factory": true, "Bed": true,
	"Eye": true, "Handshake": true, "Cog": true, "Boxes": true,
	"UserCheck": true, "ClipboardCheck": true, "BookOpen": true, "FolderOpen": true,
	"CalendarClock": true, "File": true, "CalendarCheck": true, "Armchair": true,
	"PartyPopper": true, "Pill": true, "UserGraduate": true, "UserHeart": true,
	"ClipboardList": true, "Building": true,
}

// IconOrDefault returns the icon name when it is known, Box otherwise.
func IconOrDefault(name string) string {
	if knownIcons[name] {
		return name
	}
	return "Box"
}

// MenuItem est une entrée de navigation prête à afficher.
type MenuItem struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Page  string `json:"page"`
}

// BuildMenu assembles the navigation: the dashboard first, then one entry
// per resolved object in their resolved order.
func BuildMenu(objects []models.CustomObject) []MenuItem {
	items := make([]MenuItem, 0, len(objects)+1)
	items = append(items, MenuItem{
		Name:  "Dashboard",
		Label: "Tableau de bord",
		Icon:  "LayoutDashboard",
		Page:  "Home",
	})
	for _, obj := range objects {
		label := obj.LabelPlural
		if label == "" {
			label = obj.Label
		}
		icon := obj.Icon
		if icon == "" {
			icon = "Box"
		}
		items = append(items, MenuItem{
			Name:  obj.Name,
			Label: label,
			Icon:  IconOrDefault(icon),
			Page:  ResolvePage(obj.Name),
		})
	}
	return items
}
