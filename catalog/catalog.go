// Package catalog holds the built-in per-language shop catalog.
package catalog

import "gitlab.com/mkubat/kapsa/ledger"

type entry struct {
	id    string
	name  string
	icon  string
	color string
}

// Built-in shops per language. IDs are stable across releases so that
// re-initialization after an app update never duplicates a shop that was
// already inserted under the same id.
var defaultShops = map[string][]entry{
	"en": {
		{"shop-en-groceries", "Groceries", "shopping-cart", "#4CAF50"},
		{"shop-en-restaurant", "Restaurant", "utensils", "#FF7043"},
		{"shop-en-cafe", "Café", "coffee", "#795548"},
		{"shop-en-transport", "Transport", "bus", "#2196F3"},
		{"shop-en-pharmacy", "Pharmacy", "pill", "#E91E63"},
		{"shop-en-clothing", "Clothing", "shirt", "#9C27B0"},
		{"shop-en-electronics", "Electronics", "smartphone", "#607D8B"},
		{"shop-en-entertainment", "Entertainment", "film", "#FFC107"},
		{"shop-en-household", "Household", "home", "#8BC34A"},
		{"shop-en-other", "Other", "tag", "#9E9E9E"},
	},
	"cs": {
		{"shop-cs-groceries", "Potraviny", "shopping-cart", "#4CAF50"},
		{"shop-cs-restaurant", "Restaurace", "utensils", "#FF7043"},
		{"shop-cs-cafe", "Kavárna", "coffee", "#795548"},
		{"shop-cs-transport", "Doprava", "bus", "#2196F3"},
		{"shop-cs-pharmacy", "Lékárna", "pill", "#E91E63"},
		{"shop-cs-clothing", "Oblečení", "shirt", "#9C27B0"},
		{"shop-cs-electronics", "Elektronika", "smartphone", "#607D8B"},
		{"shop-cs-entertainment", "Zábava", "film", "#FFC107"},
		{"shop-cs-household", "Domácnost", "home", "#8BC34A"},
		{"shop-cs-other", "Ostatní", "tag", "#9E9E9E"},
	},
	"sk": {
		{"shop-sk-groceries", "Potraviny", "shopping-cart", "#4CAF50"},
		{"shop-sk-restaurant", "Reštaurácia", "utensils", "#FF7043"},
		{"shop-sk-cafe", "Kaviareň", "coffee", "#795548"},
		{"shop-sk-transport", "Doprava", "bus", "#2196F3"},
		{"shop-sk-pharmacy", "Lekáreň", "pill", "#E91E63"},
		{"shop-sk-clothing", "Oblečenie", "shirt", "#9C27B0"},
		{"shop-sk-electronics", "Elektronika", "smartphone", "#607D8B"},
		{"shop-sk-entertainment", "Zábava", "film", "#FFC107"},
		{"shop-sk-household", "Domácnosť", "home", "#8BC34A"},
		{"shop-sk-other", "Ostatné", "tag", "#9E9E9E"},
	},
	"pl": {
		{"shop-pl-groceries", "Spożywcze", "shopping-cart", "#4CAF50"},
		{"shop-pl-restaurant", "Restauracja", "utensils", "#FF7043"},
		{"shop-pl-cafe", "Kawiarnia", "coffee", "#795548"},
		{"shop-pl-transport", "Transport", "bus", "#2196F3"},
		{"shop-pl-pharmacy", "Apteka", "pill", "#E91E63"},
		{"shop-pl-clothing", "Odzież", "shirt", "#9C27B0"},
		{"shop-pl-electronics", "Elektronika", "smartphone", "#607D8B"},
		{"shop-pl-entertainment", "Rozrywka", "film", "#FFC107"},
		{"shop-pl-household", "Dom", "home", "#8BC34A"},
		{"shop-pl-other", "Inne", "tag", "#9E9E9E"},
	},
	"de": {
		{"shop-de-groceries", "Lebensmittel", "shopping-cart", "#4CAF50"},
		{"shop-de-restaurant", "Restaurant", "utensils", "#FF7043"},
		{"shop-de-cafe", "Café", "coffee", "#795548"},
		{"shop-de-transport", "Verkehr", "bus", "#2196F3"},
		{"shop-de-pharmacy", "Apotheke", "pill", "#E91E63"},
		{"shop-de-clothing", "Kleidung", "shirt", "#9C27B0"},
		{"shop-de-electronics", "Elektronik", "smartphone", "#607D8B"},
		{"shop-de-entertainment", "Unterhaltung", "film", "#FFC107"},
		{"shop-de-household", "Haushalt", "home", "#8BC34A"},
		{"shop-de-other", "Sonstiges", "tag", "#9E9E9E"},
	},
}

// DefaultShopsForLanguage returns the built-in shops for a language as fresh
// values with zero timestamps; the store stamps timestamps on insertion.
// Unknown languages get an empty catalog.
func DefaultShopsForLanguage(language string) []ledger.Shop {
	entries := defaultShops[language]
	shops := make([]ledger.Shop, 0, len(entries))
	for _, e := range entries {
		shops = append(shops, ledger.Shop{
			ID:         e.id,
			Name:       e.name,
			Icon:       e.icon,
			Color:      e.color,
			Language:   language,
			IsOriginal: true,
			IsCustom:   false,
		})
	}
	return shops
}

// SupportedLanguages returns the language codes a catalog ships for.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(defaultShops))
	for _, lang := range ledger.Languages {
		if _, ok := defaultShops[lang.Code]; ok {
			codes = append(codes, lang.Code)
		}
	}
	return codes
}
