// Package ledger defines the domain entities for the finance tracker.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes money going out from money coming in.
type EntryType string

// Entry types.
const (
	EntryExpense EntryType = "expense"
	EntryIncome  EntryType = "income"
)

// IncomeShopID is the sentinel shop reference used by income entries,
// which are not tied to any shop.
const IncomeShopID = "income"

// DarkMode controls the app theme.
type DarkMode string

// Dark mode values.
const (
	DarkModeSystem DarkMode = "system"
	DarkModeLight  DarkMode = "light"
	DarkModeDark   DarkMode = "dark"
)

// CurrencyMode governs whether the app currency follows the language.
type CurrencyMode string

// Currency modes.
const (
	CurrencyModeManual       CurrencyMode = "manual"
	CurrencyModeAutoLanguage CurrencyMode = "auto-language"
	CurrencyModeAutoLocation CurrencyMode = "auto-location"
)

// Expense represents a single expense or income entry.
//
// Amount is denormalized: it is always expressed in the active settings
// currency and is recomputed on every currency conversion. When the
// OriginalCurrency/OriginalAmount pair is set it is the authoritative source
// for re-conversion; Amount must never be used as a conversion input in that
// case, otherwise rounding errors compound across repeated conversions.
type Expense struct {
	ID     string          `json:"id"`
	ShopID string          `json:"shopId"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note,omitempty"`
	Type   EntryType       `json:"type"`

	// Currency/amount as entered by the user, preserved permanently.
	// The pair is considered present when OriginalCurrency is non-empty.
	OriginalCurrency string           `json:"originalCurrency,omitempty"`
	OriginalAmount   *decimal.Decimal `json:"originalAmount,omitempty"`

	// Snapshot of the shop's display data at entry time, so historical
	// entries keep their label even if the shop is edited or the active
	// language changes.
	OriginalShopName  string `json:"originalShopName,omitempty"`
	OriginalShopIcon  string `json:"originalShopIcon,omitempty"`
	OriginalShopColor string `json:"originalShopColor,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasOriginalAmount reports whether the entry carries the original
// currency/amount pair.
func (e *Expense) HasOriginalAmount() bool {
	return e.OriginalCurrency != "" && e.OriginalAmount != nil
}

// ShopDisplay is the displayable identity of a shop.
type ShopDisplay struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Shop represents a merchant entries are recorded against. A shop is either a
// built-in pinned to one language (IsOriginal) or user-created (IsCustom),
// optionally carrying per-language display overrides in MultilingualData.
type Shop struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Color      string `json:"color,omitempty"`
	Language   string `json:"language,omitempty"`
	IsOriginal bool   `json:"isOriginal,omitempty"`
	IsCustom   bool   `json:"isCustom,omitempty"`
	IsFavorite bool   `json:"isFavorite,omitempty"`

	MultilingualData map[string]ShopDisplay `json:"multilingualData,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResolveDisplay returns the shop's display data for the given language,
// falling back to the shop's base fields when no override exists. Empty
// override fields also fall back, so a partial override never blanks the
// icon or color.
func ResolveDisplay(shop Shop, language string) ShopDisplay {
	display := ShopDisplay{
		Name:  shop.Name,
		Icon:  shop.Icon,
		Color: shop.Color,
	}
	override, ok := shop.MultilingualData[language]
	if !ok {
		return display
	}
	if override.Name != "" {
		display.Name = override.Name
	}
	if override.Icon != "" {
		display.Icon = override.Icon
	}
	if override.Color != "" {
		display.Color = override.Color
	}
	return display
}

// Settings is the singleton application configuration.
type Settings struct {
	Currency     string       `json:"currency"`
	Language     string       `json:"language"`
	DarkMode     DarkMode     `json:"darkMode"`
	CurrencyMode CurrencyMode `json:"currencyMode"`

	// Legacy mirror of CurrencyMode == manual, kept for stored-state
	// compatibility. Must stay consistent with CurrencyMode.
	IsManualCurrency bool `json:"isManualCurrency"`
}

// DefaultSettings returns the first-run settings.
func DefaultSettings() Settings {
	return Settings{
		Currency:         "USD",
		Language:         "en",
		DarkMode:         DarkModeSystem,
		CurrencyMode:     CurrencyModeAutoLanguage,
		IsManualCurrency: false,
	}
}
