package ledger

// Currency describes a selectable currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// DefaultCurrency is used when a language has no mapped currency.
const DefaultCurrency = "USD"

// Currencies lists the selectable currencies in display order.
var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč"},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr"},
	{Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft"},
	{Code: "RON", Name: "Romanian Leu", Symbol: "lei"},
	{Code: "BGN", Name: "Bulgarian Lev", Symbol: "лв"},
	{Code: "HRK", Name: "Croatian Kuna", Symbol: "kn"},
	{Code: "RSD", Name: "Serbian Dinar", Symbol: "дин"},
	{Code: "ISK", Name: "Icelandic Krona", Symbol: "kr"},
	{Code: "UAH", Name: "Ukrainian Hryvnia", Symbol: "₴"},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽"},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$"},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿"},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM"},
	{Code: "PHP", Name: "Philippine Peso", Symbol: "₱"},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp"},
	{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫"},
	{Code: "ILS", Name: "Israeli Shekel", Symbol: "₪"},
	{Code: "SAR", Name: "Saudi Riyal", Symbol: "﷼"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ"},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "£"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$"},
}

// CurrencySymbol returns the display symbol for a currency code, or the code
// itself when unknown.
func CurrencySymbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return code
}

// languageCurrency maps language codes to their typical currency.
var languageCurrency = map[string]string{
	"en": "USD",
	"cs": "CZK",
	"sk": "EUR",
	"de": "EUR",
	"fr": "EUR",
	"es": "EUR",
	"it": "EUR",
	"pt": "EUR",
	"nl": "EUR",
	"fi": "EUR",
	"sl": "EUR",
	"lt": "EUR",
	"lv": "EUR",
	"et": "EUR",
	"pl": "PLN",
	"hu": "HUF",
	"ro": "RON",
	"bg": "BGN",
	"hr": "HRK",
	"sr": "RSD",
	"da": "DKK",
	"sv": "SEK",
	"no": "NOK",
	"is": "ISK",
	"ru": "RUB",
	"uk": "UAH",
	"tr": "TRY",
	"ja": "JPY",
	"ko": "KRW",
	"zh": "CNY",
	"hi": "INR",
	"th": "THB",
	"vi": "VND",
	"id": "IDR",
	"ms": "MYR",
	"tl": "PHP",
	"he": "ILS",
	"ar": "SAR",
	"af": "ZAR",
}

// CurrencyForLanguage returns the currency a language maps to in
// auto-language mode, defaulting to DefaultCurrency for unmapped languages.
func CurrencyForLanguage(language string) string {
	if code, ok := languageCurrency[language]; ok {
		return code
	}
	return DefaultCurrency
}

// Language describes a selectable UI language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// Languages lists the languages the app ships shop catalogs for.
var Languages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "cs", Name: "Czech", NativeName: "Čeština"},
	{Code: "sk", Name: "Slovak", NativeName: "Slovenčina"},
	{Code: "pl", Name: "Polish", NativeName: "Polski"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
}
