package locale

import (
	"strings"
)

const (
	DefaultRegion = "US"

	SymbolPrefix = "prefix"
	SymbolSuffix = "suffix"
)

type Country struct {
	Code               string   // ISO 3166-1 alpha-2 country code (e.g., "IL", "US")
	Name               string   // Human-readable country name
	PhonePrefixes      []string // Valid phone number prefixes (e.g., ["+972", "972"])
	CurrencyCode       string   // ISO 4217 currency code (e.g., "ILS")
	CurrencySymbol     string   // Symbol printed next to amounts (e.g., "₪")
	SymbolPosition     string   // SymbolPrefix or SymbolSuffix
	ThousandsSeparator string   // Grouping separator; the decimal separator is its complement
	CurrencyDecimals   int      // Minor unit digits
}

var (
	Countries = map[string]Country{
		"IL": {
			Code:               "IL",
			Name:               "Israel",
			PhonePrefixes:      []string{"+972", "972"},
			CurrencyCode:       "ILS",
			CurrencySymbol:     "₪",
			SymbolPosition:     SymbolPrefix,
			ThousandsSeparator: ",",
			CurrencyDecimals:   2,
		},
		"US": {
			Code:               "US",
			Name:               "United States",
			PhonePrefixes:      []string{"+1", "1"},
			CurrencyCode:       "USD",
			CurrencySymbol:     "$",
			SymbolPosition:     SymbolPrefix,
			ThousandsSeparator: ",",
			CurrencyDecimals:   2,
		},
		"GB": {
			Code:               "GB",
			Name:               "United Kingdom",
			PhonePrefixes:      []string{"+44", "44"},
			CurrencyCode:       "GBP",
			CurrencySymbol:     "£",
			SymbolPosition:     SymbolPrefix,
			ThousandsSeparator: ",",
			CurrencyDecimals:   2,
		},
		"DE": {
			Code:               "DE",
			Name:               "Germany",
			PhonePrefixes:      []string{"+49", "49"},
			CurrencyCode:       "EUR",
			CurrencySymbol:     "€",
			SymbolPosition:     SymbolSuffix,
			ThousandsSeparator: ".",
			CurrencyDecimals:   2,
		},
		"JP": {
			Code:               "JP",
			Name:               "Japan",
			PhonePrefixes:      []string{"+81", "81"},
			CurrencyCode:       "JPY",
			CurrencySymbol:     "¥",
			SymbolPosition:     SymbolPrefix,
			ThousandsSeparator: ",",
			CurrencyDecimals:   0,
		},
	}
)

func Lookup(code string) (Country, bool) {
	c, ok := Countries[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}
