package format

import (
	"fmt"
	"math"
	"strconv"
	"utilkit/internal/kind"
	apperrors "utilkit/pkg/errors"
	"utilkit/pkg/locale"
	"utilkit/pkg/mathutil"

	"dario.cat/mergo"
)

type SymbolPosition string

const (
	SymbolPrefix SymbolPosition = locale.SymbolPrefix
	SymbolSuffix SymbolPosition = locale.SymbolSuffix
)

// CurrencyOptions configures FormatCurrency. Empty fields take the defaults:
// "$" prefix, "," grouping and two decimals.
type CurrencyOptions struct {
	Symbol    string
	Separator string
	Position  SymbolPosition
	Decimals  *int
}

var defaultCurrencyOptions = CurrencyOptions{
	Symbol:    "$",
	Separator: DefaultThousandsSeparator,
	Position:  SymbolPrefix,
	Decimals:  Decimals(2),
}

// Decimals returns a pointer for CurrencyOptions.Decimals.
func Decimals(n int) *int {
	return &n
}

// FormatCurrency rounds value half away from zero to the configured decimals and
// renders it with the currency symbol. Negative amounts put the sign first:
// "-$1,234.50" or "-1.234,50 €". overrides apply to the type error raised when
// value is neither a number nor a string.
func FormatCurrency(value any, opts CurrencyOptions, overrides ...apperrors.Override) (string, error) {
	// WithoutDereference keeps an explicit Decimals(0) from being treated as unset.
	if err := mergo.Merge(&opts, defaultCurrencyOptions, mergo.WithoutDereference); err != nil {
		return "", apperrors.Internal("failed to apply currency defaults", err)
	}
	if opts.Position != SymbolPrefix && opts.Position != SymbolSuffix {
		return "", apperrors.InvalidInput("position", fmt.Sprintf("must be %q or %q, got %q", SymbolPrefix, SymbolSuffix, opts.Position))
	}
	if *opts.Decimals < 0 {
		return "", apperrors.RangeError("decimals", fmt.Sprintf("must not be negative, got %d", *opts.Decimals))
	}

	amount, err := amountOf(value, overrides)
	if err != nil {
		return "", err
	}

	rounded := mathutil.Round(math.Abs(amount), *opts.Decimals)
	body, err := FormatNumber(strconv.FormatFloat(rounded, 'f', *opts.Decimals, 64), opts.Separator)
	if err != nil {
		return "", err
	}

	sign := ""
	if amount < 0 && rounded != 0 {
		sign = "-"
	}
	if opts.Position == SymbolSuffix {
		return sign + body + " " + opts.Symbol, nil
	}
	return sign + opts.Symbol + body, nil
}

// FormatCurrencyFor formats value with the currency conventions of a country
// from the locale table.
func FormatCurrencyFor(value any, countryCode string) (string, error) {
	country, ok := locale.Lookup(countryCode)
	if !ok {
		return "", apperrors.InvalidInput("country", fmt.Sprintf("%q is not a supported country code", countryCode))
	}
	return FormatCurrency(value, CurrencyOptions{
		Symbol:    country.CurrencySymbol,
		Separator: country.ThousandsSeparator,
		Position:  SymbolPosition(country.SymbolPosition),
		Decimals:  Decimals(country.CurrencyDecimals),
	})
}

func amountOf(value any, overrides []apperrors.Override) (float64, error) {
	switch kind.Of(value) {
	case kind.Number:
		return apperrors.AssertNumber(value, "value", overrides...)
	case kind.String:
		s, _ := apperrors.AssertString(value, "value")
		n, err := splitNumber(s)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(n.render("", "."), 64)
		if err != nil {
			return 0, apperrors.InvalidInput("value", err.Error())
		}
		return f, nil
	}
	return 0, apperrors.ApplyOverrides(apperrors.TypeError("value", "a finite number or numeric string", value), overrides...)
}
