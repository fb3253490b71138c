// Package format renders numbers, currencies, sizes and phone numbers as text and
// parses human-formatted numbers back.
//
// Separator handling is locale agnostic: when a string holds both '.' and ',',
// whichever appears last is taken as the decimal point and every other occurrence
// is treated as grouping.
package format

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"utilkit/internal/kind"
	apperrors "utilkit/pkg/errors"

	"golang.org/x/text/width"
)

const DefaultThousandsSeparator = ","

var stripGrouping = strings.NewReplacer(".", "", ",", "")

// FormatNumber groups the integer digits of value with separator and writes the
// fraction after the complementary decimal symbol: "." pairs with ",", "," with
// ".", and any other separator with ".". An empty separator means ",".
//
// value may be any numeric kind or a string that is already formatted. Fraction
// digits are preserved as given; nothing is rounded. overrides replace the text
// or code of the type error raised for other kinds.
//
//	FormatNumber(1234567.89, "")       // "1,234,567.89"
//	FormatNumber("1234567,89", ",")    // "1,234,567.89"
//	FormatNumber("1.234.567,89", ".")  // "1.234.567,89"
func FormatNumber(value any, separator string, overrides ...apperrors.Override) (string, error) {
	if separator == "" {
		separator = DefaultThousandsSeparator
	}

	var (
		num number
		err error
	)
	switch kind.Of(value) {
	case kind.Number:
		if _, err = apperrors.AssertNumber(value, "value", overrides...); err != nil {
			return "", err
		}
		num, err = splitNumber(numberText(value))
	case kind.String:
		s, _ := apperrors.AssertString(value, "value")
		num, err = splitNumber(s)
	default:
		return "", apperrors.ApplyOverrides(apperrors.TypeError("value", "a finite number or numeric string", value), overrides...)
	}
	if err != nil {
		return "", err
	}

	return num.render(separator, DecimalSeparator(separator)), nil
}

// DecimalSeparator returns the decimal symbol paired with a thousands separator.
func DecimalSeparator(thousands string) string {
	if thousands == "." {
		return ","
	}
	return "."
}

// number is a decimal split into sign, integer digits and fraction digits.
type number struct {
	negative bool
	integer  string
	fraction string
}

func (n number) render(thousands, decimal string) string {
	var b strings.Builder
	if n.negative {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(n.integer, thousands))
	if n.fraction != "" {
		b.WriteString(decimal)
		b.WriteString(n.fraction)
	}
	return b.String()
}

func numberText(value any) string {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	default:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
}

// splitNumber reads a formatted numeric string. The last '.' or ',' is the
// decimal point; earlier ones are grouping and are dropped.
func splitNumber(s string) (number, error) {
	raw := s
	s = strings.TrimSpace(s)

	var n number
	switch {
	case strings.HasPrefix(s, "-"):
		n.negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	integer, fraction := s, ""
	if i := strings.LastIndexAny(s, ".,"); i >= 0 {
		integer, fraction = s[:i], s[i+1:]
	}
	integer = stripGrouping.Replace(integer)

	if (integer == "" && fraction == "") || !allDigits(integer) || !allDigits(fraction) {
		return number{}, apperrors.InvalidInput("value", fmt.Sprintf("%q is not a numeric string", raw))
	}

	integer = strings.TrimLeft(integer, "0")
	if integer == "" {
		integer = "0"
	}
	n.integer, n.fraction = integer, fraction
	if n.integer == "0" && strings.Trim(n.fraction, "0") == "" {
		n.negative = false
	}
	return n, nil
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseNumber extracts a number from human or currency formatted text such as
// "$ 1,234.56", "(1.234,56 €)" or "１２３". Currency symbols, letters, emoji and
// whitespace (full-width included) are ignored. Enclosing parentheses or a minus
// sign before the first digit make the result negative.
//
// The decimal point is the last separator when both '.' and ',' occur. When only
// one of them occurs it is grouping if repeated and the decimal point otherwise.
// Blank input yields 0; input without digits yields NaN.
func ParseNumber(s string) float64 {
	s = width.Narrow.String(s)
	if strings.TrimFunc(s, unicode.IsSpace) == "" {
		return 0
	}

	first := strings.IndexFunc(s, isDigit)
	if first < 0 {
		return math.NaN()
	}
	last := strings.LastIndexFunc(s, isDigit)

	negative := strings.ContainsAny(s[:first], "-−") ||
		(strings.Contains(s[:first], "(") && strings.Contains(s[last:], ")"))

	var b strings.Builder
	for _, r := range s[first:] {
		if isDigit(r) || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimRight(b.String(), ".,")
	if first > 0 && strings.ContainsAny(s[first-1:first], ".,") {
		cleaned = "." + cleaned
	}

	decimal := decimalPoint(cleaned)
	var out strings.Builder
	if negative {
		out.WriteByte('-')
	}
	cut := -1
	if decimal != 0 {
		cut = strings.LastIndexByte(cleaned, decimal)
	}
	for i := 0; i < len(cleaned); i++ {
		switch c := cleaned[i]; {
		case i == cut:
			out.WriteByte('.')
		case c >= '0' && c <= '9':
			out.WriteByte(c)
		}
	}

	f, err := strconv.ParseFloat(out.String(), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// decimalPoint picks the decimal separator of a string made of digits, '.' and
// ','. Zero means the string has no fraction.
func decimalPoint(s string) byte {
	dot, comma := strings.LastIndexByte(s, '.'), strings.LastIndexByte(s, ',')
	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			return '.'
		}
		return ','
	case dot >= 0:
		if strings.Count(s, ".") > 1 {
			return 0
		}
		return '.'
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			return 0
		}
		return ','
	}
	return 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
