package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reKeepLettersDigits = regexp.MustCompile(`[^0-9\p{L}]+`)
	reSpecialChars      = regexp.MustCompile(`[^0-9\p{L}\p{M}\s]+`)
	reTrimHyphens       = regexp.MustCompile(`-+`)
)

// SanitizeSlice applies strategy to every value, dropping empty results and
// duplicates while keeping first-seen order. The result is never nil.
func SanitizeSlice(values []string, strategy Strategy) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, v := range values {
		s := strategy(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// RemoveAccents strips combining marks after canonical decomposition:
// "Crème Brûlée" -> "Creme Brulee".
func RemoveAccents(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// RemoveSpecialChars keeps letters, digits and whitespace.
func RemoveSpecialChars(s string) string {
	return reSpecialChars.ReplaceAllString(s, "")
}

func toLower(s string) string {
	return strings.ToLower(s)
}

func hyphenate(s string) string {
	s = reKeepLettersDigits.ReplaceAllString(s, "-")
	s = reTrimHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Slugify lowercases s, removes accents and joins the remaining runs of letters
// and digits with single hyphens.
func Slugify(s string) string {
	p := Pipeline{
		strings.TrimSpace,
		RemoveAccents,
		toLower,
		hyphenate,
	}
	return p.Apply(s)
}
