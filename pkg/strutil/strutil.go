// Package strutil transforms strings: capitalization, initials, case styles,
// grapheme-aware truncation and masking.
package strutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
	apperrors "utilkit/pkg/errors"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CapitalizeOptions controls CapitalizeWords. The zero value only upper-cases
// the first letter of every word.
type CapitalizeOptions struct {
	Trim           bool
	CollapseSpaces bool
	LowerRest      bool
}

// CapitalizeWords upper-cases the first letter of every whitespace separated
// word.
//
//	CapitalizeWords("  hello   world  ", CapitalizeOptions{Trim: true, CollapseSpaces: true}) // "Hello World"
func CapitalizeWords(s string, opts CapitalizeOptions) string {
	if opts.Trim {
		s = strings.TrimSpace(s)
	}
	if opts.CollapseSpaces {
		s = collapseSpaces(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	atWordStart := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			atWordStart = true
		case atWordStart:
			r = unicode.ToUpper(r)
			atWordStart = false
		case opts.LowerRest:
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastWasSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}
	return b.String()
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TitleCase applies language-neutral title casing: "hello WORLD" -> "Hello World".
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// GetInitialsName returns upper-case initials: the first letters of the first and
// last words, or the first two letters of a single word.
//
//	GetInitialsName("John Doe")   // "JD"
//	GetInitialsName("Alice")      // "AL"
func GetInitialsName(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return ""
	case 1:
		r := []rune(words[0])
		return strings.ToUpper(string(r[:min(2, len(r))]))
	}
	first, _ := utf8.DecodeRuneInString(words[0])
	last, _ := utf8.DecodeRuneInString(words[len(words)-1])
	return strings.ToUpper(string([]rune{first, last}))
}

// ReplaceAt replaces the rune at index with replacement.
//
//	ReplaceAt(3, "hello", "X") // "helXo"
func ReplaceAt(index int, s, replacement string) (string, error) {
	runes := []rune(s)
	if index < 0 || index >= len(runes) {
		return "", apperrors.RangeError("index", fmt.Sprintf("must be within [0, %d), got %d", len(runes), index))
	}
	if replacement == "" {
		return "", apperrors.InvalidInput("replacement", "must not be empty")
	}
	return string(runes[:index]) + replacement + string(runes[index+1:]), nil
}

// Truncate shortens s to at most limit grapheme clusters, suffix included. When
// the suffix alone does not fit, s is cut without it.
func Truncate(s string, limit int, suffix string) string {
	if limit <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(s) <= limit {
		return s
	}
	keep := limit - uniseg.GraphemeClusterCount(suffix)
	if keep <= 0 {
		return firstGraphemes(s, limit)
	}
	return firstGraphemes(s, keep) + suffix
}

func firstGraphemes(s string, n int) string {
	g := uniseg.NewGraphemes(s)
	end := 0
	for i := 0; i < n && g.Next(); i++ {
		_, end = g.Positions()
	}
	return s[:end]
}

// Reverse reverses s by grapheme cluster, so combining marks and emoji sequences
// stay intact.
func Reverse(s string) string {
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}

// Mask replaces all but the last visible runes with mask ('*' when zero).
//
//	Mask("4111111111111111", 4, 0) // "************1111"
func Mask(s string, visible int, mask rune) string {
	if mask == 0 {
		mask = '*'
	}
	runes := []rune(s)
	visible = max(visible, 0)
	if visible >= len(runes) {
		return s
	}
	hidden := len(runes) - visible
	return strings.Repeat(string(mask), hidden) + string(runes[hidden:])
}

func CountWords(s string) int {
	return len(strings.Fields(s))
}
