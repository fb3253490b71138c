package sanitizer

import (
	"strings"
	"unicode"
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeSpaces trims s and collapses every whitespace run to a single space.
func NormalizeSpaces(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// RemoveSpaces drops every Unicode whitespace rune, full-width spaces included.
func RemoveSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeLineBreaks converts CRLF and lone CR to LF.
func NormalizeLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}
