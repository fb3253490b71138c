package strutil

import (
	"strings"
	"unicode"
)

// Words splits s on separators and case boundaries:
// "parseHTTPResponse_v2" -> ["parse", "HTTP", "Response", "v2"].
func Words(s string) []string {
	var (
		out []string
		cur []rune
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}

	rs := []rune(s)
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

func CamelCase(s string) string {
	words := Words(s)
	for i, w := range words {
		if i == 0 {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = titleWord(w)
	}
	return strings.Join(words, "")
}

func PascalCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, "")
}

func SnakeCase(s string) string {
	return joinLower(s, "_")
}

func KebabCase(s string) string {
	return joinLower(s, "-")
}

func joinLower(s, sep string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

func titleWord(w string) string {
	return Capitalize(strings.ToLower(w))
}
