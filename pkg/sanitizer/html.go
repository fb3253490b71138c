package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTMLTags returns the text content of an HTML fragment. Entities are
// decoded and the bodies of script and style elements are dropped. Whitespace
// is kept as written.
//
//	StripHTMLTags("<div><b>Bold</b> text</div>") // "Bold text"
func StripHTMLTags(s string) string {
	if s == "" {
		return ""
	}

	var (
		b    strings.Builder
		skip int
	)
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce.
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			if isRawTextElement(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawTextElement(z) && skip > 0 {
				skip--
			}
		}
	}
}

func isRawTextElement(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}

// EscapeHTML escapes <, >, &, ' and ".
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML decodes named and numeric character references.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}
