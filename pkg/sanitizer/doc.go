// Package sanitizer provides string normalization functions.
//
// Sanitizers are total and never return errors; empty input produces an empty
// string and invalid input degrades to "". Apart from the HTML entity helpers
// they are idempotent.
//
// Sanitizers share the Strategy signature so they can be chained with Pipeline
// and applied over slices with SanitizeSlice:
//   - Whitespace: RemoveSpaces, NormalizeSpaces, NormalizeLineBreaks
//   - Markup: StripHTMLTags, EscapeHTML, UnescapeHTML
//   - Characters: RemoveAccents, RemoveSpecialChars, Slugify - "Héllo, Wörld!" becomes "hello-world"
//   - Phone numbers: NormalizePhone converts to E.164 format (+[country][number])
package sanitizer
