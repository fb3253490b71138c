package sanitizer

import "testing"

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "nested tags",
			input: "<div><b>Bold</b> text</div>",
			want:  "Bold text",
		},
		{
			name:  "entities are decoded",
			input: "<p>Fish &amp; Chips</p>",
			want:  "Fish & Chips",
		},
		{
			name:  "script and style bodies are dropped",
			input: "<style>p{color:red}</style><p>hi</p><script>alert(1)</script>",
			want:  "hi",
		},
		{
			name:  "attributes are dropped",
			input: `<a href="https://example.com" title="x">link</a>`,
			want:  "link",
		},
		{
			name:  "whitespace is kept",
			input: "<p> a </p>",
			want:  " a ",
		},
		{
			name:  "plain text",
			input: "no markup",
			want:  "no markup",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTMLTags(tt.input); got != tt.want {
				t.Errorf("StripHTMLTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	input := `<a href="x">Tom & Jerry's</a>`
	want := "&lt;a href=&#34;x&#34;&gt;Tom &amp; Jerry&#39;s&lt;/a&gt;"

	got := EscapeHTML(input)
	if got != want {
		t.Errorf("EscapeHTML(%q) = %q, want %q", input, got, want)
	}
	if back := UnescapeHTML(got); back != input {
		t.Errorf("UnescapeHTML(EscapeHTML(%q)) = %q", input, back)
	}
	if got := UnescapeHTML("&copy; &#8364; &nbsp;"); got != "© € \u00a0" {
		t.Errorf("UnescapeHTML() = %q", got)
	}
}
