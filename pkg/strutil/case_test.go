package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "parseHTTPResponse_v2", want: []string{"parse", "HTTP", "Response", "v2"}},
		{input: "hello world", want: []string{"hello", "world"}},
		{input: "kebab-case-name", want: []string{"kebab", "case", "name"}},
		{input: "PascalCase", want: []string{"Pascal", "Case"}},
		{input: "version2Beta", want: []string{"version2", "Beta"}},
		{input: "  --  ", want: nil},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Words(tt.input)); diff != "" {
			t.Errorf("Words(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestCaseStyles(t *testing.T) {
	tests := []struct {
		input  string
		camel  string
		pascal string
		snake  string
		kebab  string
	}{
		{input: "hello world", camel: "helloWorld", pascal: "HelloWorld", snake: "hello_world", kebab: "hello-world"},
		{input: "HTTPServer", camel: "httpServer", pascal: "HttpServer", snake: "http_server", kebab: "http-server"},
		{input: "user_id", camel: "userId", pascal: "UserId", snake: "user_id", kebab: "user-id"},
		{input: "", camel: "", pascal: "", snake: "", kebab: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CamelCase(tt.input); got != tt.camel {
				t.Errorf("CamelCase(%q) = %q, want %q", tt.input, got, tt.camel)
			}
			if got := PascalCase(tt.input); got != tt.pascal {
				t.Errorf("PascalCase(%q) = %q, want %q", tt.input, got, tt.pascal)
			}
			if got := SnakeCase(tt.input); got != tt.snake {
				t.Errorf("SnakeCase(%q) = %q, want %q", tt.input, got, tt.snake)
			}
			if got := KebabCase(tt.input); got != tt.kebab {
				t.Errorf("KebabCase(%q) = %q, want %q", tt.input, got, tt.kebab)
			}
		})
	}
}
