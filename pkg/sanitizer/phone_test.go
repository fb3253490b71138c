package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+972502345678",
			want:  "+972502345678",
		},
		{
			name:  "with spaces",
			input: "+972 50 234 5678",
			want:  "+972502345678",
		},
		{
			name:  "with dashes",
			input: "+972-50-234-5678",
			want:  "+972502345678",
		},
		{
			name:  "with parentheses",
			input: "+1 (650) 253-0000",
			want:  "+16502530000",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +972502345678  ",
			want:  "+972502345678",
		},
		{
			name:  "no plus sign",
			input: "972502345678",
			want:  "+972502345678",
		},
		{
			name:  "national number defaults to US",
			input: "(650) 253-0000",
			want:  "+16502530000",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "letters",
			input: "invalid-phone",
			want:  "",
		},
		{
			name:  "too short",
			input: "+1",
			want:  "",
		},
		{
			name:  "extremely long",
			input: "+1234567890123456789012345678901234567890",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizePhone(got); again != got {
				t.Errorf("NormalizePhone is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
