package predicate

import (
	"github.com/go-playground/validator/v10"
)

const (
	TagEmail    = "email"
	TagURL      = "url"
	TagUUID     = "uuid"
	TagNumeric  = "numeric"
	TagAlpha    = "alpha"
	TagAlphanum = "alphanum"
	TagHexColor = "hexcolor"
	TagJSON     = "json"
)

var validate = validator.New()

// Matches reports whether s satisfies the validator tag expression. Empty strings
// never match.
func Matches(s, tag string) bool {
	if s == "" {
		return false
	}
	return validate.Var(s, tag) == nil
}

func IsEmail(s string) bool {
	return Matches(s, TagEmail)
}

// IsURL reports whether s is an absolute URL with a scheme.
func IsURL(s string) bool {
	return Matches(s, TagURL)
}

func IsUUID(s string) bool {
	return Matches(s, TagUUID)
}

// IsNumeric reports whether s is a signed decimal number such as "-12.5".
func IsNumeric(s string) bool {
	return Matches(s, TagNumeric)
}

func IsAlpha(s string) bool {
	return Matches(s, TagAlpha)
}

func IsAlphanumeric(s string) bool {
	return Matches(s, TagAlphanum)
}

func IsHexColor(s string) bool {
	return Matches(s, TagHexColor)
}

func IsJSON(s string) bool {
	return Matches(s, TagJSON)
}
