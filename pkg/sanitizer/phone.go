package sanitizer

import (
	"strings"
	"utilkit/pkg/locale"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone converts a phone number to E.164. The region is inferred from
// the number's country prefix. Numbers that do not parse or are not valid for
// their region normalize to "".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	parsedNumber, err := phonenumbers.Parse(phone, locale.RegionForPhone(phone))
	if err != nil || !phonenumbers.IsValidNumber(parsedNumber) {
		return ""
	}
	return phonenumbers.Format(parsedNumber, phonenumbers.E164)
}
