package format

import (
	"fmt"
	"strings"
	apperrors "utilkit/pkg/errors"
	"utilkit/pkg/locale"

	"github.com/nyaruka/phonenumbers"
)

// FormatPhone renders a phone number in international notation, e.g.
// "+1 650-253-0000". When region is empty it is inferred from the number's
// country prefix, falling back to locale.DefaultRegion.
func FormatPhone(phone, region string) (string, error) {
	num, err := parsePhone(phone, region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), nil
}

// FormatPhoneE164 renders a phone number as E.164, e.g. "+16502530000".
func FormatPhoneE164(phone, region string) (string, error) {
	num, err := parsePhone(phone, region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func parsePhone(phone, region string) (*phonenumbers.PhoneNumber, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperrors.InvalidInput("phone", "must not be empty")
	}

	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = locale.RegionForPhone(phone)
	}

	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidInput, fmt.Sprintf("%q is not a phone number", phone))
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, apperrors.InvalidInput("phone", fmt.Sprintf("%q is not a valid number for region %s", phone, region))
	}
	return num, nil
}
