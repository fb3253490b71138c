package locale

import "strings"

// InferCountryFromPhone matches the phone against the known country prefixes.
// The longest matching prefix wins so that lookups do not depend on map order.
func InferCountryFromPhone(phone string) *Country {
	normalized := strings.TrimSpace(phone)

	var (
		best    *Country
		bestLen int
	)
	for _, country := range Countries {
		for _, prefix := range country.PhonePrefixes {
			if strings.HasPrefix(normalized, prefix) && len(prefix) > bestLen {
				c := country
				best, bestLen = &c, len(prefix)
			}
		}
	}

	return best
}

// RegionForPhone returns the inferred country code, or DefaultRegion.
func RegionForPhone(phone string) string {
	if c := InferCountryFromPhone(phone); c != nil {
		return c.Code
	}
	return DefaultRegion
}
