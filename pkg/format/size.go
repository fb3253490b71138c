package format

import (
	"fmt"
	"strconv"
	apperrors "utilkit/pkg/errors"
	"utilkit/pkg/mathutil"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a size with SI units: 82854982 -> "83 MB".
func FormatBytes(n uint64) string {
	return humanize.Bytes(n)
}

// FormatIBytes renders a size with IEC units: 82854982 -> "79 MiB".
func FormatIBytes(n uint64) string {
	return humanize.IBytes(n)
}

// ParseBytes reads sizes such as "42 MB", "42mib" or "1,000 kB".
func ParseBytes(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeInvalidInput, fmt.Sprintf("%q is not a byte size", s))
	}
	return n, nil
}

// FormatOrdinal renders n with its English ordinal suffix: 1 -> "1st", 12 -> "12th".
func FormatOrdinal(n int) string {
	return humanize.Ordinal(n)
}

// FormatPercent renders a ratio as a percentage with fixed decimals:
// FormatPercent(0.125, 1) -> "12.5%". Negative decimals are treated as zero.
func FormatPercent(ratio float64, decimals int) string {
	decimals = max(decimals, 0)
	return strconv.FormatFloat(mathutil.Round(ratio*100, decimals), 'f', decimals, 64) + "%"
}
