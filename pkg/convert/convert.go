// Package convert performs loose conversions between value kinds.
package convert

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"utilkit/internal/kind"
	apperrors "utilkit/pkg/errors"

	"github.com/spf13/cast"
)

// ToNumber converts numbers, numeric strings, booleans and dates (milliseconds
// since the Unix epoch) to float64. nil and blank strings convert to 0.
// overrides apply to the type error raised for unsupported kinds.
func ToNumber(v any, overrides ...apperrors.Override) (float64, error) {
	switch kind.Of(v) {
	case kind.Nil:
		return 0, nil
	case kind.String:
		s, _ := apperrors.AssertString(v, "value")
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, apperrors.InvalidInput("value", fmt.Sprintf("%q is not a number", s))
		}
		return f, nil
	case kind.Number, kind.Bool:
		if f, err := cast.ToFloat64E(v); err == nil {
			return f, nil
		}
		if f, ok := kind.Float(v); ok {
			return f, nil
		}
		return boolNumber(v), nil
	case kind.Time:
		return float64(v.(time.Time).UnixMilli()), nil
	}
	return 0, apperrors.ApplyOverrides(apperrors.TypeError("value", "a number, numeric string, boolean or date", v), overrides...)
}

// ToInteger converts like ToNumber and truncates toward zero. NaN, infinities
// and values outside the int64 range are rejected with a range error.
func ToInteger(v any, overrides ...apperrors.Override) (int64, error) {
	switch kind.Of(v) {
	case kind.Number:
		rv := reflect.ValueOf(v)
		switch {
		case isUnsigned(rv.Kind()):
			if rv.Uint() > math.MaxInt64 {
				return 0, apperrors.RangeError("value", fmt.Sprintf("%d overflows int64", rv.Uint()))
			}
			return int64(rv.Uint()), nil
		case !kind.IsFloatKind(rv.Kind()):
			return rv.Int(), nil
		}
	case kind.String:
		s, _ := apperrors.AssertString(v, "value")
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err == nil {
			return n, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperrors.RangeError("value", fmt.Sprintf("%s overflows int64", strings.TrimSpace(s)))
		}
	}

	f, err := ToNumber(v, overrides...)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, apperrors.RangeError("value", fmt.Sprintf("%v has no integer representation", f))
	}
	if f >= maxInt64Float || f < -maxInt64Float {
		return 0, apperrors.RangeError("value", fmt.Sprintf("%v overflows int64", f))
	}
	return int64(math.Trunc(f)), nil
}

// maxInt64Float is 2^63, the first float64 above the int64 range.
const maxInt64Float = 1 << 63

// ToString renders v as text. nil becomes "", dates use RFC 3339 and values cast
// cannot handle fall back to their default format.
func ToString(v any) string {
	switch kind.Of(v) {
	case kind.Nil:
		return ""
	case kind.Time:
		return v.(time.Time).Format(time.RFC3339Nano)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// ToBool parses booleans, numbers and strings such as "true", "1", "f" or "0".
func ToBool(v any, overrides ...apperrors.Override) (bool, error) {
	switch kind.Of(v) {
	case kind.Nil:
		return false, nil
	case kind.Bool, kind.Number, kind.String:
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		b, err := cast.ToBoolE(v)
		if err != nil {
			return false, apperrors.InvalidInput("value", fmt.Sprintf("%v is not a boolean", v))
		}
		return b, nil
	}
	return false, apperrors.ApplyOverrides(apperrors.TypeError("value", "a boolean, number or string", v), overrides...)
}

// Truthy reports whether v is truthy: nil, false, zero, NaN, empty strings and
// empty collections are falsy; everything else is truthy.
func Truthy(v any) bool {
	switch kind.Of(v) {
	case kind.Nil:
		return false
	case kind.Bool:
		return reflect.ValueOf(v).Bool()
	case kind.Number:
		f, _ := kind.Float(v)
		return f != 0 && !math.IsNaN(f)
	case kind.String, kind.Bytes, kind.Slice, kind.Map:
		return reflect.ValueOf(v).Len() > 0
	}
	return true
}

// ToSlice wraps v in a slice: nil becomes an empty slice, slices and arrays are
// copied element by element and any other value becomes a one-element slice.
func ToSlice(v any) []any {
	switch kind.Of(v) {
	case kind.Nil:
		return []any{}
	case kind.Slice:
		out, _ := apperrors.AssertSlice(v, "value")
		return out
	}
	return []any{v}
}

func ToStringSlice(v any, overrides ...apperrors.Override) ([]string, error) {
	if kind.Of(v) == kind.Nil {
		return []string{}, nil
	}
	out, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, apperrors.ApplyOverrides(apperrors.TypeError("value", "a slice or string", v), overrides...)
	}
	return out, nil
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func boolNumber(v any) float64 {
	if reflect.ValueOf(v).Bool() {
		return 1
	}
	return 0
}
