// Package kind classifies runtime values into a closed set of categories.
//
// The classification is computed once per call and drives the per-type logic in
// predicates, conversions, formatters and the deep equality check. Precedence is
// fixed: bytes are detected before generic slices, time.Time before structs,
// *regexp.Regexp before pointers and error implementers before structs and pointers.
package kind

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"time"
)

type Kind int

const (
	Invalid Kind = iota
	Nil
	Bool
	Number
	String
	Bytes
	Time
	Regexp
	Error
	Slice
	Map
	Struct
	Pointer
	Func
	Chan
)

var names = [...]string{
	Invalid: "invalid",
	Nil:     "null",
	Bool:    "boolean",
	Number:  "number",
	String:  "string",
	Bytes:   "bytes",
	Time:    "date",
	Regexp:  "regexp",
	Error:   "error",
	Slice:   "array",
	Map:     "object",
	Struct:  "struct",
	Pointer: "pointer",
	Func:    "function",
	Chan:    "channel",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return names[Invalid]
	}
	return names[k]
}

var (
	timeType   = reflect.TypeFor[time.Time]()
	regexpType = reflect.TypeFor[*regexp.Regexp]()
	errorType  = reflect.TypeFor[error]()
)

func Of(v any) Kind {
	if v == nil {
		return Nil
	}
	return OfValue(reflect.ValueOf(v))
}

// OfValue classifies a reflected value. Interfaces are unwrapped; nil pointers,
// functions and channels are reported as Nil. Nil slices and maps keep their kind.
func OfValue(rv reflect.Value) Kind {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return Nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return Nil
		}
	}

	t := rv.Type()
	switch {
	case t.Kind() == reflect.Bool:
		return Bool
	case IsNumberKind(t.Kind()):
		return Number
	case t.Kind() == reflect.String:
		return String
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8:
		return Bytes
	case t == timeType:
		return Time
	case t == regexpType:
		return Regexp
	case t.Implements(errorType):
		return Error
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return Slice
	case reflect.Map:
		return Map
	case reflect.Struct:
		return Struct
	case reflect.Pointer, reflect.UnsafePointer:
		return Pointer
	case reflect.Func:
		return Func
	case reflect.Chan:
		return Chan
	}
	return Invalid
}

func IsNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func IsFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// Float returns the numeric value of v as a float64. ok is false when v is not
// of a numeric kind.
func Float(v any) (f float64, ok bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// IsFinite reports whether v is a number that is neither NaN nor infinite.
func IsFinite(v any) bool {
	f, ok := Float(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Describe renders the kind of v with its Go type for error messages,
// e.g. "number (int64)" or "null".
func Describe(v any) string {
	k := Of(v)
	if k == Nil && v == nil {
		return k.String()
	}
	return fmt.Sprintf("%s (%T)", k, v)
}
