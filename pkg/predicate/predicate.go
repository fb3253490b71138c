// Package predicate classifies values by kind and shape.
//
// Every predicate is total: it never panics and never returns an error. Kind
// detection follows the precedence of the kind tag (bytes before arrays, dates
// before structs, patterns before pointers, errors before structs and pointers).
package predicate

import (
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"
	"utilkit/internal/kind"
)

// IsNil reports whether v is nil or a typed nil pointer, map, slice, function,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func IsString(v any) bool {
	return kind.Of(v) == kind.String
}

// IsNumber reports whether v is of any numeric kind. NaN and infinities count.
func IsNumber(v any) bool {
	return kind.Of(v) == kind.Number
}

// IsInteger reports whether v is an integer kind or an integral finite float.
func IsInteger(v any) bool {
	if kind.Of(v) != kind.Number {
		return false
	}
	if !kind.IsFloatKind(reflect.ValueOf(v).Kind()) {
		return true
	}
	f, _ := kind.Float(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
}

func IsFinite(v any) bool {
	return kind.IsFinite(v)
}

func IsNaN(v any) bool {
	f, ok := kind.Float(v)
	return ok && math.IsNaN(f)
}

func IsBoolean(v any) bool {
	return kind.Of(v) == kind.Bool
}

// IsArray reports whether v is a slice or array. Byte slices are not arrays.
func IsArray(v any) bool {
	return kind.Of(v) == kind.Slice
}

// IsObject reports whether v is a map, a struct, or a non-nil pointer to a struct.
// Dates, patterns and errors have their own kinds and are not objects.
func IsObject(v any) bool {
	switch kind.Of(v) {
	case kind.Map, kind.Struct:
		return true
	case kind.Pointer:
		return reflect.ValueOf(v).Elem().Kind() == reflect.Struct
	}
	return false
}

func IsPlainObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func IsFunction(v any) bool {
	return kind.Of(v) == kind.Func
}

func IsDate(v any) bool {
	switch d := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return d != nil
	}
	return false
}

// IsValidDate reports whether v is a date holding a non-zero instant.
func IsValidDate(v any) bool {
	switch d := v.(type) {
	case time.Time:
		return !d.IsZero()
	case *time.Time:
		return d != nil && !d.IsZero()
	}
	return false
}

func IsRegExp(v any) bool {
	_, ok := v.(*regexp.Regexp)
	return ok && kind.Of(v) == kind.Regexp
}

func IsError(v any) bool {
	return kind.Of(v) == kind.Error
}

func IsBytes(v any) bool {
	return kind.Of(v) == kind.Bytes
}

// IsEmpty reports whether v holds nothing: nil, an empty string, a zero-length
// collection, a zero date or a struct without fields. Numbers and booleans are
// never empty.
func IsEmpty(v any) bool {
	switch kind.Of(v) {
	case kind.Nil:
		return true
	case kind.String, kind.Bytes, kind.Slice, kind.Map, kind.Chan:
		return reflect.ValueOf(v).Len() == 0
	case kind.Time:
		return reflect.ValueOf(v).Interface().(time.Time).IsZero()
	case kind.Struct:
		return reflect.ValueOf(v).NumField() == 0
	}
	return false
}

// IsBlank reports whether s is empty or consists only of whitespace, including
// full-width spaces.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
