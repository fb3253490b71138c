package predicate

import (
	"bytes"
	"math"
	"reflect"
	"regexp"
	"time"
	"unsafe"
	"utilkit/internal/kind"
)

// IsEqual reports whether a and b are deeply equal.
//
// Numbers compare by value with NaN equal to NaN and +0 equal to -0. Slices and
// arrays compare element-wise in order, and a nil slice equals an empty one. Maps
// compare key sets and values regardless of order, so set-like maps compare by
// membership. Dates compare by instant, patterns by source, errors by message and
// byte slices byte-for-byte. Values of different kinds or different dynamic types
// are never equal. Cyclic structures are supported: a pair of references already
// under comparison is assumed equal when it is reached again.
func IsEqual(a, b any) bool {
	c := &comparer{pairs: make(map[pair]struct{})}
	return c.equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

// pair identifies two references being compared. The table lives for a single
// IsEqual call.
type pair struct {
	a, b unsafe.Pointer
	typ  reflect.Type
}

type comparer struct {
	pairs map[pair]struct{}
}

func (c *comparer) visit(a, b reflect.Value) bool {
	p := pair{a: a.UnsafePointer(), b: b.UnsafePointer(), typ: a.Type()}
	if _, ok := c.pairs[p]; ok {
		return true
	}
	c.pairs[p] = struct{}{}
	return false
}

func (c *comparer) equal(a, b reflect.Value) bool {
	a, b = readable(unwrap(readable(a))), readable(unwrap(readable(b)))

	ka, kb := kind.OfValue(a), kind.OfValue(b)
	if ka != kb {
		return false
	}
	if ka == kind.Nil {
		// An untyped nil matches any typed nil.
		return !a.IsValid() || !b.IsValid() || a.Type() == b.Type()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch ka {
	case kind.Bool:
		return a.Bool() == b.Bool()
	case kind.Number:
		return numbersEqual(a, b)
	case kind.String:
		return a.String() == b.String()
	case kind.Bytes:
		return bytes.Equal(a.Bytes(), b.Bytes())
	case kind.Time:
		if a.CanInterface() && b.CanInterface() {
			return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
		}
	case kind.Regexp:
		if a.CanInterface() && b.CanInterface() {
			return a.Interface().(*regexp.Regexp).String() == b.Interface().(*regexp.Regexp).String()
		}
	case kind.Error:
		if a.CanInterface() && b.CanInterface() {
			return a.Interface().(error).Error() == b.Interface().(error).Error()
		}
	}

	return c.structural(a, b)
}

// structural compares by reflect kind.
func (c *comparer) structural(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		if a.Len() == 0 || a.UnsafePointer() == b.UnsafePointer() {
			return true
		}
		if c.visit(a, b) {
			return true
		}
		return c.elements(a, b)
	case reflect.Array:
		return c.elements(a, b)
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		if a.Len() == 0 || a.UnsafePointer() == b.UnsafePointer() {
			return true
		}
		if c.visit(a, b) {
			return true
		}
		var nanValues []reflect.Value
		iter := a.MapRange()
		for iter.Next() {
			if isNaN(iter.Key()) {
				nanValues = append(nanValues, iter.Value())
				continue
			}
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !c.equal(iter.Value(), bv) {
				return false
			}
		}
		return len(nanValues) == 0 || c.nanEntries(nanValues, b)
	case reflect.Struct:
		for i := range a.NumField() {
			if !c.equal(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Pointer:
		if a.UnsafePointer() == b.UnsafePointer() {
			return true
		}
		if c.visit(a, b) {
			return true
		}
		return c.equal(a.Elem(), b.Elem())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	}
	return false
}

// nanEntries matches the values stored under NaN keys of one map against those
// of b. NaN keys can never be looked up, so they are paired by value.
func (c *comparer) nanEntries(values []reflect.Value, b reflect.Value) bool {
	var others []reflect.Value
	iter := b.MapRange()
	for iter.Next() {
		if isNaN(iter.Key()) {
			others = append(others, iter.Value())
		}
	}
	if len(others) != len(values) {
		return false
	}

	used := make([]bool, len(others))
	for _, v := range values {
		found := false
		for i, o := range others {
			if !used[i] && c.equal(v, o) {
				used[i], found = true, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (c *comparer) elements(a, b reflect.Value) bool {
	for i := range a.Len() {
		if !c.equal(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

func numbersEqual(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		x, y := a.Float(), b.Float()
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	default:
		return a.Int() == b.Int()
	}
}

func isNaN(v reflect.Value) bool {
	v = unwrap(v)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	}
	return false
}

// readable returns a view of v that can be turned back into an interface, so
// dates, patterns and errors held in unexported fields still compare by their
// own rules. Structs and arrays are copied into addressable storage first so
// that their fields and elements can be read the same way.
func readable(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}
	if v.CanAddr() {
		if !v.CanInterface() {
			return reflect.NewAt(v.Type(), v.Addr().UnsafePointer()).Elem()
		}
		return v
	}
	switch v.Kind() {
	case reflect.Struct, reflect.Array:
		if v.CanInterface() {
			cp := reflect.New(v.Type()).Elem()
			cp.Set(v)
			return cp
		}
	}
	return v
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}
