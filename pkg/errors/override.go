package errors

import (
	"reflect"
	"utilkit/internal/kind"
)

// Override replaces parts of a default contract error. MessageFunc wins over
// Message; Code switches the error kind (e.g. CodeRange instead of CodeType).
type Override struct {
	Message     string
	MessageFunc func(e *AppError) string
	Code        string
}

func (o Override) Apply(e *AppError) *AppError {
	if o.Code != "" {
		e.Code = o.Code
	}
	switch {
	case o.MessageFunc != nil:
		e.Message = o.MessageFunc(e)
	case o.Message != "":
		e.Message = o.Message
	}
	return e
}

// ApplyOverrides runs overrides over e in order. Operations that accept
// overrides route their type-contract errors through it.
func ApplyOverrides(e *AppError, overrides ...Override) *AppError {
	for _, o := range overrides {
		e = o.Apply(e)
	}
	return e
}

func AssertString(value any, param string, overrides ...Override) (string, error) {
	if kind.Of(value) != kind.String {
		return "", ApplyOverrides(TypeError(param, "a string", value), overrides...)
	}
	return reflect.ValueOf(value).String(), nil
}

// AssertNumber accepts any finite value of a numeric kind.
func AssertNumber(value any, param string, overrides ...Override) (float64, error) {
	if !kind.IsFinite(value) {
		return 0, ApplyOverrides(TypeError(param, "a finite number", value), overrides...)
	}
	f, _ := kind.Float(value)
	return f, nil
}

// AssertSlice accepts slices and arrays, excluding byte slices.
func AssertSlice(value any, param string, overrides ...Override) ([]any, error) {
	if kind.Of(value) != kind.Slice {
		return nil, ApplyOverrides(TypeError(param, "an array", value), overrides...)
	}
	rv := reflect.ValueOf(value)
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
