package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"utilkit/internal/kind"
)

const (
	CodeType         = "TYPE_ERROR"
	CodeRange        = "RANGE_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
	CodeInternal     = "INTERNAL_ERROR"
)

// Sentinels for errors.Is. An *AppError matches a sentinel when the codes agree.
var (
	ErrType         = &AppError{Code: CodeType, Message: "type contract violated"}
	ErrRange        = &AppError{Code: CodeRange, Message: "value out of range"}
	ErrInvalidInput = &AppError{Code: CodeInvalidInput, Message: "invalid input"}
	ErrInternal     = &AppError{Code: CodeInternal, Message: "internal error"}
)

type AppError struct {
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Param    string         `json:"param,omitempty"`
	Expected string         `json:"expected,omitempty"`
	Actual   string         `json:"actual,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Err      error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func (e *AppError) ToJSON() []byte {
	response := ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Param:   e.Param,
		Details: e.Details,
	}
	data, _ := json.Marshal(response)
	return data
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Param   string         `json:"param,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// TypeError reports that param holds a value of the wrong kind. The message names
// the parameter, the expected kind and the actual kind of value.
func TypeError(param, expected string, value any) *AppError {
	actual := kind.Describe(value)
	return &AppError{
		Code:     CodeType,
		Message:  fmt.Sprintf("%s must be %s, got %s", param, expected, actual),
		Param:    param,
		Expected: expected,
		Actual:   actual,
	}
}

func RangeError(param, message string) *AppError {
	return &AppError{
		Code:    CodeRange,
		Message: fmt.Sprintf("%s %s", param, message),
		Param:   param,
	}
}

func InvalidInput(param, message string) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("%s %s", param, message),
		Param:   param,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Err:     err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
