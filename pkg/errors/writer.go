package errors

import (
	"encoding/json"
	"io"
)

// WriteError encodes err as a single-line ErrorResponse document. Errors that are
// not *AppError are reported as internal errors.
func WriteError(w io.Writer, err error) error {
	appErr := AsAppError(err)

	response := ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Param:   appErr.Param,
		Details: appErr.Details,
	}

	return json.NewEncoder(w).Encode(response)
}
