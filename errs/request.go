package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrMaxBodySizeExceeded  = errors.New("max body size exceeded")
)

func fieldError(sentinel error, field, details string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        sentinel,
		Details:    details,
		Field:      field,
	}
}

func NewMissingRequiredFieldError(field string) *ApiErr {
	return fieldError(ErrMissingRequiredField, field, field+" is required")
}

func NewInvalidFieldError(field, reason string) *ApiErr {
	return fieldError(ErrInvalidField, field, field+" "+reason)
}

// NewInvalidJSONError reports an undecodable body under the pseudo field "json"
func NewInvalidJSONError(cause error) *ApiErr {
	err := fieldError(ErrInvalidJSON, "json", "request body is not valid JSON")
	err.Cause = cause
	return err
}

func NewMaxBodySizeExceededError(limit int64) *ApiErr {
	err := fieldError(ErrMaxBodySizeExceeded, "body", fmt.Sprintf("request body exceeds %d bytes", limit))
	err.StatusCode = http.StatusRequestEntityTooLarge
	return err
}

func IsMissingRequiredFieldError(err error) bool { return errors.Is(err, ErrMissingRequiredField) }
func IsInvalidFieldError(err error) bool         { return errors.Is(err, ErrInvalidField) }
func IsInvalidJSONError(err error) bool          { return errors.Is(err, ErrInvalidJSON) }
