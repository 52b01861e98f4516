package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
)

const maxRequestBodySize = 1 << 20

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, dst any) error {
	bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errs.NewMaxBodySizeExceededError(maxBytesErr.Limit)
		}
		logger.Error().Err(err).Msg("Failed to read request body")
		return errs.NewBadRequestError("failed to read request body")
	}

	if err := json.Unmarshal(bodyBytes, dst); err != nil {
		logger.Warn().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode request body")
		return errs.NewInvalidJSONError(err)
	}

	return validationError(validate.Struct(dst))
}

// validationError converts the first validator failure into an ApiErr
func validationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errs.NewBadRequestError(err.Error())
	}

	fe := validationErrs[0]
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return errs.NewMissingRequiredFieldError(field)
	case "max":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "min":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be at least %s", fe.Param()))
	default:
		return errs.NewInvalidFieldError(field, fmt.Sprintf("failed %s validation", fe.Tag()))
	}
}

// fieldPath drops the struct name from the validator namespace, e.g. "technologies[2]"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// uintURLParam parses a positive integer path parameter
func uintURLParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewMissingRequiredFieldError(name)
	}

	value, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || value == 0 {
		return 0, errs.NewInvalidFieldError(name, "must be a positive integer")
	}
	return uint(value), nil
}

// uintQueryParam parses an optional non-negative integer query parameter. Missing means zero.
func uintQueryParam(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, errs.NewInvalidFieldError(name, "must be a non-negative integer")
	}
	return uint(value), nil
}
