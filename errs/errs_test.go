package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		cause    error
		status   int
		sentinel error
	}{
		{"record not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), http.StatusNotFound, ErrNotFound},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_language_code"`), http.StatusConflict, ErrAlreadyExists},
		{"sqlite unique", errors.New("UNIQUE constraint failed: languages.code"), http.StatusConflict, ErrConflict},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest, ErrForeignKeyConstraint},
		{"connection refused", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"closed pool", errors.New("sql: database is closed"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"anything else", errors.New("syntax error"), http.StatusInternalServerError, ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("find", "project", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.cause, err.Cause)
		})
	}
}

func TestProjectNotFound(t *testing.T) {
	err := NewProjectNotFound(42)

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "Project with ID 42 not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", err)))
}

func TestGetFullError(t *testing.T) {
	inner := NewInternalErrorWithCause("seed languages", errors.New("disk full"))
	outer := NewDatabaseError("migrate", "schema", inner)

	assert.Equal(t, "database query failed: Failed to migrate schema -> seed languages: internal server error -> disk full", outer.GetFullError())
}

func TestValidationErrors(t *testing.T) {
	err := NewInvalidFieldError("languageId", "must be a positive integer")
	assert.Equal(t, "languageId", err.Field)
	assert.True(t, IsInvalidFieldError(err))
	assert.Equal(t, "invalid field: languageId must be a positive integer", err.Error())

	missing := NewMissingRequiredFieldError("title")
	assert.True(t, IsMissingRequiredFieldError(missing))
	assert.False(t, IsInvalidFieldError(missing))

	assert.True(t, IsBadRequest(NewBadRequestError("invalid id")))
	assert.True(t, IsInvalidJSONError(NewInvalidJSONError(errors.New("eof"))))
}

func TestUnknownLanguageError(t *testing.T) {
	err := NewUnknownLanguageError(9)

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "languageId", err.Field)
	assert.Equal(t, "invalid field: languageId 9 does not match any language", err.Error())
}
