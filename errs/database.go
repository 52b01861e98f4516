package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrDatabaseQuery        = errors.New("database query failed")
	ErrDatabaseConnection   = errors.New("database connection failed")
	ErrForeignKeyConstraint = errors.New("foreign key constraint violation")
)

// driverFailure recognises a driver error by message. Postgres and SQLite word
// the same failure differently, so each entry lists every known fragment.
type driverFailure struct {
	fragments []string
	build     func(entity, details string) *ApiErr
}

var driverFailures = []driverFailure{
	{
		fragments: []string{"duplicate key", "unique constraint"},
		build: func(entity, details string) *ApiErr {
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s %w: %w", entity, ErrAlreadyExists, ErrConflict),
				Details:    details,
			}
		},
	},
	{
		fragments: []string{"foreign key constraint", "violates foreign key"},
		build: func(entity, _ string) *ApiErr {
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s: %w", entity, ErrForeignKeyConstraint),
				Details:    "the referenced record does not exist",
			}
		},
	},
	{
		fragments: []string{"connection", "database is closed"},
		build: func(_, _ string) *ApiErr {
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "database unavailable",
			}
		},
	},
}

// NewDatabaseError wraps a gorm or driver error from operation on entity with a fitting status
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if errors.Is(cause, gorm.ErrRecordNotFound) {
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s %w", entity, ErrNotFound),
			Details:    details,
			Cause:      cause,
		}
	}

	if cause != nil {
		message := strings.ToLower(cause.Error())
		for _, failure := range driverFailures {
			for _, fragment := range failure.fragments {
				if strings.Contains(message, fragment) {
					err := failure.build(entity, details)
					err.Cause = cause
					return err
				}
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}
