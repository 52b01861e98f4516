package errs

import (
	"fmt"
	"net/http"
)

// NewProjectNotFound is returned by every project operation addressing a missing id
func NewProjectNotFound(id uint) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("Project with ID %d %w", id, ErrNotFound),
	}
}

func NewLanguageNotFound(code string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("Language with code %s %w", code, ErrNotFound),
	}
}

// NewUnknownLanguageError flags a languageId in a request body that has no language row
func NewUnknownLanguageError(languageID uint) *ApiErr {
	return NewInvalidFieldError("languageId", fmt.Sprintf("%d does not match any language", languageID))
}
