package validation

import (
	"errors"
	"strings"
)

// FieldError is a single (field, message) failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the result of a validation pass. A nil or empty Errors means the
// input is valid; a non-empty one is returned by the services as an error.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *Errors) add(field, msg string) {
	if msg != "" {
		*e = append(*e, FieldError{Field: field, Message: msg})
	}
}

// Has reports whether field has at least one failure.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Err returns e as an error, or nil when there are no failures.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Single builds a one-entry Errors, used for uniqueness failures.
func Single(field, msg string) Errors {
	return Errors{{Field: field, Message: msg}}
}

// As extracts field errors from err, if any.
func As(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
