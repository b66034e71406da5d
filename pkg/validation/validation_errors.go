package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HasTag reports whether err carries a validation failure with the given tag.
func HasTag(err error, tag string) bool {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return false
	}
	for _, fe := range ve {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}

// FailedFields returns the struct field names that failed validation, in order.
func FailedFields(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return fields
}

// IsValidationError distinguishes validator failures from malformed JSON.
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}
