package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// addressValidator backs IsValidEmail with the same "email" rule gin binding
// applies to request bodies.
var addressValidator = validator.New()

// IsValidEmail reports whether s is a well-formed address
func IsValidEmail(s string) bool {
	return addressValidator.Var(s, "required,email") == nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []ValidationError {
	var errs []ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs = append(errs, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return errs
}
