// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers:
//
//   - notblank: the string must contain at least one non-whitespace character.
//
// The package is initialized on import and safe for concurrent use.
package validator

import (
	"errors"
	"fmt"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'MerkleRoot': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
}

// notBlank rejects strings made only of whitespace. Non-string fields pass.
func notBlank(fl gvalidator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return true
	}

	return strings.TrimSpace(s) != ""
}

// formatError transforms a raw validator error into a multi-error chain rooted
// at ErrValidationFailed with one message per failing field. Other errors are
// returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
//
//	if err := validator.Validate(req); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the request
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
