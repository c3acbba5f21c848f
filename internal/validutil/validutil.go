// Package validutil adapts ozzo-validation results to the errors package.
package validutil

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors is a validation.Errors whose per-field causes are reachable
// with errors.Is and errors.As. Its message is the one ozzo produces.
type FieldErrors struct {
	validation.Errors
}

// Unwrap returns the field errors ordered by field name.
func (e FieldErrors) Unwrap() []error {
	names := make([]string, 0, len(e.Errors))
	for name := range e.Errors {
		names = append(names, name)
	}
	sort.Strings(names)

	errs := make([]error, 0, len(names))
	for _, name := range names {
		errs = append(errs, e.Errors[name])
	}
	return errs
}

// ValidateStruct runs validation.ValidateStruct and wraps field failures
// in FieldErrors. Internal validator errors are returned unchanged.
func ValidateStruct(structPtr any, fields ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structPtr, fields...)
	if errs, ok := err.(validation.Errors); ok {
		return FieldErrors{errs}
	}
	return err
}
