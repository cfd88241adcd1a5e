package service

import (
	"fmt"

	"go-resto-ops/pkg/validator"
)

// ValidationError carries the field-level detail that handlers serialize
// into 400 responses.
type ValidationError struct {
	Fields []*validator.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	first := e.Fields[0]
	return fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

func validateRequest(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
