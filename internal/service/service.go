package service

import (
	"errors"

	internal_errors "github.com/goboards-dev/goboards/internal/errors"
	"github.com/goboards-dev/goboards/internal/validation"
)

// collectFieldErrors merges validator results into a single
// ValidationError so the caller sees every failing field at once.
func collectFieldErrors(errs ...error) error {
	fields := make(map[string]string)
	for _, err := range errs {
		if err == nil {
			continue
		}
		var fe *validation.FieldError
		if errors.As(err, &fe) {
			fields[fe.Field] = fe.Message
			continue
		}
		return err
	}
	if len(fields) > 0 {
		return &internal_errors.ValidationError{Fields: fields}
	}
	return nil
}
