package usecase

import "github.com/rfagner/filmes-api/pkg/utils"

// ValidationError carries the violated rules per field. Handlers turn it
// into a 400 response with the Fields map as the machine-readable body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// patchError wraps a failed patch operation as a validation failure so
// the whole request is rejected before any row is written.
func patchError(err error) *ValidationError {
	return &ValidationError{Fields: map[string]string{"patch": err.Error()}}
}
