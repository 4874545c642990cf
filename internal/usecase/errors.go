package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrRecordNotFound is the storage-level absence indication. Repository
// implementations return it (possibly wrapped) when a lookup matches no row.
// Usecase methods translate it into a NotFoundError for the resource they
// were asked about; it never crosses the server boundary on its own.
var ErrRecordNotFound = errors.New("record not found")

// NotFoundError reports that no record exists for the requested id.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ForbiddenError reports that the caller does not own the record it tried
// to modify or delete.
type ForbiddenError struct {
	Resource string
	ID       uuid.UUID
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("not allowed to modify %s %s", e.Resource, e.ID)
}

// ValidationError wraps an input validation failure, usually a
// validator.ValidationErrors from the request boundary.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

func IsForbidden(err error) bool {
	var t *ForbiddenError
	return errors.As(err, &t)
}

func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}
