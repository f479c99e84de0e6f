package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the usecase layer. Handlers map these to HTTP statuses;
// anything unmarked surfaces as an internal error.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidState     = errors.New("operation not allowed in current state")
	ErrValidation       = errors.New("validation failed")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// QuotaExceededError carries the configured limit so the boundary can render
// "x of y used" instead of a generic failure.
type QuotaExceededError struct {
	Resource string
	Limit    int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for %s (limit %d)", e.Resource, e.Limit)
}

func NewQuotaExceeded(resource string, limit int) error {
	return &QuotaExceededError{Resource: resource, Limit: limit}
}

func AsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
