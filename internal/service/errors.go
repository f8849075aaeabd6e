package service

import (
	"errors"
	"fmt"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
)

var (
	// ErrInvalidInput marks payloads rejected before any request went out.
	ErrInvalidInput = errors.New("invalid input")
)

// Error wraps a transport failure with the operation that caused it. The
// underlying *api.Error stays reachable through errors.As for status and
// retryability checks.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// Status returns the HTTP status carried by err, or 0 for transport-level
// failures and non-API errors.
func Status(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsRetryable reports whether the failure is worth retrying at a higher
// level (network failures and 5xx responses).
func IsRetryable(err error) bool {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return false
}
