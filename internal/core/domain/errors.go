package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQuery         = errors.New("query is empty")
	ErrQueryTooLong       = errors.New("query exceeds maximum length")
	ErrQuotaExhausted     = errors.New("free query quota exhausted")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidInput       = errors.New("invalid input")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
