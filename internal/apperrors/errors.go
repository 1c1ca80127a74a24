// Package apperrors defines the error taxonomy shared by every store
// component. Callers branch on these with errors.Is / errors.As; the
// concrete SQL error stays wrapped underneath for logging.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed caller input. Not retryable as-is.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to an identity that does not exist.
	ErrNotFound = errors.New("not found")

	// Uniqueness violations. The caller may retry with different input.
	ErrDuplicateBarcode = errors.New("duplicate barcode")
	ErrDuplicateEmail   = errors.New("duplicate email")
	ErrDuplicatePin     = errors.New("duplicate pin")

	// ErrStoreUnavailable marks an underlying persistence failure. Fatal to
	// the current operation, never retried automatically.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// InsufficientStockError aborts a checkout: one cart line asked for more
// units than the product has. The whole transaction is rolled back.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Validation wraps ErrValidation with a caller-facing reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Store wraps an unexpected driver error so it matches ErrStoreUnavailable
// while keeping the original error in the chain.
func Store(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
