package domain

import "fmt"

// Error types for consistent error handling across the BFF.

// ErrNotFound indicates a resource was not found upstream.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrExternalService indicates a failure calling the Rentify backend.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error {
	return e.Err
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}

// ErrCircuitOpen indicates the upstream circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}

// ErrValidation indicates a validation error (bad input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrConflict indicates a business-rule conflict upstream, e.g. deleting an
// entity still referenced by an active lease.
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// ErrUnauthorized indicates invalid credentials or token.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ErrSelectionLimit indicates the receipt selection is already at capacity.
type ErrSelectionLimit struct {
	Limit int
}

func (e *ErrSelectionLimit) Error() string {
	return fmt.Sprintf("Máximo de %d recibos por página.", e.Limit)
}

// ErrNotPrintable indicates a receipt was requested for a row that is not
// settled (only PAID rows have receipts).
type ErrNotPrintable struct {
	PaymentID int64
}

func (e *ErrNotPrintable) Error() string {
	return fmt.Sprintf("payment %d is not settled, no receipt available", e.PaymentID)
}
