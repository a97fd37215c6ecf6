package model

import "errors"

// ---------------------------------------------------------------------------
// Error taxonomy
//
// Three families cover every business failure: validation (bad input shape
// or range, rejected before any write), not-found (referenced entity absent)
// and conflict (rejected because of current state, not input shape). Callers
// match with errors.Is against the sentinels below, or classify a wrapped
// error with IsValidation / IsNotFound / IsConflict.
// ---------------------------------------------------------------------------

// ValidationError marks input that fails shape or range checks.
type ValidationError struct {
	reason string
}

func (e *ValidationError) Error() string { return e.reason }

// NotFoundError marks a reference to an absent entity.
type NotFoundError struct {
	entity string
}

func (e *NotFoundError) Error() string { return e.entity + " not found" }

// ConflictError marks an operation rejected by the current state.
type ConflictError struct {
	reason string
}

func (e *ConflictError) Error() string { return e.reason }

var (
	ErrInvalidInstallments     = &ValidationError{reason: "installments count must be greater than zero"}
	ErrNothingFinanced         = &ValidationError{reason: "financed amount must be greater than zero"}
	ErrInstallmentTooSmall     = &ValidationError{reason: "financed amount is too small for the installments count"}
	ErrDownPaymentExceedsTotal = &ValidationError{reason: "down payment cannot exceed total amount"}
	ErrInvalidAmount           = &ValidationError{reason: "payment amount must be greater than zero"}
	ErrNegativeAmount          = &ValidationError{reason: "amount cannot be negative"}

	ErrCustomerNotFound = &NotFoundError{entity: "customer"}
	ErrSaleNotFound     = &NotFoundError{entity: "sale"}
	ErrNoteNotFound     = &NotFoundError{entity: "promissory note"}

	ErrAlreadySettled = &ConflictError{reason: "promissory note is already settled"}
	ErrOverpayment    = &ConflictError{reason: "payment exceeds the outstanding balance"}
	ErrSaleLocked     = &ConflictError{reason: "sale has received payments and its schedule is locked"}
)

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is, or wraps, a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
