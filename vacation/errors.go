package vacation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when a record fails storage-boundary
	// validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmployeeNotFound is returned when a referenced employee is missing.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrAllowanceNotFound is returned when no allowance record exists for
	// an employee/year; callers fall back to the default entitlement.
	ErrAllowanceNotFound = errors.New("allowance not found")

	// ErrDuplicateRequest is returned when an employee already has a
	// pending or approved request overlapping the new range. Same-employee
	// overlaps are rejected here, never flagged as conflicts.
	ErrDuplicateRequest = errors.New("overlapping request for same employee")

	// ErrInvalidTransition is returned on approve/reject/cancel of a
	// request that is not pending.
	ErrInvalidTransition = errors.New("request is not pending")

	// ErrNoWorkingDays is returned when the requested range contains no
	// chargeable working days (all weekend/holiday).
	ErrNoWorkingDays = errors.New("request contains no working days")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// InsufficientAllowanceError reports an allowance overdraw.
type InsufficientAllowanceError struct {
	EmployeeID coverage.EmployeeID
	Year       int
	Remaining  decimal.Decimal
	Requested  decimal.Decimal
}

func (e *InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("insufficient allowance for %s in %d: %s days remaining, %s requested",
		e.EmployeeID, e.Year, e.Remaining, e.Requested)
}

// ErrInsufficientAllowance is the sentinel the structured error unwraps to.
var ErrInsufficientAllowance = errors.New("insufficient vacation allowance")

func (e *InsufficientAllowanceError) Unwrap() error { return ErrInsufficientAllowance }

// IsClientError returns true for errors caused by invalid caller input
// rather than system failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDuplicateRequest) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrNoWorkingDays) ||
		errors.Is(err, ErrInsufficientAllowance)
}

// IsNotFound returns true if the error indicates a missing record in this
// package or the engine.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) || coverage.IsNotFound(err)
}
