/*
errors.go - Centralized error types for the coverage engine

PURPOSE:
  All engine error types in one place. Callers distinguish three terminal
  states: a produced result, a lookup failure (not-found sentinels), and a
  degenerate input (empty roster). "No conflict" is NOT an error - the
  analyzer models it as a nil ConflictAnalysis with a nil error.

USAGE:
  analysis, err := analyzer.AnalyzeRequestConflicts(ctx, id)
  switch {
  case coverage.IsNotFound(err):
      // 404 territory
  case err != nil:
      // 500 territory
  case analysis == nil:
      // legitimate no-conflict state
  }

SEE ALSO:
  - analyzer.go: Produces these errors
*/
package coverage

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrRequestNotFound is returned when the target vacation request does
	// not exist.
	ErrRequestNotFound = errors.New("vacation request not found")

	// ErrOrganizationNotFound is returned when the queried organization does
	// not exist.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrEmptyRoster is returned when a coverage computation would divide by
	// the roster size of a zero-employee organization. The engine rejects
	// this explicitly instead of defining a 0%/100% convention.
	ErrEmptyRoster = errors.New("organization has no employees")

	// ErrInvalidRange is returned when a queried range ends before it starts.
	ErrInvalidRange = errors.New("invalid range: end before start")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// EmptyRosterError carries the organization whose roster was empty.
type EmptyRosterError struct {
	OrganizationID OrganizationID
}

func (e *EmptyRosterError) Error() string {
	return fmt.Sprintf("organization %s has no employees; coverage is undefined", e.OrganizationID)
}

func (e *EmptyRosterError) Unwrap() error { return ErrEmptyRoster }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrOrganizationNotFound)
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyRoster) ||
		errors.Is(err, ErrInvalidRange)
}
