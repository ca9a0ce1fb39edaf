/*
Package vacation implements the organizational vacation workflow on top of
the coverage engine: organizations, rosters, request registration and the
approval lifecycle, holiday calendars, and per-employee allowance accounting.

The coverage engine only ever sees validated snapshots; this package owns the
validation at the storage boundary so the engine's pure functions can assume
well-formed, non-null fields.
*/
package vacation

import (
	"fmt"
	"time"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
)

// =============================================================================
// ORGANIZATION - Multi-tenant boundary
// =============================================================================

// Organization is one tenant. Every employee, request and allowance belongs
// to exactly one organization; nothing crosses the boundary.
type Organization struct {
	ID        coverage.OrganizationID `json:"id"`
	Name      string                  `json:"name"`
	CreatedAt time.Time               `json:"createdAt"`
}

// =============================================================================
// EMPLOYEE - Roster entry with its tenant
// =============================================================================

// Employee binds a roster snapshot entry to its organization. The embedded
// coverage.Employee is what the engine consumes.
type Employee struct {
	coverage.Employee
	OrganizationID coverage.OrganizationID `json:"organizationId"`
}

// =============================================================================
// HOLIDAY - Immutable reference data
// =============================================================================

type HolidayScope string

const (
	ScopeNational HolidayScope = "national"
	ScopeRegional HolidayScope = "regional"
)

// Holiday is one public holiday. Regional holidays carry the region they
// apply to; national ones leave it empty.
type Holiday struct {
	Date   coverage.Date `json:"date"`
	Name   string        `json:"name"`
	Scope  HolidayScope  `json:"scope"`
	Region string        `json:"region,omitempty"`
}

// =============================================================================
// STORAGE-BOUNDARY VALIDATION
// =============================================================================

// ValidateEmployee checks a roster entry before it enters storage. The
// engine relies on these guarantees downstream.
func ValidateEmployee(e Employee) error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing employee id", ErrInvalidInput)
	}
	if e.OrganizationID == "" {
		return fmt.Errorf("%w: missing organization id", ErrInvalidInput)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: missing employee name", ErrInvalidInput)
	}
	switch e.Role {
	case coverage.RoleAdmin, coverage.RoleEmployee, coverage.RoleTenantAdmin:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, e.Role)
	}
	switch e.Availability {
	case coverage.AvailabilityAvailable, coverage.AvailabilityLimited, coverage.AvailabilityUnavailable:
	default:
		return fmt.Errorf("%w: unknown availability %q", ErrInvalidInput, e.Availability)
	}
	if e.CurrentWorkload < 0 || e.CurrentWorkload > 100 {
		return fmt.Errorf("%w: workload %d outside [0,100]", ErrInvalidInput, e.CurrentWorkload)
	}
	return nil
}

// ValidateRequest checks a vacation request before it enters storage.
func ValidateRequest(r coverage.VacationRequest) error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing request id", ErrInvalidInput)
	}
	if r.EmployeeID == "" || r.OrganizationID == "" {
		return fmt.Errorf("%w: request must name employee and organization", ErrInvalidInput)
	}
	if r.Range.Start.IsZero() || r.Range.End.IsZero() {
		return fmt.Errorf("%w: missing request dates", ErrInvalidInput)
	}
	if !r.Range.IsValid() {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidInput, r.Range.End, r.Range.Start)
	}
	switch r.Status {
	case coverage.StatusPending, coverage.StatusApproved, coverage.StatusRejected:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, r.Status)
	}
	return nil
}

// ValidateHoliday checks a holiday record before it enters storage.
func ValidateHoliday(h Holiday) error {
	if h.Date.IsZero() {
		return fmt.Errorf("%w: missing holiday date", ErrInvalidInput)
	}
	switch h.Scope {
	case ScopeNational:
	case ScopeRegional:
		if h.Region == "" {
			return fmt.Errorf("%w: regional holiday needs a region", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown holiday scope %q", ErrInvalidInput, h.Scope)
	}
	return nil
}
