/*
store.go - Storage interfaces for the vacation workflow

PURPOSE:
  Narrow, per-concern interfaces between the workflow and persistence.
  The sqlite store implements all of them; the in-memory store (store/)
  does the same for tests and dev.

  The read methods deliberately line up with the coverage engine's
  snapshot interfaces (coverage.RosterStore, coverage.RequestStore,
  coverage.HolidayStore), so one implementation serves both layers.

SEE ALSO:
  - store/memory.go: In-memory implementation
  - ../store/sqlite: SQLite implementation
*/
package vacation

import (
	"context"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
)

// OrganizationStore persists tenants.
type OrganizationStore interface {
	CreateOrganization(ctx context.Context, org Organization) error

	// OrganizationByID returns coverage.ErrOrganizationNotFound when absent.
	OrganizationByID(ctx context.Context, id coverage.OrganizationID) (*Organization, error)

	ListOrganizations(ctx context.Context) ([]Organization, error)
}

// EmployeeStore persists roster entries. Its RosterByOrganization method
// satisfies coverage.RosterStore.
type EmployeeStore interface {
	coverage.RosterStore

	CreateEmployee(ctx context.Context, e Employee) error

	// EmployeeByID returns ErrEmployeeNotFound when absent.
	EmployeeByID(ctx context.Context, id coverage.EmployeeID) (*Employee, error)
}

// RequestStore persists vacation requests. Its read methods satisfy
// coverage.RequestStore.
type RequestStore interface {
	coverage.RequestStore

	CreateRequest(ctx context.Context, r coverage.VacationRequest) error

	// UpdateRequestStatus transitions a request; it does not enforce the
	// pending-only rule, the RequestService does.
	UpdateRequestStatus(ctx context.Context, id coverage.RequestID, status coverage.RequestStatus) error

	// DeleteRequest removes a request (used for cancellation of pending
	// requests). Returns coverage.ErrRequestNotFound when absent.
	DeleteRequest(ctx context.Context, id coverage.RequestID) error

	// RequestsByEmployee returns every request of one employee, any status.
	RequestsByEmployee(ctx context.Context, id coverage.EmployeeID) ([]coverage.VacationRequest, error)
}

// HolidayStore persists the holiday calendar. HolidayDatesInRange satisfies
// coverage.HolidayStore.
type HolidayStore interface {
	coverage.HolidayStore

	AddHoliday(ctx context.Context, h Holiday) error
	ListHolidays(ctx context.Context) ([]Holiday, error)
}

// AllowanceStore persists per-employee annual entitlements.
type AllowanceStore interface {
	SetAllowance(ctx context.Context, a Allowance) error

	// AllowanceFor returns ErrAllowanceNotFound when no record exists.
	AllowanceFor(ctx context.Context, id coverage.EmployeeID, year int) (*Allowance, error)
}
