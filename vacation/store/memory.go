// Package store provides in-memory implementations of the vacation storage
// interfaces, used for testing and development.
package store

import (
	"context"
	"sync"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation"
)

// =============================================================================
// MEMORY STORE - Implements every vacation.*Store interface
// =============================================================================

type Memory struct {
	mu            sync.RWMutex
	organizations map[coverage.OrganizationID]vacation.Organization
	employees     map[coverage.EmployeeID]vacation.Employee
	rosterOrder   map[coverage.OrganizationID][]coverage.EmployeeID
	requests      map[coverage.RequestID]coverage.VacationRequest
	requestOrder  []coverage.RequestID
	holidays      []vacation.Holiday
	allowances    map[allowanceKey]vacation.Allowance
}

type allowanceKey struct {
	EmployeeID coverage.EmployeeID
	Year       int
}

func NewMemory() *Memory {
	return &Memory{
		organizations: make(map[coverage.OrganizationID]vacation.Organization),
		employees:     make(map[coverage.EmployeeID]vacation.Employee),
		rosterOrder:   make(map[coverage.OrganizationID][]coverage.EmployeeID),
		requests:      make(map[coverage.RequestID]coverage.VacationRequest),
		allowances:    make(map[allowanceKey]vacation.Allowance),
	}
}

// Compile-time interface checks.
var (
	_ vacation.OrganizationStore = (*Memory)(nil)
	_ vacation.EmployeeStore     = (*Memory)(nil)
	_ vacation.RequestStore      = (*Memory)(nil)
	_ vacation.HolidayStore      = (*Memory)(nil)
	_ vacation.AllowanceStore    = (*Memory)(nil)
)

// =============================================================================
// ORGANIZATIONS
// =============================================================================

func (m *Memory) CreateOrganization(_ context.Context, org vacation.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.organizations[org.ID] = org
	return nil
}

func (m *Memory) OrganizationByID(_ context.Context, id coverage.OrganizationID) (*vacation.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	org, ok := m.organizations[id]
	if !ok {
		return nil, coverage.ErrOrganizationNotFound
	}
	return &org, nil
}

func (m *Memory) ListOrganizations(_ context.Context) ([]vacation.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]vacation.Organization, 0, len(m.organizations))
	for _, org := range m.organizations {
		out = append(out, org)
	}
	return out, nil
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (m *Memory) CreateEmployee(_ context.Context, e vacation.Employee) error {
	if err := vacation.ValidateEmployee(e); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.organizations[e.OrganizationID]; !ok {
		return coverage.ErrOrganizationNotFound
	}
	if _, ok := m.employees[e.ID]; !ok {
		m.rosterOrder[e.OrganizationID] = append(m.rosterOrder[e.OrganizationID], e.ID)
	}
	m.employees[e.ID] = e
	return nil
}

func (m *Memory) EmployeeByID(_ context.Context, id coverage.EmployeeID) (*vacation.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.employees[id]
	if !ok {
		return nil, vacation.ErrEmployeeNotFound
	}
	return &e, nil
}

func (m *Memory) RosterByOrganization(_ context.Context, orgID coverage.OrganizationID) ([]coverage.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.organizations[orgID]; !ok {
		return nil, coverage.ErrOrganizationNotFound
	}
	roster := make([]coverage.Employee, 0, len(m.rosterOrder[orgID]))
	for _, id := range m.rosterOrder[orgID] {
		roster = append(roster, m.employees[id].Employee)
	}
	return roster, nil
}

// =============================================================================
// REQUESTS
// =============================================================================

func (m *Memory) CreateRequest(_ context.Context, r coverage.VacationRequest) error {
	if err := vacation.ValidateRequest(r); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.requests[r.ID]; !ok {
		m.requestOrder = append(m.requestOrder, r.ID)
	}
	m.requests[r.ID] = r
	return nil
}

func (m *Memory) RequestByID(_ context.Context, id coverage.RequestID) (*coverage.VacationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.requests[id]
	if !ok {
		return nil, coverage.ErrRequestNotFound
	}
	return &r, nil
}

func (m *Memory) UpdateRequestStatus(_ context.Context, id coverage.RequestID, status coverage.RequestStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok {
		return coverage.ErrRequestNotFound
	}
	r.Status = status
	m.requests[id] = r
	return nil
}

func (m *Memory) DeleteRequest(_ context.Context, id coverage.RequestID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.requests[id]; !ok {
		return coverage.ErrRequestNotFound
	}
	delete(m.requests, id)
	for i, rid := range m.requestOrder {
		if rid == id {
			m.requestOrder = append(m.requestOrder[:i], m.requestOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) RequestsInRange(_ context.Context, orgID coverage.OrganizationID, r coverage.DateRange) ([]coverage.VacationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []coverage.VacationRequest
	for _, id := range m.requestOrder {
		req := m.requests[id]
		if req.OrganizationID == orgID && req.Range.Overlaps(r) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *Memory) RequestsByEmployee(_ context.Context, id coverage.EmployeeID) ([]coverage.VacationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []coverage.VacationRequest
	for _, rid := range m.requestOrder {
		req := m.requests[rid]
		if req.EmployeeID == id {
			out = append(out, req)
		}
	}
	return out, nil
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (m *Memory) AddHoliday(_ context.Context, h vacation.Holiday) error {
	if err := vacation.ValidateHoliday(h); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holidays = append(m.holidays, h)
	return nil
}

func (m *Memory) ListHolidays(_ context.Context) ([]vacation.Holiday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]vacation.Holiday, len(m.holidays))
	copy(out, m.holidays)
	return out, nil
}

func (m *Memory) HolidayDatesInRange(_ context.Context, r coverage.DateRange) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var dates []string
	for _, h := range m.holidays {
		if r.Contains(h.Date) {
			dates = append(dates, h.Date.String())
		}
	}
	return dates, nil
}

// =============================================================================
// ALLOWANCES
// =============================================================================

func (m *Memory) SetAllowance(_ context.Context, a vacation.Allowance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allowances[allowanceKey{a.EmployeeID, a.Year}] = a
	return nil
}

func (m *Memory) AllowanceFor(_ context.Context, id coverage.EmployeeID, year int) (*vacation.Allowance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.allowances[allowanceKey{id, year}]
	if !ok {
		return nil, vacation.ErrAllowanceNotFound
	}
	return &a, nil
}
