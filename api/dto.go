/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Organization:
    OrganizationDTO, CreateOrganizationRequest

  Employee:
    EmployeeDTO, CreateEmployeeRequest

  Request:
    SubmitRequestDTO, RequestDTO, ApprovalResponse, ConflictCheckResponse

  Allowance:
    AllowanceDTO, SetAllowanceRequest

  Holiday:
    HolidayDTO, CreateHolidayRequest, DefaultHolidaysRequest

  Scenarios:
    ScenarioDTO, LoadScenarioRequest

DATES:
  All dates cross the wire as YYYY-MM-DD strings. Handlers parse and
  re-format them; DTOs never carry time.Time.

VALIDATION:
  Validation is done in handlers and the domain layer, not in DTOs.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - coverage/types.go: Engine output types (serialized as-is)
*/
package api

import (
	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation"
)

// =============================================================================
// ORGANIZATION TYPES
// =============================================================================

// OrganizationDTO represents a tenant in API responses.
type OrganizationDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateOrganizationRequest is the request to create an organization.
type CreateOrganizationRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// =============================================================================
// EMPLOYEE TYPES
// =============================================================================

// EmployeeDTO represents a roster entry in API responses.
type EmployeeDTO struct {
	ID              string   `json:"id"`
	OrganizationID  string   `json:"organizationId"`
	Name            string   `json:"name"`
	Department      string   `json:"department"`
	Role            string   `json:"role"`
	Skills          []string `json:"skills"`
	CurrentWorkload int      `json:"currentWorkload"`
	Availability    string   `json:"availabilityForCoverage"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	ID              string   `json:"id"`
	OrganizationID  string   `json:"organizationId"`
	Name            string   `json:"name"`
	Department      string   `json:"department"`
	Role            string   `json:"role"`
	Skills          []string `json:"skills"`
	CurrentWorkload int      `json:"currentWorkload"`
	Availability    string   `json:"availabilityForCoverage"`
}

func toEmployeeDTO(e vacation.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:              string(e.ID),
		OrganizationID:  string(e.OrganizationID),
		Name:            e.Name,
		Department:      e.Department,
		Role:            string(e.Role),
		Skills:          e.Skills,
		CurrentWorkload: e.CurrentWorkload,
		Availability:    string(e.Availability),
	}
}

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SubmitRequestDTO is the request body to submit a vacation request.
type SubmitRequestDTO struct {
	EmployeeID     string   `json:"employeeId"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	CoverageSkills []string `json:"coverageSkills,omitempty"`
	Priority       string   `json:"priority,omitempty"`
}

// RequestDTO represents a vacation request in API responses.
type RequestDTO struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employeeId"`
	OrganizationID string   `json:"organizationId"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Status         string   `json:"status"`
	CoverageSkills []string `json:"coverageSkills,omitempty"`
	Priority       string   `json:"priority,omitempty"`
}

func toRequestDTO(r coverage.VacationRequest) RequestDTO {
	return RequestDTO{
		ID:             string(r.ID),
		EmployeeID:     string(r.EmployeeID),
		OrganizationID: string(r.OrganizationID),
		StartDate:      r.Range.Start.String(),
		EndDate:        r.Range.End.String(),
		Status:         string(r.Status),
		CoverageSkills: r.CoverageSkills,
		Priority:       r.Priority,
	}
}

// ApprovalResponse reports a status transition together with the conflict
// analysis run at approval time.
type ApprovalResponse struct {
	Status    string                     `json:"status"`
	Conflicts *coverage.ConflictAnalysis `json:"conflicts,omitempty"`
}

// ConflictCheckResponse wraps an on-demand conflict analysis. Analysis is
// omitted when the request has no conflicts at all.
type ConflictCheckResponse struct {
	HasConflicts bool                       `json:"hasConflicts"`
	Analysis     *coverage.ConflictAnalysis `json:"analysis,omitempty"`
}

// =============================================================================
// ALLOWANCE TYPES
// =============================================================================

// AllowanceDTO is the computed allowance balance for one employee/year.
// Day values are decimal strings ("27.5") so half-day entitlements survive
// the wire exactly.
type AllowanceDTO struct {
	EmployeeID    string `json:"employeeId"`
	Year          int    `json:"year"`
	EntitledDays  string `json:"entitledDays"`
	UsedDays      string `json:"usedDays"`
	PendingDays   string `json:"pendingDays"`
	RemainingDays string `json:"remainingDays"`
}

func toAllowanceDTO(s vacation.AllowanceSummary) AllowanceDTO {
	return AllowanceDTO{
		EmployeeID:    string(s.EmployeeID),
		Year:          s.Year,
		EntitledDays:  s.EntitledDays.String(),
		UsedDays:      s.UsedDays.String(),
		PendingDays:   s.PendingDays.String(),
		RemainingDays: s.RemainingDays.String(),
	}
}

// SetAllowanceRequest sets an employee's entitlement for one year.
type SetAllowanceRequest struct {
	Year         int    `json:"year"`
	EntitledDays string `json:"entitledDays"`
}

// =============================================================================
// HOLIDAY TYPES
// =============================================================================

// HolidayDTO represents a public holiday in API responses.
type HolidayDTO struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Scope  string `json:"scope"`
	Region string `json:"region,omitempty"`
}

// CreateHolidayRequest is the request to register a holiday.
type CreateHolidayRequest struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Scope  string `json:"scope"`
	Region string `json:"region,omitempty"`
}

// DefaultHolidaysRequest loads the built-in national holidays for a year.
type DefaultHolidaysRequest struct {
	Year int `json:"year"`
}

// LoadCalendarRequest imports a JSON holiday calendar, filtered to one
// region (national holidays always apply).
type LoadCalendarRequest struct {
	Calendar string `json:"calendar"`
	Region   string `json:"region,omitempty"`
}

func toHolidayDTO(h vacation.Holiday) HolidayDTO {
	return HolidayDTO{
		Date:   h.Date.String(),
		Name:   h.Name,
		Scope:  string(h.Scope),
		Region: h.Region,
	}
}

// =============================================================================
// SCENARIO TYPES
// =============================================================================

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
