/*
handlers.go - HTTP API handlers for the vacation planner

PURPOSE:
  Exposes the vacation workflow and the coverage engine via REST API.
  Handles HTTP request/response, JSON serialization, and delegates to
  domain logic.

ENDPOINTS:
  Organizations:
    GET    /api/organizations                        List organizations
    POST   /api/organizations                        Create organization
    GET    /api/organizations/{id}                   Get organization
    GET    /api/organizations/{id}/employees         List roster
    POST   /api/organizations/{id}/employees         Create employee in org
    GET    /api/organizations/{id}/requests          Requests in a date window
    POST   /api/organizations/{id}/requests          Submit request in org
    GET    /api/organizations/{id}/coverage          Team coverage analysis
    GET    /api/organizations/{id}/coverage/suggestions  Ranked coverage candidates

  Employees:
    POST   /api/employees                            Create employee
    GET    /api/employees/{id}                       Get employee
    GET    /api/employees/{id}/requests              Request history
    GET    /api/employees/{id}/allowance             Allowance balance
    PUT    /api/employees/{id}/allowance             Set annual entitlement

  Requests:
    POST   /api/requests                             Submit request
    GET    /api/requests/{id}                        Get request
    POST   /api/requests/{id}/approve                Approve (returns conflicts)
    POST   /api/requests/{id}/reject                 Reject
    DELETE /api/requests/{id}                        Cancel pending request
    GET    /api/requests/{id}/conflicts              On-demand conflict analysis

  Holidays:
    GET    /api/holidays                             List holidays
    POST   /api/holidays                             Register holiday
    POST   /api/holidays/defaults                    Load built-in national set
    POST   /api/holidays/calendar                    Import JSON calendar

  Scenarios:
    GET    /api/scenarios                            List demo scenarios
    POST   /api/scenarios/load                       Load a demo scenario

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, invalid date range
  - 404: Organization, employee, or request not found
  - 409: Overlapping request, non-pending transition, insufficient allowance
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
	"github.com/CychoGit/Urlaubsplaner-sub000/factory"
	"github.com/CychoGit/Urlaubsplaner-sub000/metrics"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Store combines every persistence interface the API needs. Both the sqlite
// store and the in-memory store satisfy it.
type Store interface {
	vacation.OrganizationStore
	vacation.EmployeeStore
	vacation.RequestStore
	vacation.HolidayStore
	vacation.AllowanceStore
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    Store
	Service  *vacation.RequestService
	Analyzer *coverage.Analyzer

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler wires the workflow service and the coverage engine onto one
// store.
func NewHandler(store Store) *Handler {
	analyzer := &coverage.Analyzer{
		Roster:   store,
		Requests: store,
		Holidays: store,
	}
	service := &vacation.RequestService{
		Organizations: store,
		Employees:     store,
		Requests:      store,
		Holidays:      store,
		Allowances:    store,
		Analyzer:      analyzer,
	}
	return &Handler{
		Store:    store,
		Service:  service,
		Analyzer: analyzer,
	}
}

// =============================================================================
// ORGANIZATION HANDLERS
// =============================================================================

// ListOrganizations returns all organizations.
func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Store.ListOrganizations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list organizations", err)
		return
	}

	dtos := make([]OrganizationDTO, len(orgs))
	for i, org := range orgs {
		dtos[i] = OrganizationDTO{ID: string(org.ID), Name: org.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateOrganization creates a new organization.
func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "id and name are required", nil)
		return
	}

	org := vacation.Organization{ID: coverage.OrganizationID(req.ID), Name: req.Name}
	if err := h.Store.CreateOrganization(r.Context(), org); err != nil {
		writeDomainError(w, "Failed to create organization", err)
		return
	}
	writeJSON(w, http.StatusCreated, OrganizationDTO{ID: req.ID, Name: req.Name})
}

// GetOrganization returns a single organization.
func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id := coverage.OrganizationID(chi.URLParam(r, "id"))

	org, err := h.Store.OrganizationByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get organization", err)
		return
	}
	writeJSON(w, http.StatusOK, OrganizationDTO{ID: string(org.ID), Name: org.Name})
}

// ListRoster returns all employees of an organization.
func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	id := coverage.OrganizationID(chi.URLParam(r, "id"))

	roster, err := h.Store.RosterByOrganization(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to list roster", err)
		return
	}

	dtos := make([]EmployeeDTO, len(roster))
	for i, e := range roster {
		dtos[i] = toEmployeeDTO(vacation.Employee{Employee: e, OrganizationID: id})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateOrgEmployee creates an employee inside an organization. The path
// organization wins over any organizationId in the body.
// POST /api/organizations/{id}/employees
func (h *Handler) CreateOrgEmployee(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")

	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	req.OrganizationID = orgID
	h.createEmployee(w, r, req)
}

// ListOrgRequests returns the organization's requests touching a date window.
// GET /api/organizations/{id}/requests?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) ListOrgRequests(w http.ResponseWriter, r *http.Request) {
	id := coverage.OrganizationID(chi.URLParam(r, "id"))

	if _, err := h.Store.OrganizationByID(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to get organization", err)
		return
	}
	window, ok := queryRange(w, r)
	if !ok {
		return
	}

	requests, err := h.Store.RequestsInRange(r.Context(), id, window)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list requests", err)
		return
	}
	dtos := make([]RequestDTO, len(requests))
	for i, req := range requests {
		dtos[i] = toRequestDTO(req)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SubmitOrgRequest submits a request for an employee of this organization.
// POST /api/organizations/{id}/requests
func (h *Handler) SubmitOrgRequest(w http.ResponseWriter, r *http.Request) {
	id := coverage.OrganizationID(chi.URLParam(r, "id"))

	var req SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Store.EmployeeByID(r.Context(), coverage.EmployeeID(req.EmployeeID))
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}
	if emp.OrganizationID != id {
		writeError(w, http.StatusNotFound, "Employee not in this organization", nil)
		return
	}
	h.submitRequest(w, r, req)
}

// GetTeamCoverage runs the team coverage analysis for a date window.
// GET /api/organizations/{id}/coverage?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) GetTeamCoverage(w http.ResponseWriter, r *http.Request) {
	id := coverage.OrganizationID(chi.URLParam(r, "id"))

	window, ok := queryRange(w, r)
	if !ok {
		return
	}

	analysis, err := h.Analyzer.TeamCoverage(r.Context(), id, window)
	if err != nil {
		writeDomainError(w, "Coverage analysis failed", err)
		return
	}

	metrics.AnalysesRunTotal.WithLabelValues("team").Inc()
	metrics.LastOverallCoverage.Set(float64(analysis.OverallCoverage))
	writeJSON(w, http.StatusOK, analysis)
}

// GetCoverageSuggestions ranks coverage candidates for a date window.
// GET /api/organizations/{id}/coverage/suggestions?start=...&end=...&skills=go,sql
func (h *Handler) GetCoverageSuggestions(w http.ResponseWriter, r *http.Request) {
	id := coverage.OrganizationID(chi.URLParam(r, "id"))

	window, ok := queryRange(w, r)
	if !ok {
		return
	}
	var skills []string
	if raw := r.URL.Query().Get("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}

	suggestions, err := h.Analyzer.CoverageSuggestions(r.Context(), id, window, skills)
	if err != nil {
		writeDomainError(w, "Suggestion ranking failed", err)
		return
	}

	metrics.AnalysesRunTotal.WithLabelValues("suggestions").Inc()
	writeJSON(w, http.StatusOK, suggestions)
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.createEmployee(w, r, req)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request, req CreateEmployeeRequest) {
	emp := vacation.Employee{
		Employee: coverage.Employee{
			ID:              coverage.EmployeeID(req.ID),
			Name:            req.Name,
			Department:      req.Department,
			Role:            coverage.Role(req.Role),
			Skills:          req.Skills,
			CurrentWorkload: req.CurrentWorkload,
			Availability:    coverage.Availability(req.Availability),
		},
		OrganizationID: coverage.OrganizationID(req.OrganizationID),
	}

	// Reject unknown organizations up front so the client gets a 404
	// instead of a foreign-key error.
	if _, err := h.Store.OrganizationByID(r.Context(), emp.OrganizationID); err != nil {
		writeDomainError(w, "Failed to create employee", err)
		return
	}
	if err := h.Store.CreateEmployee(r.Context(), emp); err != nil {
		writeDomainError(w, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := coverage.EmployeeID(chi.URLParam(r, "id"))

	emp, err := h.Store.EmployeeByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// ListEmployeeRequests returns an employee's full request history.
func (h *Handler) ListEmployeeRequests(w http.ResponseWriter, r *http.Request) {
	id := coverage.EmployeeID(chi.URLParam(r, "id"))

	if _, err := h.Store.EmployeeByID(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}
	requests, err := h.Store.RequestsByEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list requests", err)
		return
	}

	dtos := make([]RequestDTO, len(requests))
	for i, req := range requests {
		dtos[i] = toRequestDTO(req)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetAllowance returns the allowance balance for an employee.
// GET /api/employees/{id}/allowance?year=2025 (defaults to the current year)
func (h *Handler) GetAllowance(w http.ResponseWriter, r *http.Request) {
	id := coverage.EmployeeID(chi.URLParam(r, "id"))

	year := time.Now().UTC().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = parsed
	}

	summary, err := h.Service.AllowanceSummaryFor(r.Context(), id, year)
	if err != nil {
		writeDomainError(w, "Failed to compute allowance", err)
		return
	}
	writeJSON(w, http.StatusOK, toAllowanceDTO(*summary))
}

// SetAllowance sets an employee's annual entitlement.
// PUT /api/employees/{id}/allowance
func (h *Handler) SetAllowance(w http.ResponseWriter, r *http.Request) {
	id := coverage.EmployeeID(chi.URLParam(r, "id"))

	var req SetAllowanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Year == 0 {
		writeError(w, http.StatusBadRequest, "year is required", nil)
		return
	}
	entitled, err := decimal.NewFromString(req.EntitledDays)
	if err != nil || entitled.IsNegative() {
		writeError(w, http.StatusBadRequest, "Invalid entitledDays (use a decimal string like \"27.5\")", err)
		return
	}

	if _, err := h.Store.EmployeeByID(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}
	allowance := vacation.Allowance{EmployeeID: id, Year: req.Year, EntitledDays: entitled}
	if err := h.Store.SetAllowance(r.Context(), allowance); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to set allowance", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"employeeId":   string(id),
		"year":         req.Year,
		"entitledDays": entitled.String(),
	})
}

// =============================================================================
// REQUEST HANDLERS
// =============================================================================

// SubmitRequest submits a new vacation request.
// POST /api/requests
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.submitRequest(w, r, req)
}

func (h *Handler) submitRequest(w http.ResponseWriter, r *http.Request, req SubmitRequestDTO) {
	start, err := coverage.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid startDate format (use YYYY-MM-DD)", err)
		return
	}
	end, err := coverage.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid endDate format (use YYYY-MM-DD)", err)
		return
	}

	created, err := h.Service.Create(r.Context(), vacation.CreateRequestInput{
		EmployeeID:     coverage.EmployeeID(req.EmployeeID),
		Start:          start,
		End:            end,
		CoverageSkills: req.CoverageSkills,
		Priority:       req.Priority,
	})
	if err != nil {
		metrics.RequestRejectionsByReason.WithLabelValues(failureCause(err)).Inc()
		writeDomainError(w, "Failed to submit request", err)
		return
	}

	metrics.RequestsCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, toRequestDTO(*created))
}

// GetRequest returns a single request.
func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := coverage.RequestID(chi.URLParam(r, "id"))

	req, err := h.Store.RequestByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get request", err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestDTO(*req))
}

// ApproveRequest approves a pending request and reports the conflicts the
// approval creates.
// POST /api/requests/{id}/approve
func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id := coverage.RequestID(chi.URLParam(r, "id"))

	analysis, err := h.Service.Approve(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to approve request", err)
		return
	}

	metrics.RequestTransitionsTotal.WithLabelValues("approved").Inc()
	if analysis != nil {
		metrics.ConflictsDetectedTotal.WithLabelValues(string(analysis.Severity)).Inc()
	}
	writeJSON(w, http.StatusOK, ApprovalResponse{Status: "approved", Conflicts: analysis})
}

// RejectRequest rejects a pending request, releasing its allowance hold.
// POST /api/requests/{id}/reject
func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id := coverage.RequestID(chi.URLParam(r, "id"))

	if err := h.Service.Reject(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to reject request", err)
		return
	}

	metrics.RequestTransitionsTotal.WithLabelValues("rejected").Inc()
	writeJSON(w, http.StatusOK, map[string]any{"status": "rejected"})
}

// CancelRequest withdraws a pending request.
// DELETE /api/requests/{id}
func (h *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	id := coverage.RequestID(chi.URLParam(r, "id"))

	if err := h.Service.Cancel(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to cancel request", err)
		return
	}

	metrics.RequestTransitionsTotal.WithLabelValues("cancelled").Inc()
	writeJSON(w, http.StatusOK, map[string]any{"status": "cancelled"})
}

// GetRequestConflicts runs the conflict analysis for a request on demand,
// without changing its status.
// GET /api/requests/{id}/conflicts
func (h *Handler) GetRequestConflicts(w http.ResponseWriter, r *http.Request) {
	id := coverage.RequestID(chi.URLParam(r, "id"))

	analysis, err := h.Analyzer.AnalyzeRequestConflicts(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Conflict analysis failed", err)
		return
	}

	metrics.AnalysesRunTotal.WithLabelValues("conflicts").Inc()
	if analysis != nil {
		metrics.ConflictsDetectedTotal.WithLabelValues(string(analysis.Severity)).Inc()
	}
	writeJSON(w, http.StatusOK, ConflictCheckResponse{
		HasConflicts: analysis != nil,
		Analysis:     analysis,
	})
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns all registered holidays.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Store.ListHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	dtos := make([]HolidayDTO, len(holidays))
	for i, holiday := range holidays {
		dtos[i] = toHolidayDTO(holiday)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateHoliday registers a single holiday.
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := coverage.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}
	holiday := vacation.Holiday{
		Date:   date,
		Name:   req.Name,
		Scope:  vacation.HolidayScope(req.Scope),
		Region: req.Region,
	}
	if err := h.Store.AddHoliday(r.Context(), holiday); err != nil {
		writeDomainError(w, "Failed to create holiday", err)
		return
	}
	writeJSON(w, http.StatusCreated, toHolidayDTO(holiday))
}

// AddDefaultHolidays loads the built-in fixed national holidays for a year.
// POST /api/holidays/defaults
func (h *Handler) AddDefaultHolidays(w http.ResponseWriter, r *http.Request) {
	var req DefaultHolidaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Year < 1970 || req.Year > 9999 {
		writeError(w, http.StatusBadRequest, "Invalid year", nil)
		return
	}

	holidays := factory.DefaultNationalHolidays(req.Year)
	for _, holiday := range holidays {
		if err := h.Store.AddHoliday(r.Context(), holiday); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to add holiday", err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, map[string]any{"added": len(holidays), "year": req.Year})
}

// LoadCalendar imports holidays from a JSON calendar definition.
// POST /api/holidays/calendar
func (h *Handler) LoadCalendar(w http.ResponseWriter, r *http.Request) {
	var req LoadCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	calendar, err := factory.ParseCalendar(req.Calendar)
	if err != nil {
		writeDomainError(w, "Invalid calendar definition", err)
		return
	}

	holidays := calendar.ForRegion(req.Region)
	for _, holiday := range holidays {
		if err := h.Store.AddHoliday(r.Context(), holiday); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to add holiday", err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"calendar": calendar.Name,
		"added":    len(holidays),
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

// queryRange parses the start/end query parameters. On failure it writes a
// 400 and returns ok=false.
func queryRange(w http.ResponseWriter, r *http.Request) (coverage.DateRange, bool) {
	start, err := coverage.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date (use YYYY-MM-DD)", err)
		return coverage.DateRange{}, false
	}
	end, err := coverage.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date (use YYYY-MM-DD)", err)
		return coverage.DateRange{}, false
	}
	return coverage.NewDateRange(start, end), true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps domain errors onto HTTP statuses. Conflict-class
// errors are checked before the broader client-error buckets.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case coverage.IsNotFound(err) || vacation.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case errors.Is(err, vacation.ErrDuplicateRequest),
		errors.Is(err, vacation.ErrInvalidTransition),
		errors.Is(err, vacation.ErrInsufficientAllowance):
		writeError(w, http.StatusConflict, message, err)
	case coverage.IsClientError(err) || vacation.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

// failureCause labels a request-creation failure for metrics.
func failureCause(err error) string {
	switch {
	case errors.Is(err, vacation.ErrInsufficientAllowance):
		return "insufficient_allowance"
	case errors.Is(err, vacation.ErrDuplicateRequest):
		return "overlap"
	case errors.Is(err, vacation.ErrNoWorkingDays):
		return "no_working_days"
	case vacation.IsNotFound(err) || coverage.IsNotFound(err):
		return "not_found"
	case errors.Is(err, vacation.ErrInvalidInput), errors.Is(err, coverage.ErrInvalidRange):
		return "invalid_input"
	default:
		return "internal"
	}
}
