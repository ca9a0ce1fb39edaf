/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the store with realistic
	data for testing and demos. Each scenario creates an organization,
	employees, requests and holidays that demonstrate specific features.

AVAILABLE SCENARIOS:

	small-team:      Five-person engineering team with one approved absence
	conflict-season: Overlapping requests including a critical admin role
	holiday-season:  December window with national holidays and fractional
	                 allowances

HOW SCENARIOS WORK:
 1. Create an organization with a scenario-specific ID
 2. Create employees with departments, skills and availability
 3. Create requests (some approved, some pending)
 4. Register holidays and allowances where the scenario needs them

Scenarios are additive: each uses its own organization, so loading one does
not disturb data loaded earlier. Loading the same scenario twice fails with
a conflict.

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "conflict-season"}

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description
 2. Create loader function: loadXxxScenario(ctx, h)
 3. Add case to LoadScenario handler

SEE ALSO:
  - handlers.go: Shared response helpers
  - factory/calendar.go: Built-in holiday sets
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
	"github.com/CychoGit/Urlaubsplaner-sub000/factory"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "small-team",
		Name:        "Small Team",
		Description: "Five-person engineering team with one approved absence",
		Category:    "coverage",
	},
	{
		ID:          "conflict-season",
		Name:        "Conflict Season",
		Description: "Overlapping vacation requests including a critical admin role",
		Category:    "conflicts",
	},
	{
		ID:          "holiday-season",
		Name:        "Holiday Season",
		Description: "December requests with national holidays and fractional allowances",
		Category:    "allowances",
	},
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns all available demo scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetCurrentScenario reports the most recently loaded scenario.
// GET /api/scenarios/current
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"scenario_id": h.currentScenario})
}

// LoadScenario seeds the store with one of the demo scenarios.
// POST /api/scenarios/load
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	var err error
	switch req.ScenarioID {
	case "small-team":
		err = loadSmallTeamScenario(ctx, h)
	case "conflict-season":
		err = loadConflictSeasonScenario(ctx, h)
	case "holiday-season":
		err = loadHolidaySeasonScenario(ctx, h)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown scenario: %s", req.ScenarioID), nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusConflict, "Failed to load scenario (already loaded?)", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "scenario_id": req.ScenarioID})
}

// =============================================================================
// SCENARIO LOADERS
// =============================================================================

// seedEmployee cuts down on repetition in the loaders.
func seedEmployee(ctx context.Context, h *Handler, orgID coverage.OrganizationID, id, name, dept string, role coverage.Role, skills []string, workload int, avail coverage.Availability) error {
	return h.Store.CreateEmployee(ctx, vacation.Employee{
		Employee: coverage.Employee{
			ID:              coverage.EmployeeID(id),
			Name:            name,
			Department:      dept,
			Role:            role,
			Skills:          skills,
			CurrentWorkload: workload,
			Availability:    avail,
		},
		OrganizationID: orgID,
	})
}

func seedRequest(ctx context.Context, h *Handler, orgID coverage.OrganizationID, id, empID string, status coverage.RequestStatus, start, end coverage.Date, skills []string) error {
	return h.Store.CreateRequest(ctx, coverage.VacationRequest{
		ID:             coverage.RequestID(id),
		EmployeeID:     coverage.EmployeeID(empID),
		OrganizationID: orgID,
		Range:          coverage.NewDateRange(start, end),
		Status:         status,
		CoverageSkills: skills,
	})
}

// loadSmallTeamScenario: a five-person engineering team where one member is
// on approved vacation for a week. Good starting point for the coverage
// report.
func loadSmallTeamScenario(ctx context.Context, h *Handler) error {
	const orgID = coverage.OrganizationID("demo-small-team")
	if err := h.Store.CreateOrganization(ctx, vacation.Organization{ID: orgID, Name: "Small Team Demo"}); err != nil {
		return err
	}

	team := []struct {
		id, name string
		skills   []string
		workload int
	}{
		{"st-anna", "Anna Fischer", []string{"go", "postgres"}, 60},
		{"st-ben", "Ben Weber", []string{"go", "react"}, 45},
		{"st-clara", "Clara Schmidt", []string{"react", "design"}, 70},
		{"st-david", "David Koch", []string{"go", "kubernetes"}, 30},
		{"st-emma", "Emma Braun", []string{"postgres", "kubernetes"}, 55},
	}
	for _, m := range team {
		if err := seedEmployee(ctx, h, orgID, m.id, m.name, "engineering",
			coverage.RoleEmployee, m.skills, m.workload, coverage.AvailabilityAvailable); err != nil {
			return err
		}
	}

	return seedRequest(ctx, h, orgID, "st-req-1", "st-anna", coverage.StatusApproved,
		coverage.NewDate(2026, time.September, 7), coverage.NewDate(2026, time.September, 11),
		[]string{"go", "postgres"})
}

// loadConflictSeasonScenario: three overlapping requests in one week, one of
// them from the department admin. Approving the pending one demonstrates
// severity escalation.
func loadConflictSeasonScenario(ctx context.Context, h *Handler) error {
	const orgID = coverage.OrganizationID("demo-conflict-season")
	if err := h.Store.CreateOrganization(ctx, vacation.Organization{ID: orgID, Name: "Conflict Season Demo"}); err != nil {
		return err
	}

	if err := seedEmployee(ctx, h, orgID, "cs-admin", "Sabine Vogel", "operations",
		coverage.RoleAdmin, []string{"payroll", "compliance"}, 80, coverage.AvailabilityAvailable); err != nil {
		return err
	}
	if err := seedEmployee(ctx, h, orgID, "cs-ops1", "Jonas Mayer", "operations",
		coverage.RoleEmployee, []string{"payroll"}, 50, coverage.AvailabilityAvailable); err != nil {
		return err
	}
	if err := seedEmployee(ctx, h, orgID, "cs-ops2", "Lena Hoffmann", "operations",
		coverage.RoleEmployee, []string{"compliance"}, 40, coverage.AvailabilityLimited); err != nil {
		return err
	}
	if err := seedEmployee(ctx, h, orgID, "cs-sup1", "Tim Wagner", "support",
		coverage.RoleEmployee, []string{"payroll", "support"}, 35, coverage.AvailabilityAvailable); err != nil {
		return err
	}

	week := coverage.NewDateRange(
		coverage.NewDate(2026, time.October, 5), coverage.NewDate(2026, time.October, 9))

	if err := seedRequest(ctx, h, orgID, "cs-req-admin", "cs-admin", coverage.StatusApproved,
		week.Start, week.End, []string{"payroll", "compliance"}); err != nil {
		return err
	}
	if err := seedRequest(ctx, h, orgID, "cs-req-ops1", "cs-ops1", coverage.StatusApproved,
		week.Start.AddDays(2), week.End.AddDays(2), []string{"payroll"}); err != nil {
		return err
	}
	// Pending request that overlaps both approved ones. Approving it via
	// the API shows the conflict analysis in the response.
	return seedRequest(ctx, h, orgID, "cs-req-ops2", "cs-ops2", coverage.StatusPending,
		week.Start.AddDays(3), week.End.AddDays(4), []string{"compliance"})
}

// loadHolidaySeasonScenario: December requests around the built-in national
// holidays, with fractional allowances to show decimal balances.
func loadHolidaySeasonScenario(ctx context.Context, h *Handler) error {
	const orgID = coverage.OrganizationID("demo-holiday-season")
	if err := h.Store.CreateOrganization(ctx, vacation.Organization{ID: orgID, Name: "Holiday Season Demo"}); err != nil {
		return err
	}

	for _, holiday := range factory.DefaultNationalHolidays(2026) {
		if err := h.Store.AddHoliday(ctx, holiday); err != nil {
			return err
		}
	}

	if err := seedEmployee(ctx, h, orgID, "hs-mia", "Mia Richter", "finance",
		coverage.RoleEmployee, []string{"accounting"}, 65, coverage.AvailabilityAvailable); err != nil {
		return err
	}
	if err := seedEmployee(ctx, h, orgID, "hs-paul", "Paul Becker", "finance",
		coverage.RoleEmployee, []string{"accounting", "controlling"}, 50, coverage.AvailabilityAvailable); err != nil {
		return err
	}

	halfDays := decimal.RequireFromString("27.5")
	if err := h.Store.SetAllowance(ctx, vacation.Allowance{
		EmployeeID: "hs-mia", Year: 2026, EntitledDays: halfDays,
	}); err != nil {
		return err
	}

	// Christmas week 2026: the 25th (Friday) is a holiday and the 26th
	// falls on a Saturday, so only four working days are charged.
	return seedRequest(ctx, h, orgID, "hs-req-1", "hs-mia", coverage.StatusApproved,
		coverage.NewDate(2026, time.December, 21), coverage.NewDate(2026, time.December, 27),
		[]string{"accounting"})
}
