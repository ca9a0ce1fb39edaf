package coverage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
)

// =============================================================================
// SNAPSHOT FAKE - Minimal store backed by slices
// =============================================================================

type snapshotStore struct {
	orgs     map[coverage.OrganizationID][]coverage.Employee
	requests []coverage.VacationRequest
	holidays []string
}

func (s *snapshotStore) RosterByOrganization(_ context.Context, orgID coverage.OrganizationID) ([]coverage.Employee, error) {
	roster, ok := s.orgs[orgID]
	if !ok {
		return nil, coverage.ErrOrganizationNotFound
	}
	return roster, nil
}

func (s *snapshotStore) RequestByID(_ context.Context, id coverage.RequestID) (*coverage.VacationRequest, error) {
	for _, r := range s.requests {
		if r.ID == id {
			req := r
			return &req, nil
		}
	}
	return nil, coverage.ErrRequestNotFound
}

func (s *snapshotStore) RequestsInRange(_ context.Context, orgID coverage.OrganizationID, rng coverage.DateRange) ([]coverage.VacationRequest, error) {
	var out []coverage.VacationRequest
	for _, r := range s.requests {
		if r.OrganizationID == orgID && r.Range.Overlaps(rng) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *snapshotStore) HolidayDatesInRange(_ context.Context, _ coverage.DateRange) ([]string, error) {
	return s.holidays, nil
}

func newAnalyzer(s *snapshotStore) *coverage.Analyzer {
	return &coverage.Analyzer{Roster: s, Requests: s, Holidays: s}
}

func fourPersonOrg() *snapshotStore {
	return &snapshotStore{
		orgs: map[coverage.OrganizationID][]coverage.Employee{
			"org-1": {
				employee("emp-a", "engineering", coverage.RoleEmployee),
				employee("emp-b", "engineering", coverage.RoleEmployee),
				employee("emp-c", "sales", coverage.RoleEmployee),
				employee("emp-d", "sales", coverage.RoleEmployee),
			},
			"org-empty": {},
		},
	}
}

// =============================================================================
// CONFLICT ANALYSIS ENTRY POINT
// =============================================================================

func TestAnalyzer_NoConflictIsNilNotError(t *testing.T) {
	// GIVEN: A request with no overlapping approved requests
	// THEN: nil analysis, nil error - the modeled no-conflict state
	store := fourPersonOrg()
	store.requests = []coverage.VacationRequest{
		request("req-1", "emp-a", coverage.StatusPending, monday, friday),
	}

	analysis, err := newAnalyzer(store).AnalyzeRequestConflicts(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis != nil {
		t.Fatalf("expected no conflict, got %+v", analysis)
	}
}

func TestAnalyzer_RequestNotFound(t *testing.T) {
	store := fourPersonOrg()
	_, err := newAnalyzer(store).AnalyzeRequestConflicts(context.Background(), "req-missing")
	if !errors.Is(err, coverage.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
	if !coverage.IsNotFound(err) {
		t.Fatal("IsNotFound must recognize request-not-found")
	}
}

func TestAnalyzer_ConflictAnalysisAssembled(t *testing.T) {
	// GIVEN: Target Mon-Fri, one approved conflict Wed-Fri from emp-b
	store := fourPersonOrg()
	wednesday := date(2025, time.March, 12)
	store.requests = []coverage.VacationRequest{
		{
			ID: "req-1", EmployeeID: "emp-a", OrganizationID: "org-1",
			Range:          rng(monday, friday),
			Status:         coverage.StatusPending,
			CoverageSkills: []string{"go"},
		},
		request("req-2", "emp-b", coverage.StatusApproved, wednesday, friday),
	}

	analysis, err := newAnalyzer(store).AnalyzeRequestConflicts(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis == nil {
		t.Fatal("expected a conflict analysis")
	}

	if analysis.Severity != coverage.SeverityLow {
		t.Fatalf("1 conflict, 25%% gap -> low, got %s", analysis.Severity)
	}
	if analysis.CoverageGapPct != 25 {
		t.Fatalf("gap = %d, want 25", analysis.CoverageGapPct)
	}
	if analysis.ConflictingDays != 3 {
		t.Fatalf("conflicting days = %d, want 3", analysis.ConflictingDays)
	}
	if len(analysis.AffectedEmployees) != 1 || analysis.AffectedEmployees[0] != "emp-b" {
		t.Fatalf("affected = %v, want [emp-b]", analysis.AffectedEmployees)
	}

	// Suggestions exclude both the requester and the conflicting absentee.
	for _, s := range analysis.Suggestions {
		if s.EmployeeID == "emp-a" || s.EmployeeID == "emp-b" {
			t.Fatalf("suggestion pool must exclude requester and absentees: %v", s.EmployeeID)
		}
	}
	if len(analysis.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(analysis.Suggestions))
	}
}

func TestAnalyzer_EmptyRosterRejected(t *testing.T) {
	store := fourPersonOrg()
	store.requests = []coverage.VacationRequest{
		{
			ID: "req-1", EmployeeID: "emp-x", OrganizationID: "org-empty",
			Range:  rng(monday, friday),
			Status: coverage.StatusPending,
		},
	}

	_, err := newAnalyzer(store).AnalyzeRequestConflicts(context.Background(), "req-1")
	if !errors.Is(err, coverage.ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
}

// =============================================================================
// COVERAGE SUGGESTIONS ENTRY POINT
// =============================================================================

func TestAnalyzer_CoverageSuggestions(t *testing.T) {
	store := fourPersonOrg()
	store.requests = []coverage.VacationRequest{
		request("req-1", "emp-a", coverage.StatusApproved, monday, friday),
	}

	suggestions, err := newAnalyzer(store).CoverageSuggestions(context.Background(), "org-1", rng(monday, friday), []string{"go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 suggestions (emp-a absent), got %d", len(suggestions))
	}
}

func TestAnalyzer_CoverageSuggestions_OrganizationNotFound(t *testing.T) {
	_, err := newAnalyzer(fourPersonOrg()).CoverageSuggestions(context.Background(), "org-missing", rng(monday, friday), nil)
	if !errors.Is(err, coverage.ErrOrganizationNotFound) {
		t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestAnalyzer_CoverageSuggestions_InvalidRange(t *testing.T) {
	_, err := newAnalyzer(fourPersonOrg()).CoverageSuggestions(context.Background(), "org-1", rng(friday, monday), nil)
	if !errors.Is(err, coverage.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

// =============================================================================
// TEAM COVERAGE ENTRY POINT
// =============================================================================

func TestAnalyzer_TeamCoverage(t *testing.T) {
	store := fourPersonOrg()
	store.holidays = []string{"2025-03-12"}
	store.requests = []coverage.VacationRequest{
		request("req-1", "emp-a", coverage.StatusApproved, monday, friday),
	}

	report, err := newAnalyzer(store).TeamCoverage(context.Background(), "org-1", rng(monday, friday))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(report.Days))
	}
	if report.OverallCoverage != 75 {
		t.Fatalf("overall = %d, want 75", report.OverallCoverage)
	}
	// Mon-Fri with Wednesday a holiday: 4 working days.
	if report.WorkingDays != 4 {
		t.Fatalf("working days = %d, want 4", report.WorkingDays)
	}
	if len(report.Recommendations) == 0 {
		t.Fatal("recommendations must never be empty")
	}
}

func TestAnalyzer_TeamCoverage_EmptyRoster(t *testing.T) {
	_, err := newAnalyzer(fourPersonOrg()).TeamCoverage(context.Background(), "org-empty", rng(monday, friday))
	var emptyErr *coverage.EmptyRosterError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyRosterError, got %v", err)
	}
	if emptyErr.OrganizationID != "org-empty" {
		t.Fatalf("error names wrong organization: %s", emptyErr.OrganizationID)
	}
}

func TestAnalyzer_TeamCoverage_Deterministic(t *testing.T) {
	// Identical snapshots must yield byte-identical output.
	store := fourPersonOrg()
	store.requests = []coverage.VacationRequest{
		request("req-1", "emp-a", coverage.StatusApproved, monday, friday),
		request("req-2", "emp-c", coverage.StatusApproved, date(2025, time.March, 12), sunday),
	}
	analyzer := newAnalyzer(store)

	first, err := analyzer.TeamCoverage(context.Background(), "org-1", rng(monday, sunday))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := analyzer.TeamCoverage(context.Background(), "org-1", rng(monday, sunday))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("repeated analysis differs:\n%s\n%s", a, b)
	}
}
