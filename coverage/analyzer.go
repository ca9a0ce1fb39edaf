/*
analyzer.go - Analysis facade

PURPOSE:
  Wires the engine primitives into the three externally consumed operations:

  1. AnalyzeRequestConflicts: conflicts of one request against the
     organization's approved absences, with severity and ranked suggestions.
  2. CoverageSuggestions: ranked candidates for a gap, independent of any
     specific request.
  3. TeamCoverage: the whole-range daily coverage report with
     recommendations.

  The facade pulls snapshots through narrow store interfaces and hands them
  to pure functions. It performs no writes; repeated calls with unchanged
  storage return byte-identical results.

RESULT STATES (AnalyzeRequestConflicts):
  (analysis, nil)  conflicts found
  (nil, nil)       no conflict - a legitimate terminal state, not an error
  (nil, err)       lookup failed (IsNotFound) or degenerate input

SEE ALSO:
  - errors.go: Sentinels and helpers for the error states
  - conflict.go, report.go, scorer.go: The primitives being orchestrated
*/
package coverage

import "context"

// =============================================================================
// STORE INTERFACES - Snapshot suppliers
// =============================================================================

// RosterStore supplies employee snapshots for an organization.
type RosterStore interface {
	// RosterByOrganization returns the organization's employees. It returns
	// ErrOrganizationNotFound when the organization does not exist, and an
	// empty slice for an existing organization with no employees.
	RosterByOrganization(ctx context.Context, orgID OrganizationID) ([]Employee, error)
}

// RequestStore supplies vacation request snapshots.
type RequestStore interface {
	// RequestByID returns the request or ErrRequestNotFound.
	RequestByID(ctx context.Context, id RequestID) (*VacationRequest, error)

	// RequestsInRange returns all requests of the organization whose range
	// intersects r, in any status.
	RequestsInRange(ctx context.Context, orgID OrganizationID, r DateRange) ([]VacationRequest, error)
}

// HolidayStore supplies normalized YYYY-MM-DD holiday dates.
type HolidayStore interface {
	HolidayDatesInRange(ctx context.Context, r DateRange) ([]string, error)
}

// =============================================================================
// ANALYZER
// =============================================================================

// Analyzer is the engine facade. All fields are required.
type Analyzer struct {
	Roster   RosterStore
	Requests RequestStore
	Holidays HolidayStore
}

// AnalyzeRequestConflicts analyzes one request against the approved requests
// of the same organization. A nil analysis with a nil error means the request
// has no conflicts.
func (a *Analyzer) AnalyzeRequestConflicts(ctx context.Context, requestID RequestID) (*ConflictAnalysis, error) {
	target, err := a.Requests.RequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	roster, err := a.Roster.RosterByOrganization(ctx, target.OrganizationID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, &EmptyRosterError{OrganizationID: target.OrganizationID}
	}

	candidates, err := a.Requests.RequestsInRange(ctx, target.OrganizationID, target.Range)
	if err != nil {
		return nil, err
	}

	report := BuildConflictReport(*target, candidates, roster)
	if !report.HasConflicts() {
		return nil, nil
	}

	gapPct := GapPercentage(len(report.AffectedEmployees), len(roster))

	return &ConflictAnalysis{
		RequestID:         target.ID,
		Severity:          ClassifySeverity(len(report.Conflicts), gapPct, report.CriticalRoles),
		AffectedEmployees: report.AffectedEmployees,
		ConflictingDays:   report.TotalOverlapDays,
		CoverageGapPct:    gapPct,
		Impact: ConflictImpact{
			Departments:   report.Departments,
			CriticalRoles: report.CriticalRoles,
			ConflictCount: len(report.Conflicts),
		},
		Suggestions: RankCandidates(roster, candidates, target.Range, target.CoverageSkills, target.EmployeeID),
	}, nil
}

// CoverageSuggestions ranks candidates able to cover a gap in r, independent
// of any specific request. An existing organization with nobody available
// yields an empty list, not an error.
func (a *Analyzer) CoverageSuggestions(ctx context.Context, orgID OrganizationID, r DateRange, requiredSkills []string) ([]CoverageSuggestion, error) {
	if !r.IsValid() {
		return nil, ErrInvalidRange
	}

	roster, err := a.Roster.RosterByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	requests, err := a.Requests.RequestsInRange(ctx, orgID, r)
	if err != nil {
		return nil, err
	}

	return RankCandidates(roster, requests, r, requiredSkills, ""), nil
}

// TeamCoverage builds the daily coverage report for the whole organization
// over r, including working-day counts and recommendations.
func (a *Analyzer) TeamCoverage(ctx context.Context, orgID OrganizationID, r DateRange) (*TeamCoverageAnalysis, error) {
	if !r.IsValid() {
		return nil, ErrInvalidRange
	}

	roster, err := a.Roster.RosterByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, &EmptyRosterError{OrganizationID: orgID}
	}

	requests, err := a.Requests.RequestsInRange(ctx, orgID, r)
	if err != nil {
		return nil, err
	}

	holidayDates, err := a.Holidays.HolidayDatesInRange(ctx, r)
	if err != nil {
		return nil, err
	}

	series := DailyCoverageSeries(roster, requests, r)

	return &TeamCoverageAnalysis{
		OrganizationID:  orgID,
		Range:           r,
		OverallCoverage: OverallCoverage(series),
		WorkingDays:     BusinessDays(r, NewHolidaySet(holidayDates)),
		Days:            series,
		Recommendations: Recommendations(series),
	}, nil
}
