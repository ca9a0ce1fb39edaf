/*
Package coverage implements the vacation coverage and conflict analysis engine.

PURPOSE:
  This package contains the pure computation core of the vacation planner:
  conflict detection between overlapping requests, per-day team coverage,
  severity classification, candidate ranking for coverage gaps, and derived
  recommendations.

KEY CONCEPTS IN THIS FILE (types.go):
  - Date/DateRange: Day-granular calendar points and inclusive ranges
  - Employee: Read-only roster snapshot entry
  - VacationRequest: A pending/approved/rejected absence
  - ConflictAnalysis, CoverageSuggestion, TeamCoverageAnalysis: Engine outputs

DESIGN PRINCIPLES:
  1. Purity: Every computation is a function of supplied snapshots.
     No clocks, no randomness, no ambient state.
  2. Type Safety: Strong typing for IDs prevents mixing employee/request IDs.
  3. Explicitness: Empty rosters and missing records are errors, never NaN.

USAGE:
  analyzer := &coverage.Analyzer{Roster: roster, Requests: requests, Holidays: holidays}
  report, err := analyzer.TeamCoverage(ctx, orgID, week)

SEE ALSO:
  - calendar.go: Business-day and overlap primitives
  - analyzer.go: The facade wiring everything together
*/
package coverage

import (
	"sort"
	"strings"
	"time"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type OrganizationID string
type RequestID string

// =============================================================================
// DATE - Day-granular calendar point
// =============================================================================

// Date is a calendar day. The engine never reasons below day granularity.
type Date struct {
	t time.Time
}

// NewDate constructs a Date at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a normalized YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }
func (d Date) AddDays(n int) Date            { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Weekday() time.Weekday         { return d.t.Weekday() }
func (d Date) IsZero() bool                  { return d.t.IsZero() }
func (d Date) Time() time.Time               { return d.t }

func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// String formats as YYYY-MM-DD, the normalized form used for holiday lookups
// and JSON output.
func (d Date) String() string { return d.t.Format("2006-01-02") }

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// DATE RANGE - Inclusive [Start, End] span
// =============================================================================

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

func NewDateRange(start, end Date) DateRange {
	return DateRange{Start: start, End: end}
}

// IsValid reports whether Start <= End.
func (r DateRange) IsValid() bool { return r.Start.BeforeOrEqual(r.End) }

// Contains returns true if d falls within [Start, End].
func (r DateRange) Contains(d Date) bool {
	return d.AfterOrEqual(r.Start) && d.BeforeOrEqual(r.End)
}

// Days returns every day in the range, inclusive on both ends.
func (r DateRange) Days() []Date {
	var days []Date
	for cur := r.Start; cur.BeforeOrEqual(r.End); cur = cur.AddDays(1) {
		days = append(days, cur)
	}
	return days
}

// Length returns the number of calendar days in the range, inclusive.
func (r DateRange) Length() int {
	if !r.IsValid() {
		return 0
	}
	return int(r.End.t.Sub(r.Start.t).Hours()/24) + 1
}

func (r DateRange) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}

// =============================================================================
// ROSTER SNAPSHOT - Employees as the engine sees them
// =============================================================================

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleEmployee    Role = "employee"
	RoleTenantAdmin Role = "tenant_admin"
)

// IsCritical reports whether an absence of this role endangers operations.
// Organization admins are the critical roles for severity classification.
func (r Role) IsCritical() bool { return r == RoleAdmin }

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityLimited     Availability = "limited"
	AvailabilityUnavailable Availability = "unavailable"
)

// Employee is a read-only roster snapshot entry. The engine never mutates it;
// admin actions that change roster data happen outside the engine and show up
// in the next snapshot.
type Employee struct {
	ID              EmployeeID   `json:"id"`
	Name            string       `json:"name"`
	Department      string       `json:"department"`
	Role            Role         `json:"role"`
	Skills          []string     `json:"skills"`
	CurrentWorkload int          `json:"currentWorkload"` // percent capacity already committed, 0-100
	Availability    Availability `json:"availabilityForCoverage"`
}

// =============================================================================
// VACATION REQUEST SNAPSHOT
// =============================================================================

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// VacationRequest is an absence request snapshot. Rejected requests are
// invisible to every conflict and coverage computation.
type VacationRequest struct {
	ID             RequestID      `json:"id"`
	EmployeeID     EmployeeID     `json:"employeeId"`
	OrganizationID OrganizationID `json:"organizationId"`
	Range          DateRange      `json:"range"`
	Status         RequestStatus  `json:"status"`
	CoverageSkills []string       `json:"coverageSkills,omitempty"`
	Priority       string         `json:"priority,omitempty"`
}

// Counts reports whether the request participates in conflict/coverage math.
func (r VacationRequest) Counts() bool { return r.Status != StatusRejected }

// AbsentOn returns true if the employee is away on day d under this request,
// counting approved requests only.
func (r VacationRequest) AbsentOn(d Date) bool {
	return r.Status == StatusApproved && r.Range.Contains(d)
}

// =============================================================================
// HOLIDAY SET - Normalized YYYY-MM-DD lookups
// =============================================================================

// HolidaySet is a lookup over normalized YYYY-MM-DD holiday dates.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a set from normalized date strings. Unparseable
// entries are kept verbatim; lookups are string-exact by design.
func NewHolidaySet(dates []string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Contains returns true if d is a holiday.
func (h HolidaySet) Contains(d Date) bool {
	_, ok := h[d.String()]
	return ok
}

// =============================================================================
// ENGINE OUTPUTS
// =============================================================================

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ConflictImpact summarizes which parts of the organization a conflict touches.
type ConflictImpact struct {
	Departments   []string `json:"departments"`
	CriticalRoles int      `json:"criticalRoles"`
	ConflictCount int      `json:"conflictCount"`
}

// ConflictAnalysis is the result of analyzing one request against the
// organization's approved absences.
type ConflictAnalysis struct {
	RequestID         RequestID            `json:"requestId"`
	Severity          Severity             `json:"severity"`
	AffectedEmployees []EmployeeID         `json:"affectedEmployees"`
	ConflictingDays   int                  `json:"totalConflictingDays"`
	CoverageGapPct    int                  `json:"coverageGapPercentage"`
	Impact            ConflictImpact       `json:"impact"`
	Suggestions       []CoverageSuggestion `json:"suggestions"`
}

// CoverageSuggestion is one ranked candidate to absorb a coverage gap.
type CoverageSuggestion struct {
	EmployeeID   EmployeeID   `json:"employeeId"`
	EmployeeName string       `json:"employeeName"`
	Score        int          `json:"score"` // composite suitability, 0-100
	Reason       string       `json:"reason"`
	Availability Availability `json:"availability"`
	SkillMatch   int          `json:"skillMatchPercentage"`
	WorkloadImpact int        `json:"workloadImpactPercentage"`
}

// DayCoverage is the staffing picture for a single calendar day.
type DayCoverage struct {
	Date        Date     `json:"date"`
	CoveragePct int      `json:"coveragePercentage"`
	Available   int      `json:"availableUsers"`
	OnVacation  int      `json:"onVacationUsers"`
	Gaps        []string `json:"gaps,omitempty"` // departments with zero available members
}

// TeamCoverageAnalysis is the whole-range coverage report for an organization.
type TeamCoverageAnalysis struct {
	OrganizationID  OrganizationID `json:"organizationId"`
	Range           DateRange      `json:"range"`
	OverallCoverage int            `json:"overallCoveragePercentage"`
	WorkingDays     int            `json:"workingDays"`
	Days            []DayCoverage  `json:"dailyCoverage"`
	Recommendations []string       `json:"recommendations"`
}

// sortedStrings returns a deterministic, deduplicated copy of values.
// Engine outputs must be byte-identical for identical snapshots, so every
// set-valued field passes through here before leaving the package.
func sortedStrings(values map[string]struct{}) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
