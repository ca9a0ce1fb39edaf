package coverage_test

import (
	"testing"
	"time"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
)

// =============================================================================
// DAILY COVERAGE REPORTER
// =============================================================================

func TestDailyCoverageSeries_FivePersonRoster(t *testing.T) {
	// GIVEN: 5 employees, exactly one approved vacation covering Monday
	// THEN: Monday reports 80% coverage, 1 on vacation, 4 available
	roster := []coverage.Employee{
		employee("emp-1", "engineering", coverage.RoleEmployee),
		employee("emp-2", "engineering", coverage.RoleEmployee),
		employee("emp-3", "sales", coverage.RoleEmployee),
		employee("emp-4", "sales", coverage.RoleEmployee),
		employee("emp-5", "sales", coverage.RoleAdmin),
	}
	requests := []coverage.VacationRequest{
		request("req-1", "emp-1", coverage.StatusApproved, monday, monday),
	}

	series := coverage.DailyCoverageSeries(roster, requests, rng(monday, monday))

	if len(series) != 1 {
		t.Fatalf("expected 1 day, got %d", len(series))
	}
	day := series[0]
	if day.CoveragePct != 80 {
		t.Fatalf("coverage = %d, want 80", day.CoveragePct)
	}
	if day.OnVacation != 1 || day.Available != 4 {
		t.Fatalf("counts = %d on vacation / %d available, want 1/4", day.OnVacation, day.Available)
	}
}

func TestDailyCoverageSeries_PendingRequestsDoNotReduceCoverage(t *testing.T) {
	roster := []coverage.Employee{
		employee("emp-1", "engineering", coverage.RoleEmployee),
		employee("emp-2", "engineering", coverage.RoleEmployee),
	}
	requests := []coverage.VacationRequest{
		request("req-1", "emp-1", coverage.StatusPending, monday, friday),
	}

	series := coverage.DailyCoverageSeries(roster, requests, rng(monday, monday))
	if series[0].CoveragePct != 100 || series[0].OnVacation != 0 {
		t.Fatalf("pending request reduced coverage: %+v", series[0])
	}
}

func TestDailyCoverageSeries_DepartmentGaps(t *testing.T) {
	// GIVEN: engineering fully represented by A and B; A approved Mon-Fri
	// THEN: No engineering gap while B is available; a gap once B overlaps
	roster := []coverage.Employee{
		employee("emp-a", "engineering", coverage.RoleEmployee),
		employee("emp-b", "engineering", coverage.RoleEmployee),
		employee("emp-c", "sales", coverage.RoleEmployee),
		employee("emp-d", "sales", coverage.RoleEmployee),
	}
	requests := []coverage.VacationRequest{
		request("req-1", "emp-a", coverage.StatusApproved, monday, friday),
	}

	series := coverage.DailyCoverageSeries(roster, requests, rng(monday, friday))
	for _, day := range series {
		if len(day.Gaps) != 0 {
			t.Fatalf("unexpected gap on %s while emp-b is available: %v", day.Date, day.Gaps)
		}
	}

	// B also takes Wednesday off.
	requests = append(requests, request("req-2", "emp-b", coverage.StatusApproved, date(2025, time.March, 12), date(2025, time.March, 12)))

	series = coverage.DailyCoverageSeries(roster, requests, rng(monday, friday))
	for _, day := range series {
		wednesday := day.Date.Equal(date(2025, time.March, 12))
		hasGap := len(day.Gaps) == 1 && day.Gaps[0] == "engineering"
		if wednesday && !hasGap {
			t.Fatalf("expected engineering gap on %s, got %v", day.Date, day.Gaps)
		}
		if !wednesday && len(day.Gaps) != 0 {
			t.Fatalf("unexpected gap on %s: %v", day.Date, day.Gaps)
		}
	}
}

func TestOverallCoverage_MeanOfDailyValues(t *testing.T) {
	series := []coverage.DayCoverage{
		{CoveragePct: 100},
		{CoveragePct: 80},
		{CoveragePct: 50},
	}
	// mean(100, 80, 50) = 76.67 -> 77
	if got := coverage.OverallCoverage(series); got != 77 {
		t.Fatalf("overall = %d, want 77", got)
	}
	if got := coverage.OverallCoverage(nil); got != 0 {
		t.Fatalf("empty series overall = %d, want 0", got)
	}
}

// =============================================================================
// RECOMMENDATION GENERATOR
// =============================================================================

func TestRecommendations_CriticalDaysAndGaps(t *testing.T) {
	series := []coverage.DayCoverage{
		{CoveragePct: 60, Gaps: []string{"engineering"}},
		{CoveragePct: 65, Gaps: []string{"sales"}},
		{CoveragePct: 90},
	}

	recs := coverage.Recommendations(series)

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %v", recs)
	}
	if recs[0] != "2 days with critical staffing levels (below 70% coverage)" {
		t.Fatalf("unexpected critical-days message: %q", recs[0])
	}
	if recs[1] != "department coverage gaps: engineering, sales" {
		t.Fatalf("unexpected gaps message: %q", recs[1])
	}
	if recs[2] != "consider staggering vacation periods to maintain team coverage" {
		t.Fatalf("unexpected stagger message: %q", recs[2])
	}
}

func TestRecommendations_PositiveWhenNothingFires(t *testing.T) {
	series := []coverage.DayCoverage{{CoveragePct: 95}, {CoveragePct: 100}}
	recs := coverage.Recommendations(series)
	if len(recs) != 1 || recs[0] != "good staffing coverage across the selected period" {
		t.Fatalf("expected single positive message, got %v", recs)
	}
}

func TestRecommendations_StaggerOnlyBelowThreshold(t *testing.T) {
	// Mean 79 -> stagger fires without critical days or gaps.
	series := []coverage.DayCoverage{{CoveragePct: 79}}
	recs := coverage.Recommendations(series)
	if len(recs) != 1 || recs[0] != "consider staggering vacation periods to maintain team coverage" {
		t.Fatalf("expected stagger message only, got %v", recs)
	}
}
