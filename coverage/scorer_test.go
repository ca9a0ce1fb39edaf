package coverage_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
)

func candidate(id string, skills []string, workload int, avail coverage.Availability) coverage.Employee {
	return coverage.Employee{
		ID:              coverage.EmployeeID(id),
		Name:            "Employee " + id,
		Department:      "engineering",
		Role:            coverage.RoleEmployee,
		Skills:          skills,
		CurrentWorkload: workload,
		Availability:    avail,
	}
}

// =============================================================================
// SKILL MATCH
// =============================================================================

func TestSkillMatch_EmptyRequiredIsBaseline(t *testing.T) {
	got := coverage.SkillMatch([]string{"go", "sql"}, nil)
	if got != 75 {
		t.Fatalf("empty required skills must yield 75 baseline, got %v", got)
	}
}

func TestSkillMatch_CaseInsensitiveSubstring(t *testing.T) {
	// "go" matches "Golang" in either direction.
	got := coverage.SkillMatch([]string{"Golang", "Postgres"}, []string{"go", "postgres"})
	if got != 100 {
		t.Fatalf("expected full match, got %v", got)
	}
}

func TestSkillMatch_BoundedBy100(t *testing.T) {
	// One required skill matched by several candidate skills still counts once.
	got := coverage.SkillMatch([]string{"go", "golang", "go-kit"}, []string{"go"})
	if got != 100 {
		t.Fatalf("per-skill match must be clamped to one count, got %v", got)
	}
}

func TestSkillMatch_Partial(t *testing.T) {
	got := coverage.SkillMatch([]string{"go"}, []string{"go", "react", "terraform", "sql"})
	if got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

// =============================================================================
// COMPOSITE SCORE
// =============================================================================

func TestScoreCandidate_WithinBounds(t *testing.T) {
	for _, workload := range []int{0, 50, 100} {
		for _, avail := range []coverage.Availability{coverage.AvailabilityAvailable, coverage.AvailabilityLimited, coverage.AvailabilityUnavailable} {
			s := coverage.ScoreCandidate(candidate("emp-1", []string{"go"}, workload, avail), []string{"go"})
			if s.Score < 0 || s.Score > 100 {
				t.Fatalf("score out of bounds: %d (workload=%d avail=%s)", s.Score, workload, avail)
			}
		}
	}
}

func TestScoreCandidate_HigherWorkloadScoresLower(t *testing.T) {
	// GIVEN: Identical candidates except workload 20 vs 90
	light := coverage.ScoreCandidate(candidate("emp-1", nil, 20, coverage.AvailabilityLimited), []string{"go"})
	heavy := coverage.ScoreCandidate(candidate("emp-2", nil, 90, coverage.AvailabilityLimited), []string{"go"})
	if heavy.Score >= light.Score {
		t.Fatalf("workload 90 (%d) must score strictly below workload 20 (%d)", heavy.Score, light.Score)
	}
}

func TestScoreCandidate_AvailabilityOrdering(t *testing.T) {
	available := coverage.ScoreCandidate(candidate("a", nil, 50, coverage.AvailabilityAvailable), []string{"go"})
	limited := coverage.ScoreCandidate(candidate("b", nil, 50, coverage.AvailabilityLimited), []string{"go"})
	unavailable := coverage.ScoreCandidate(candidate("c", nil, 50, coverage.AvailabilityUnavailable), []string{"go"})
	if !(available.Score > limited.Score && limited.Score > unavailable.Score) {
		t.Fatalf("availability bonus ordering broken: %d, %d, %d", available.Score, limited.Score, unavailable.Score)
	}
}

func TestScoreCandidate_Reason(t *testing.T) {
	// Excellent skill match + low workload + department suffix.
	s := coverage.ScoreCandidate(candidate("emp-1", []string{"go", "sql"}, 20, coverage.AvailabilityAvailable), []string{"go", "sql"})
	for _, want := range []string{"excellent skill match", "fully available", "low current workload", "engineering department"} {
		if !strings.Contains(s.Reason, want) {
			t.Fatalf("reason %q missing clause %q", s.Reason, want)
		}
	}
}

func TestScoreCandidate_ReasonFallback(t *testing.T) {
	// No clause fires: unavailable, mid workload, poor skills, no department.
	emp := coverage.Employee{
		ID:              "emp-1",
		Name:            "Nobody Special",
		Role:            coverage.RoleEmployee,
		CurrentWorkload: 60,
		Availability:    coverage.AvailabilityUnavailable,
	}
	s := coverage.ScoreCandidate(emp, []string{"rust"})
	if s.Reason != "available for coverage" {
		t.Fatalf("expected fallback reason, got %q", s.Reason)
	}
}

// =============================================================================
// RANKING
// =============================================================================

func TestRankCandidates_ExcludesVacationingEmployees(t *testing.T) {
	// GIVEN: emp-b is on approved vacation overlapping the gap window
	// THEN: emp-b is never scored, never suggested
	roster := []coverage.Employee{
		candidate("emp-a", []string{"go"}, 30, coverage.AvailabilityAvailable),
		candidate("emp-b", []string{"go"}, 10, coverage.AvailabilityAvailable),
	}
	requests := []coverage.VacationRequest{
		request("req-1", "emp-b", coverage.StatusApproved, monday, friday),
	}

	ranked := coverage.RankCandidates(roster, requests, rng(monday, friday), []string{"go"}, "")

	if len(ranked) != 1 || ranked[0].EmployeeID != "emp-a" {
		t.Fatalf("vacationing employee must be excluded, got %v", ranked)
	}
}

func TestRankCandidates_PendingAbsenceDoesNotExclude(t *testing.T) {
	roster := []coverage.Employee{candidate("emp-a", nil, 30, coverage.AvailabilityAvailable)}
	requests := []coverage.VacationRequest{
		request("req-1", "emp-a", coverage.StatusPending, monday, friday),
	}
	ranked := coverage.RankCandidates(roster, requests, rng(monday, friday), nil, "")
	if len(ranked) != 1 {
		t.Fatal("pending requests must not exclude candidates")
	}
}

func TestRankCandidates_ExcludesTargetEmployee(t *testing.T) {
	roster := []coverage.Employee{
		candidate("emp-a", nil, 30, coverage.AvailabilityAvailable),
		candidate("emp-b", nil, 30, coverage.AvailabilityAvailable),
	}
	ranked := coverage.RankCandidates(roster, nil, rng(monday, friday), nil, "emp-a")
	if len(ranked) != 1 || ranked[0].EmployeeID != "emp-b" {
		t.Fatalf("target employee must be excluded from their own suggestions, got %v", ranked)
	}
}

func TestRankCandidates_SortedAndCapped(t *testing.T) {
	var roster []coverage.Employee
	for i := 0; i < 15; i++ {
		// Spread workloads so scores differ and stay below the clamp.
		roster = append(roster, candidate(fmt.Sprintf("emp-%02d", i), nil, i*6, coverage.AvailabilityLimited))
	}

	ranked := coverage.RankCandidates(roster, nil, rng(monday, friday), []string{"go"}, "")

	if len(ranked) != coverage.MaxSuggestions {
		t.Fatalf("expected top %d suggestions, got %d", coverage.MaxSuggestions, len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("suggestions not sorted descending at %d: %d > %d", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}
