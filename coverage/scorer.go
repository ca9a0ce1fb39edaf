/*
scorer.go - Composite suitability scoring for coverage candidates

PURPOSE:
  Ranks which employees could absorb the work of someone going on vacation.
  The composite score weighs four factors:

    score = 50 (base)
          + skillMatch * 0.4          skill fit against the requested skills
          + (100 - workload) * 0.2    spare capacity
          + availability bonus        available=25, limited=15, unavailable=0
          + role bonus                admin=15, everyone else=10
    clamped to [0,100]

  Candidates already on approved vacation during the gap window never enter
  the pool: they are filtered out before scoring, not scored low.

SKILL MATCHING:
  Case-insensitive substring match in both directions ("go" matches "golang"
  and vice versa). Each required skill counts at most once, so the match
  percentage is bounded by 100.

SEE ALSO:
  - analyzer.go: Builds candidate pools and calls RankCandidates
*/
package coverage

import (
	"math"
	"sort"
	"strings"
)

// MaxSuggestions caps how many ranked candidates are returned to callers.
const MaxSuggestions = 10

// skillMatchBaseline applies when no skills were requested: an unconstrained
// gap is default-compatible with everyone.
const skillMatchBaseline = 75.0

// SkillMatch returns the 0-100 skill fit of candidate skills against the
// required set. Matching is case-insensitive and substring-based in both
// directions; each required skill contributes at most one match.
func SkillMatch(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return skillMatchBaseline
	}
	matched := 0
	for _, req := range requiredSkills {
		reqLower := strings.ToLower(req)
		for _, have := range candidateSkills {
			haveLower := strings.ToLower(have)
			if strings.Contains(haveLower, reqLower) || strings.Contains(reqLower, haveLower) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(requiredSkills)) * 100
}

func availabilityBonus(a Availability) float64 {
	switch a {
	case AvailabilityAvailable:
		return 25
	case AvailabilityLimited:
		return 15
	default:
		return 0
	}
}

func roleBonus(r Role) float64 {
	if r == RoleAdmin {
		return 15
	}
	return 10
}

// ScoreCandidate computes the suggestion record for one candidate against
// one gap's required skills. The caller is responsible for excluding
// candidates absent during the gap window.
func ScoreCandidate(candidate Employee, requiredSkills []string) CoverageSuggestion {
	match := SkillMatch(candidate.Skills, requiredSkills)

	score := 50.0
	score += match * 0.4
	score += float64(100-candidate.CurrentWorkload) * 0.2
	score += availabilityBonus(candidate.Availability)
	score += roleBonus(candidate.Role)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return CoverageSuggestion{
		EmployeeID:     candidate.ID,
		EmployeeName:   candidate.Name,
		Score:          int(math.Round(score)),
		Reason:         suggestionReason(candidate, match),
		Availability:   candidate.Availability,
		SkillMatch:     int(math.Round(math.Min(match, 100))),
		WorkloadImpact: candidate.CurrentWorkload,
	}
}

// suggestionReason composes the human-readable justification from fixed
// thresholds. Clauses are independent and ordered; when none fires the
// candidate is simply "available for coverage".
func suggestionReason(candidate Employee, skillMatch float64) string {
	var parts []string

	switch {
	case skillMatch > 80:
		parts = append(parts, "excellent skill match")
	case skillMatch > 60:
		parts = append(parts, "good skill match")
	case skillMatch > 40:
		parts = append(parts, "partial skill match")
	}

	switch candidate.Availability {
	case AvailabilityAvailable:
		parts = append(parts, "fully available")
	case AvailabilityLimited:
		parts = append(parts, "limited availability")
	}

	if candidate.CurrentWorkload < 50 {
		parts = append(parts, "low current workload")
	} else if candidate.CurrentWorkload > 80 {
		parts = append(parts, "high workload impact")
	}

	if candidate.Department != "" {
		parts = append(parts, candidate.Department+" department")
	}

	if len(parts) == 0 {
		return "available for coverage"
	}
	return strings.Join(parts, ", ")
}

// RankCandidates scores every roster member who is present during the gap
// window and returns the top suggestions, best first. Employees with an
// approved absence overlapping the window are excluded before scoring.
// excludeEmployee removes the person being covered for; pass "" when ranking
// for an organization-wide gap.
func RankCandidates(
	roster []Employee,
	requests []VacationRequest,
	window DateRange,
	requiredSkills []string,
	excludeEmployee EmployeeID,
) []CoverageSuggestion {
	absent := make(map[EmployeeID]struct{})
	for _, r := range requests {
		if r.Status == StatusApproved && r.Range.Overlaps(window) {
			absent[r.EmployeeID] = struct{}{}
		}
	}

	var suggestions []CoverageSuggestion
	for _, emp := range roster {
		if emp.ID == excludeEmployee {
			continue
		}
		if _, away := absent[emp.ID]; away {
			continue
		}
		suggestions = append(suggestions, ScoreCandidate(emp, requiredSkills))
	}

	// Stable order for identical snapshots: score desc, then employee id.
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].EmployeeID < suggestions[j].EmployeeID
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}
