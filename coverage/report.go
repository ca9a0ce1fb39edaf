/*
report.go - Daily team coverage reporting

PURPOSE:
  Computes the day-by-day staffing picture for an organization over a range:
  who is on approved vacation, what fraction of the roster remains available,
  and which departments are left with nobody.

DEFINITIONS:
  - Coverage percentage is department-blind: available / rosterSize, the full
    organization as the denominator.
  - A "gap" is department-wise: a department is a gap on day D when at least
    one of its members is on vacation and zero of its members are available.

  Only APPROVED requests count as absence; pending requests do not reduce
  coverage until someone approves them.

SEE ALSO:
  - recommend.go: Turns the series into textual guidance
  - analyzer.go: Guards against empty rosters before calling in
*/
package coverage

import "math"

// DailyCoverageSeries computes one DayCoverage per calendar day in r,
// inclusive. The roster must be non-empty; the analyzer enforces this.
func DailyCoverageSeries(roster []Employee, requests []VacationRequest, r DateRange) []DayCoverage {
	department := make(map[EmployeeID]string, len(roster))
	for _, e := range roster {
		department[e.ID] = e.Department
	}

	var series []DayCoverage
	for _, day := range r.Days() {
		onVacation := make(map[EmployeeID]struct{})
		for _, req := range requests {
			if req.AbsentOn(day) {
				if _, known := department[req.EmployeeID]; known {
					onVacation[req.EmployeeID] = struct{}{}
				}
			}
		}

		available := len(roster) - len(onVacation)

		// A department vacates entirely -> gap.
		availableByDept := make(map[string]int)
		vacatedDepts := make(map[string]struct{})
		for _, e := range roster {
			if _, away := onVacation[e.ID]; away {
				if e.Department != "" {
					vacatedDepts[e.Department] = struct{}{}
				}
				continue
			}
			availableByDept[e.Department]++
		}
		gaps := make(map[string]struct{})
		for dept := range vacatedDepts {
			if availableByDept[dept] == 0 {
				gaps[dept] = struct{}{}
			}
		}

		series = append(series, DayCoverage{
			Date:        day,
			CoveragePct: roundPct(available, len(roster)),
			Available:   available,
			OnVacation:  len(onVacation),
			Gaps:        sortedStrings(gaps),
		})
	}
	return series
}

// OverallCoverage returns the rounded arithmetic mean of the daily coverage
// percentages. An empty series yields 0.
func OverallCoverage(series []DayCoverage) int {
	if len(series) == 0 {
		return 0
	}
	sum := 0
	for _, day := range series {
		sum += day.CoveragePct
	}
	return int(math.Round(float64(sum) / float64(len(series))))
}

func roundPct(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
