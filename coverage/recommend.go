package coverage

import (
	"fmt"
	"strings"
)

// =============================================================================
// RECOMMENDATION GENERATOR - Deterministic textual guidance
// =============================================================================

// criticalStaffingThreshold marks a day as critically understaffed.
const criticalStaffingThreshold = 70

// staggerThreshold is the mean coverage below which vacation staggering is
// suggested.
const staggerThreshold = 80

// Recommendations derives short guidance strings from the daily coverage
// series. The rules fire independently and in a fixed order; only when none
// fires does the single positive message appear.
func Recommendations(series []DayCoverage) []string {
	var recs []string

	criticalDays := 0
	gapDepts := make(map[string]struct{})
	for _, day := range series {
		if day.CoveragePct < criticalStaffingThreshold {
			criticalDays++
		}
		for _, dept := range day.Gaps {
			gapDepts[dept] = struct{}{}
		}
	}

	if criticalDays > 0 {
		recs = append(recs, fmt.Sprintf("%d days with critical staffing levels (below %d%% coverage)", criticalDays, criticalStaffingThreshold))
	}

	if len(gapDepts) > 0 {
		recs = append(recs, fmt.Sprintf("department coverage gaps: %s", strings.Join(sortedStrings(gapDepts), ", ")))
	}

	if OverallCoverage(series) < staggerThreshold {
		recs = append(recs, "consider staggering vacation periods to maintain team coverage")
	}

	if len(recs) == 0 {
		recs = append(recs, "good staffing coverage across the selected period")
	}
	return recs
}
