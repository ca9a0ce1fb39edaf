package coverage

import "math"

// =============================================================================
// SEVERITY CLASSIFIER - Pure decision table
// =============================================================================

// ClassifySeverity maps conflict metrics to a severity tier.
//
// Decision table, first match wins:
//
//	criticalRoles > 0 OR gapPct > 75  -> critical
//	conflicts > 2     OR gapPct > 50  -> high
//	conflicts > 1     OR gapPct > 25  -> medium
//	otherwise                         -> low
func ClassifySeverity(conflictCount int, coverageGapPct int, criticalRoles int) Severity {
	switch {
	case criticalRoles > 0 || coverageGapPct > 75:
		return SeverityCritical
	case conflictCount > 2 || coverageGapPct > 50:
		return SeverityHigh
	case conflictCount > 1 || coverageGapPct > 25:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// GapPercentage computes the coverage gap a conflicting request opens:
// min(100, conflictingEmployees / rosterSize * 100). rosterSize must be
// positive; the analyzer rejects empty rosters before calling this.
func GapPercentage(conflictingEmployees, rosterSize int) int {
	pct := int(math.Round(float64(conflictingEmployees) / float64(rosterSize) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
