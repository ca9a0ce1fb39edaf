/*
calendar.go - Business-day and interval primitives

PURPOSE:
  The two temporal primitives everything else builds on:
  1. BusinessDays: working-day counts excluding weekends and holidays
  2. DateRange overlap: whether/how much two inclusive ranges intersect

  Every "days used" figure and every conflict-length number in the engine
  comes through here.

SEE ALSO:
  - types.go: Date, DateRange, HolidaySet
  - conflict.go: Uses OverlapDays for conflict length
*/
package coverage

// =============================================================================
// BUSINESS DAY CALCULATOR
// =============================================================================

// BusinessDays counts the working days in r, inclusive on both ends.
// Saturdays, Sundays and dates present in holidays do not count. A single-day
// range that falls on a weekend or holiday yields 0.
func BusinessDays(r DateRange, holidays HolidaySet) int {
	if !r.IsValid() {
		return 0
	}
	count := 0
	for cur := r.Start; cur.BeforeOrEqual(r.End); cur = cur.AddDays(1) {
		if cur.IsWeekend() {
			continue
		}
		if holidays.Contains(cur) {
			continue
		}
		count++
	}
	return count
}

// IsBusinessDay returns true if d is neither a weekend day nor a holiday.
func IsBusinessDay(d Date, holidays HolidaySet) bool {
	return !d.IsWeekend() && !holidays.Contains(d)
}

// =============================================================================
// INTERVAL OVERLAP
// =============================================================================

// Overlaps reports whether two inclusive ranges intersect:
// start1 <= end2 && start2 <= end1. Symmetric.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.BeforeOrEqual(other.End) && other.Start.BeforeOrEqual(r.End)
}

// OverlapDays returns the length of the intersection in whole inclusive
// days: max(0, min(end1,end2) - max(start1,start2) + 1).
func (r DateRange) OverlapDays(other DateRange) int {
	start := r.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := r.End
	if other.End.Before(end) {
		end = other.End
	}
	if start.After(end) {
		return 0
	}
	return DateRange{Start: start, End: end}.Length()
}
