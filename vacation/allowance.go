/*
allowance.go - Per-employee vacation allowance accounting

PURPOSE:
  Tracks how many vacation days an employee is entitled to per calendar year
  and how many an approval would consume. Day charges are business days:
  weekends and public holidays never burn allowance.

  Amounts use decimal.Decimal so half-day entitlements (e.g. 27.5 days) stay
  exact; float64 drift in a balance that gets compared against a request is
  not acceptable.

PENDING vs USED:
  Pending requests hold allowance the same way approved ones consume it, so
  two pending requests cannot jointly overdraw the balance. Rejection
  releases the hold.

SEE ALSO:
  - request.go: Enforces the allowance on request creation
*/
package vacation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
)

// DefaultEntitlementDays applies when no allowance record exists for an
// employee/year.
var DefaultEntitlementDays = decimal.NewFromInt(30)

// Allowance is the annual vacation entitlement of one employee.
type Allowance struct {
	EmployeeID   coverage.EmployeeID `json:"employeeId"`
	Year         int                 `json:"year"`
	EntitledDays decimal.Decimal     `json:"entitledDays"`
}

// AllowanceSummary is the computed balance for one employee/year.
type AllowanceSummary struct {
	EmployeeID    coverage.EmployeeID `json:"employeeId"`
	Year          int                 `json:"year"`
	EntitledDays  decimal.Decimal     `json:"entitledDays"`
	UsedDays      decimal.Decimal     `json:"usedDays"`    // approved
	PendingDays   decimal.Decimal     `json:"pendingDays"` // held
	RemainingDays decimal.Decimal     `json:"remainingDays"`
}

// yearRange is the calendar-year window charges are clipped to.
func yearRange(year int) coverage.DateRange {
	return coverage.NewDateRange(
		coverage.NewDate(year, time.January, 1),
		coverage.NewDate(year, time.December, 31),
	)
}

// ChargedDays returns the business days a request consumes within the given
// calendar year. Ranges spanning a year boundary are charged per year.
func ChargedDays(r coverage.VacationRequest, year int, holidays coverage.HolidaySet) decimal.Decimal {
	yr := yearRange(year)
	if !r.Range.Overlaps(yr) {
		return decimal.Zero
	}
	clipped := coverage.NewDateRange(
		laterDate(r.Range.Start, yr.Start),
		earlierDate(r.Range.End, yr.End),
	)
	return decimal.NewFromInt(int64(coverage.BusinessDays(clipped, holidays)))
}

// SummarizeAllowance computes the balance from an entitlement and the
// employee's requests. Approved requests count as used, pending ones as
// held; rejected ones never count.
func SummarizeAllowance(a Allowance, requests []coverage.VacationRequest, holidays coverage.HolidaySet) AllowanceSummary {
	used := decimal.Zero
	pending := decimal.Zero
	for _, r := range requests {
		if r.EmployeeID != a.EmployeeID {
			continue
		}
		switch r.Status {
		case coverage.StatusApproved:
			used = used.Add(ChargedDays(r, a.Year, holidays))
		case coverage.StatusPending:
			pending = pending.Add(ChargedDays(r, a.Year, holidays))
		}
	}

	return AllowanceSummary{
		EmployeeID:    a.EmployeeID,
		Year:          a.Year,
		EntitledDays:  a.EntitledDays,
		UsedDays:      used,
		PendingDays:   pending,
		RemainingDays: a.EntitledDays.Sub(used).Sub(pending),
	}
}

func laterDate(a, b coverage.Date) coverage.Date {
	if a.After(b) {
		return a
	}
	return b
}

func earlierDate(a, b coverage.Date) coverage.Date {
	if a.Before(b) {
		return a
	}
	return b
}
