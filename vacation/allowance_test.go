package vacation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation"
)

func TestChargedDays_ClippedToYear(t *testing.T) {
	// GIVEN: A request spanning the 2025/2026 year boundary
	// Mon 2025-12-29 .. Fri 2026-01-02
	req := coverage.VacationRequest{
		ID:         "req-1",
		EmployeeID: "emp-a",
		Range: coverage.NewDateRange(
			coverage.NewDate(2025, time.December, 29),
			coverage.NewDate(2026, time.January, 2),
		),
		Status: coverage.StatusApproved,
	}

	// 2025 part: Mon 29, Tue 30, Wed 31 = 3 business days.
	charged2025 := vacation.ChargedDays(req, 2025, nil)
	assert.True(t, charged2025.Equal(decimal.NewFromInt(3)), "2025 charge = %s", charged2025)

	// 2026 part: Thu 1, Fri 2 = 2 business days; New Year holiday removes one.
	holidays := coverage.NewHolidaySet([]string{"2026-01-01"})
	charged2026 := vacation.ChargedDays(req, 2026, holidays)
	assert.True(t, charged2026.Equal(decimal.NewFromInt(1)), "2026 charge = %s", charged2026)

	// A year the request never touches charges nothing.
	assert.True(t, vacation.ChargedDays(req, 2024, nil).IsZero())
}

func TestSummarizeAllowance_IgnoresOtherEmployees(t *testing.T) {
	a := vacation.Allowance{EmployeeID: "emp-a", Year: 2025, EntitledDays: decimal.NewFromInt(30)}
	requests := []coverage.VacationRequest{
		{
			ID: "req-1", EmployeeID: "emp-b",
			Range:  coverage.NewDateRange(coverage.NewDate(2025, time.March, 10), coverage.NewDate(2025, time.March, 14)),
			Status: coverage.StatusApproved,
		},
	}

	summary := vacation.SummarizeAllowance(a, requests, nil)
	assert.True(t, summary.UsedDays.IsZero())
	assert.True(t, summary.RemainingDays.Equal(decimal.NewFromInt(30)))
}
