package vacation_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestService(t *testing.T) (*vacation.RequestService, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.CreateOrganization(ctx, vacation.Organization{ID: "org-1", Name: "Acme"}))
	for _, e := range []vacation.Employee{
		testEmployee("emp-a", "engineering", coverage.RoleEmployee),
		testEmployee("emp-b", "engineering", coverage.RoleEmployee),
		testEmployee("emp-c", "sales", coverage.RoleAdmin),
	} {
		require.NoError(t, mem.CreateEmployee(ctx, e))
	}

	svc := &vacation.RequestService{
		Organizations: mem,
		Employees:     mem,
		Requests:      mem,
		Holidays:      mem,
		Allowances:    mem,
		Analyzer:      &coverage.Analyzer{Roster: mem, Requests: mem, Holidays: mem},
	}
	return svc, mem
}

func testEmployee(id, dept string, role coverage.Role) vacation.Employee {
	return vacation.Employee{
		Employee: coverage.Employee{
			ID:           coverage.EmployeeID(id),
			Name:         "Employee " + id,
			Department:   dept,
			Role:         role,
			Skills:       []string{"go"},
			Availability: coverage.AvailabilityAvailable,
		},
		OrganizationID: "org-1",
	}
}

var (
	mon = coverage.NewDate(2025, time.March, 10)
	fri = coverage.NewDate(2025, time.March, 14)
)

// =============================================================================
// CREATE
// =============================================================================

func TestCreate_PendingRequest(t *testing.T) {
	svc, _ := newTestService(t)

	req, err := svc.Create(context.Background(), vacation.CreateRequestInput{
		EmployeeID: "emp-a",
		Start:      mon,
		End:        fri,
	})
	require.NoError(t, err)

	assert.Equal(t, coverage.StatusPending, req.Status)
	assert.Equal(t, coverage.OrganizationID("org-1"), req.OrganizationID)
	assert.NotEmpty(t, req.ID)
}

func TestCreate_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), vacation.CreateRequestInput{
		EmployeeID: "emp-missing",
		Start:      mon,
		End:        fri,
	})
	assert.ErrorIs(t, err, vacation.ErrEmployeeNotFound)
}

func TestCreate_EndBeforeStart(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), vacation.CreateRequestInput{
		EmployeeID: "emp-a",
		Start:      fri,
		End:        mon,
	})
	assert.ErrorIs(t, err, vacation.ErrInvalidInput)
}

func TestCreate_DuplicateOverlapRejected(t *testing.T) {
	// GIVEN: emp-a already has a pending request Mon-Fri
	// WHEN: emp-a requests an overlapping Wed-Fri
	// THEN: Rejected as a duplicate, never treated as a conflict
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	require.NoError(t, err)

	_, err = svc.Create(ctx, vacation.CreateRequestInput{
		EmployeeID: "emp-a",
		Start:      coverage.NewDate(2025, time.March, 12),
		End:        fri,
	})
	assert.ErrorIs(t, err, vacation.ErrDuplicateRequest)
}

func TestCreate_WeekendOnlyRangeRejected(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), vacation.CreateRequestInput{
		EmployeeID: "emp-a",
		Start:      coverage.NewDate(2025, time.March, 15), // Saturday
		End:        coverage.NewDate(2025, time.March, 16), // Sunday
	})
	assert.ErrorIs(t, err, vacation.ErrNoWorkingDays)
}

func TestCreate_AllowanceOverdrawRejected(t *testing.T) {
	// GIVEN: emp-a has only 3 days of allowance left in 2025
	svc, mem := newTestService(t)
	ctx := context.Background()

	require.NoError(t, mem.SetAllowance(ctx, vacation.Allowance{
		EmployeeID:   "emp-a",
		Year:         2025,
		EntitledDays: decimal.NewFromInt(3),
	}))

	// Mon-Fri charges 5 business days.
	_, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	assert.ErrorIs(t, err, vacation.ErrInsufficientAllowance)

	var detail *vacation.InsufficientAllowanceError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, 2025, detail.Year)
	assert.True(t, detail.Requested.Equal(decimal.NewFromInt(5)))
}

func TestCreate_PendingRequestsHoldAllowance(t *testing.T) {
	// Two pending week-long requests cannot jointly overdraw a 7-day budget.
	svc, mem := newTestService(t)
	ctx := context.Background()

	require.NoError(t, mem.SetAllowance(ctx, vacation.Allowance{
		EmployeeID:   "emp-a",
		Year:         2025,
		EntitledDays: decimal.NewFromInt(7),
	}))

	_, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	require.NoError(t, err)

	_, err = svc.Create(ctx, vacation.CreateRequestInput{
		EmployeeID: "emp-a",
		Start:      coverage.NewDate(2025, time.March, 17),
		End:        coverage.NewDate(2025, time.March, 21),
	})
	assert.ErrorIs(t, err, vacation.ErrInsufficientAllowance)
}

// =============================================================================
// APPROVAL LIFECYCLE
// =============================================================================

func TestApprove_ReportsConflicts(t *testing.T) {
	// GIVEN: emp-b already approved Mon-Fri
	// WHEN: emp-a's overlapping request is approved
	// THEN: The approval surfaces a conflict analysis naming emp-b
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-b", Start: mon, End: fri})
	require.NoError(t, err)
	analysis, err := svc.Approve(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, analysis, "first approval has nothing to conflict with")

	second, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	require.NoError(t, err)
	analysis, err = svc.Approve(ctx, second.ID)
	require.NoError(t, err)

	require.NotNil(t, analysis)
	assert.Equal(t, []coverage.EmployeeID{"emp-b"}, analysis.AffectedEmployees)
	assert.Equal(t, coverage.SeverityMedium, analysis.Severity)
}

func TestApprove_OnlyPending(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, req.ID)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, req.ID)
	assert.ErrorIs(t, err, vacation.ErrInvalidTransition)
}

func TestReject_ReleasesAllowanceHold(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	require.NoError(t, mem.SetAllowance(ctx, vacation.Allowance{
		EmployeeID:   "emp-a",
		Year:         2025,
		EntitledDays: decimal.NewFromInt(5),
	}))

	req, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	require.NoError(t, err)
	require.NoError(t, svc.Reject(ctx, req.ID))

	// The full week fits again after rejection.
	_, err = svc.Create(ctx, vacation.CreateRequestInput{
		EmployeeID: "emp-a",
		Start:      coverage.NewDate(2025, time.March, 17),
		End:        coverage.NewDate(2025, time.March, 21),
	})
	assert.NoError(t, err)
}

func TestCancel_RemovesPendingRequest(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	req, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, req.ID))

	_, err = mem.RequestByID(ctx, req.ID)
	assert.ErrorIs(t, err, coverage.ErrRequestNotFound)
}

// =============================================================================
// ALLOWANCE SUMMARY
// =============================================================================

func TestAllowanceSummaryFor_DefaultEntitlement(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	require.NoError(t, err)
	_, err = svc.Approve(ctx, req.ID)
	require.NoError(t, err)

	summary, err := svc.AllowanceSummaryFor(ctx, "emp-a", 2025)
	require.NoError(t, err)

	assert.True(t, summary.EntitledDays.Equal(decimal.NewFromInt(30)))
	assert.True(t, summary.UsedDays.Equal(decimal.NewFromInt(5)))
	assert.True(t, summary.RemainingDays.Equal(decimal.NewFromInt(25)))
}

func TestAllowanceSummaryFor_HolidayNotCharged(t *testing.T) {
	// A public holiday inside an approved request does not burn allowance.
	svc, mem := newTestService(t)
	ctx := context.Background()

	require.NoError(t, mem.AddHoliday(ctx, vacation.Holiday{
		Date:  coverage.NewDate(2025, time.March, 12),
		Name:  "Test Holiday",
		Scope: vacation.ScopeNational,
	}))

	req, err := svc.Create(ctx, vacation.CreateRequestInput{EmployeeID: "emp-a", Start: mon, End: fri})
	require.NoError(t, err)
	_, err = svc.Approve(ctx, req.ID)
	require.NoError(t, err)

	summary, err := svc.AllowanceSummaryFor(ctx, "emp-a", 2025)
	require.NoError(t, err)
	assert.True(t, summary.UsedDays.Equal(decimal.NewFromInt(4)), "holiday must not be charged, got %s", summary.UsedDays)
}
