/*
request.go - Vacation request lifecycle

PURPOSE:
  Registration and approval workflow for vacation requests:

    Create  -> pending   (validates range, duplicates, allowance)
    Approve -> approved  (returns the engine's conflict analysis)
    Reject  -> rejected  (releases the allowance hold)
    Cancel  -> deleted   (pending requests only)

  Same-employee overlap is rejected at creation as a duplicate; that is why
  the conflict detector never has to consider it.

APPROVAL AND CONFLICTS:
  Approve surfaces the coverage engine's conflict analysis for the approved
  request so the approving admin sees the staffing impact of what they just
  signed off. A nil analysis means no conflict.

SEE ALSO:
  - allowance.go: Day charging
  - ../coverage/analyzer.go: The analysis run on approval
*/
package vacation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
)

// CreateRequestInput carries everything needed to register a request.
type CreateRequestInput struct {
	EmployeeID     coverage.EmployeeID
	Start          coverage.Date
	End            coverage.Date
	CoverageSkills []string
	Priority       string
}

// RequestService orchestrates the request lifecycle.
type RequestService struct {
	Organizations OrganizationStore
	Employees     EmployeeStore
	Requests      RequestStore
	Holidays      HolidayStore
	Allowances    AllowanceStore

	// Analyzer, when set, is consulted on approval to report conflicts.
	Analyzer *coverage.Analyzer
}

// Create registers a new pending request after validating the range,
// checking for same-employee overlap and enforcing the year's allowance.
func (s *RequestService) Create(ctx context.Context, input CreateRequestInput) (*coverage.VacationRequest, error) {
	emp, err := s.Employees.EmployeeByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	request := coverage.VacationRequest{
		ID:             coverage.RequestID(uuid.NewString()),
		EmployeeID:     emp.ID,
		OrganizationID: emp.OrganizationID,
		Range:          coverage.NewDateRange(input.Start, input.End),
		Status:         coverage.StatusPending,
		CoverageSkills: input.CoverageSkills,
		Priority:       input.Priority,
	}
	if err := ValidateRequest(request); err != nil {
		return nil, err
	}

	existing, err := s.Requests.RequestsByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.Counts() && r.Range.Overlaps(request.Range) {
			return nil, fmt.Errorf("%w: overlaps %s %s", ErrDuplicateRequest, r.ID, r.Range)
		}
	}

	holidays, err := s.holidaySet(ctx, request.Range)
	if err != nil {
		return nil, err
	}
	if coverage.BusinessDays(request.Range, holidays) == 0 {
		return nil, ErrNoWorkingDays
	}

	if err := s.checkAllowance(ctx, emp.ID, request, existing); err != nil {
		return nil, err
	}

	if err := s.Requests.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return &request, nil
}

// checkAllowance verifies the request fits the remaining allowance of every
// calendar year it touches.
func (s *RequestService) checkAllowance(ctx context.Context, employeeID coverage.EmployeeID, request coverage.VacationRequest, existing []coverage.VacationRequest) error {
	for year := request.Range.Start.Time().Year(); year <= request.Range.End.Time().Year(); year++ {
		allowance, err := s.allowanceFor(ctx, employeeID, year)
		if err != nil {
			return err
		}

		holidays, err := s.holidaySet(ctx, yearRange(year))
		if err != nil {
			return err
		}

		summary := SummarizeAllowance(*allowance, existing, holidays)
		charged := ChargedDays(request, year, holidays)
		if charged.GreaterThan(summary.RemainingDays) {
			return &InsufficientAllowanceError{
				EmployeeID: employeeID,
				Year:       year,
				Remaining:  summary.RemainingDays,
				Requested:  charged,
			}
		}
	}
	return nil
}

// Approve transitions a pending request to approved and reports the
// resulting coverage conflicts, if any.
func (s *RequestService) Approve(ctx context.Context, id coverage.RequestID) (*coverage.ConflictAnalysis, error) {
	request, err := s.pendingRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Requests.UpdateRequestStatus(ctx, request.ID, coverage.StatusApproved); err != nil {
		return nil, err
	}

	if s.Analyzer == nil {
		return nil, nil
	}
	return s.Analyzer.AnalyzeRequestConflicts(ctx, request.ID)
}

// Reject transitions a pending request to rejected, releasing its allowance
// hold. Rejected requests stay in storage but are invisible to every
// conflict and coverage computation.
func (s *RequestService) Reject(ctx context.Context, id coverage.RequestID) error {
	request, err := s.pendingRequest(ctx, id)
	if err != nil {
		return err
	}
	return s.Requests.UpdateRequestStatus(ctx, request.ID, coverage.StatusRejected)
}

// Cancel removes a pending request entirely.
func (s *RequestService) Cancel(ctx context.Context, id coverage.RequestID) error {
	request, err := s.pendingRequest(ctx, id)
	if err != nil {
		return err
	}
	return s.Requests.DeleteRequest(ctx, request.ID)
}

// AllowanceSummaryFor computes the current allowance balance of an employee
// for one calendar year.
func (s *RequestService) AllowanceSummaryFor(ctx context.Context, employeeID coverage.EmployeeID, year int) (*AllowanceSummary, error) {
	if _, err := s.Employees.EmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}

	allowance, err := s.allowanceFor(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	requests, err := s.Requests.RequestsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	holidays, err := s.holidaySet(ctx, yearRange(year))
	if err != nil {
		return nil, err
	}

	summary := SummarizeAllowance(*allowance, requests, holidays)
	return &summary, nil
}

func (s *RequestService) pendingRequest(ctx context.Context, id coverage.RequestID) (*coverage.VacationRequest, error) {
	request, err := s.Requests.RequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != coverage.StatusPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrInvalidTransition, id, request.Status)
	}
	return request, nil
}

func (s *RequestService) allowanceFor(ctx context.Context, employeeID coverage.EmployeeID, year int) (*Allowance, error) {
	allowance, err := s.Allowances.AllowanceFor(ctx, employeeID, year)
	if err == nil {
		return allowance, nil
	}
	if errors.Is(err, ErrAllowanceNotFound) {
		return &Allowance{EmployeeID: employeeID, Year: year, EntitledDays: DefaultEntitlementDays}, nil
	}
	return nil, err
}

func (s *RequestService) holidaySet(ctx context.Context, r coverage.DateRange) (coverage.HolidaySet, error) {
	dates, err := s.Holidays.HolidayDatesInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	return coverage.NewHolidaySet(dates), nil
}
