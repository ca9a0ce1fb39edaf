/*
conflict.go - Conflict detection between overlapping vacation requests

PURPOSE:
  Identifies which approved requests conflict with a target request, and
  aggregates the numbers the severity classifier needs: distinct affected
  employees, total overlapping days, departments and critical roles touched.

CONFLICT RULES:
  - Two requests conflict iff their ranges overlap AND they belong to
    different employees.
  - A request never conflicts with itself or with another request from the
    same employee (same-employee overlap is rejected upstream as a
    duplicate request).
  - For the target-request view only APPROVED counterparts count; the
    symmetric pending view (ConflictSets) considers everything non-rejected.

SEE ALSO:
  - calendar.go: Overlap primitives
  - severity.go: Consumes the aggregated counts
*/
package coverage

// ConflictReport aggregates the conflicts of one target request.
type ConflictReport struct {
	Target            VacationRequest
	Conflicts         []VacationRequest
	AffectedEmployees []EmployeeID
	TotalOverlapDays  int
	Departments       []string
	CriticalRoles     int
}

// HasConflicts reports whether any conflicting request was found.
func (r ConflictReport) HasConflicts() bool { return len(r.Conflicts) > 0 }

// FindConflicts returns the approved candidates that conflict with target:
// overlapping range, different employee. Candidate order is preserved.
func FindConflicts(target VacationRequest, candidates []VacationRequest) []VacationRequest {
	var conflicts []VacationRequest
	for _, c := range candidates {
		if c.ID == target.ID || c.EmployeeID == target.EmployeeID {
			continue
		}
		if c.Status != StatusApproved {
			continue
		}
		if target.Range.Overlaps(c.Range) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts
}

// BuildConflictReport finds the conflicts of target among candidates and
// resolves the affected employees against the roster snapshot to derive
// departments and critical-role counts.
func BuildConflictReport(target VacationRequest, candidates []VacationRequest, roster []Employee) ConflictReport {
	conflicts := FindConflicts(target, candidates)

	byID := make(map[EmployeeID]Employee, len(roster))
	for _, e := range roster {
		byID[e.ID] = e
	}

	seen := make(map[EmployeeID]struct{})
	departments := make(map[string]struct{})
	totalDays := 0
	critical := 0

	for _, c := range conflicts {
		totalDays += target.Range.OverlapDays(c.Range)
		if _, dup := seen[c.EmployeeID]; dup {
			continue
		}
		seen[c.EmployeeID] = struct{}{}
		if emp, ok := byID[c.EmployeeID]; ok {
			if emp.Department != "" {
				departments[emp.Department] = struct{}{}
			}
			if emp.Role.IsCritical() {
				critical++
			}
		}
	}

	affected := make([]EmployeeID, 0, len(seen))
	for _, c := range conflicts {
		if _, ok := seen[c.EmployeeID]; ok {
			affected = append(affected, c.EmployeeID)
			delete(seen, c.EmployeeID)
		}
	}

	return ConflictReport{
		Target:            target,
		Conflicts:         conflicts,
		AffectedEmployees: affected,
		TotalOverlapDays:  totalDays,
		Departments:       sortedStrings(departments),
		CriticalRoles:     critical,
	}
}

// ConflictSets computes the symmetric conflict view over a request set:
// request A conflicts with B iff B appears in A's set and vice versa. Both
// pending and approved requests participate; rejected ones never do.
func ConflictSets(requests []VacationRequest) map[RequestID][]RequestID {
	sets := make(map[RequestID][]RequestID)
	for i, a := range requests {
		if !a.Counts() {
			continue
		}
		for _, b := range requests[i+1:] {
			if !b.Counts() || a.EmployeeID == b.EmployeeID {
				continue
			}
			if a.Range.Overlaps(b.Range) {
				sets[a.ID] = append(sets[a.ID], b.ID)
				sets[b.ID] = append(sets[b.ID], a.ID)
			}
		}
	}
	return sets
}
