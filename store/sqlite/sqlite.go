/*
Package sqlite provides the SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements every persistence interface in the vacation package
  (OrganizationStore, EmployeeStore, RequestStore, HolidayStore,
  AllowanceStore) using SQLite. The same store satisfies the coverage
  engine's snapshot interfaces, so one connection serves both the workflow
  and the analyzer.

KEY TABLES:
  organizations:     Tenants
  employees:         Roster entries (skills stored as JSON)
  vacation_requests: Requests with status lifecycle
  holidays:          National/regional public holidays
  allowances:        Per-employee annual entitlements (stored as text for
                     exact decimal round-trips)

DATES:
  All dates are stored as normalized YYYY-MM-DD text. Range queries compare
  lexicographically, which is correct for this format.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block and a single writer at a time is enforced by
  the driver.

USAGE:
  store, err := sqlite.New("./data/planner.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - vacation/store.go: Interface definitions
  - vacation/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation"
)

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
}

// Compile-time interface checks.
var (
	_ vacation.OrganizationStore = (*Store)(nil)
	_ vacation.EmployeeStore     = (*Store)(nil)
	_ vacation.RequestStore      = (*Store)(nil)
	_ vacation.HolidayStore      = (*Store)(nil)
	_ vacation.AllowanceStore    = (*Store)(nil)
)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL REFERENCES organizations(id),
		name TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		skills TEXT NOT NULL DEFAULT '[]',
		current_workload INTEGER NOT NULL DEFAULT 0,
		availability TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_employees_org ON employees(organization_id);

	CREATE TABLE IF NOT EXISTS vacation_requests (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		organization_id TEXT NOT NULL REFERENCES organizations(id),
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		status TEXT NOT NULL,
		coverage_skills TEXT NOT NULL DEFAULT '[]',
		priority TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_requests_org_dates
		ON vacation_requests(organization_id, start_date, end_date);
	CREATE INDEX IF NOT EXISTS idx_requests_employee
		ON vacation_requests(employee_id);

	CREATE TABLE IF NOT EXISTS holidays (
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		scope TEXT NOT NULL,
		region TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (date, region)
	);

	CREATE TABLE IF NOT EXISTS allowances (
		employee_id TEXT NOT NULL REFERENCES employees(id),
		year INTEGER NOT NULL,
		entitled_days TEXT NOT NULL,
		PRIMARY KEY (employee_id, year)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ORGANIZATIONS
// =============================================================================

func (s *Store) CreateOrganization(ctx context.Context, org vacation.Organization) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO organizations (id, name) VALUES (?, ?)`,
		string(org.ID), org.Name)
	return err
}

func (s *Store) OrganizationByID(ctx context.Context, id coverage.OrganizationID) (*vacation.Organization, error) {
	var org vacation.Organization
	var orgID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM organizations WHERE id = ?`, string(id)).
		Scan(&orgID, &org.Name)
	if err == sql.ErrNoRows {
		return nil, coverage.ErrOrganizationNotFound
	}
	if err != nil {
		return nil, err
	}
	org.ID = coverage.OrganizationID(orgID)
	return &org, nil
}

func (s *Store) ListOrganizations(ctx context.Context) ([]vacation.Organization, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM organizations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []vacation.Organization
	for rows.Next() {
		var org vacation.Organization
		var id string
		if err := rows.Scan(&id, &org.Name); err != nil {
			return nil, err
		}
		org.ID = coverage.OrganizationID(id)
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) CreateEmployee(ctx context.Context, e vacation.Employee) error {
	if err := vacation.ValidateEmployee(e); err != nil {
		return err
	}
	skills, err := json.Marshal(e.Skills)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO employees (id, organization_id, name, department, role, skills, current_workload, availability)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(e.ID), string(e.OrganizationID), e.Name, e.Department,
		string(e.Role), string(skills), e.CurrentWorkload, string(e.Availability))
	return err
}

func (s *Store) EmployeeByID(ctx context.Context, id coverage.EmployeeID) (*vacation.Employee, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, organization_id, name, department, role, skills, current_workload, availability
		 FROM employees WHERE id = ?`, string(id))
	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, vacation.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Store) RosterByOrganization(ctx context.Context, orgID coverage.OrganizationID) ([]coverage.Employee, error) {
	if _, err := s.OrganizationByID(ctx, orgID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, organization_id, name, department, role, skills, current_workload, availability
		 FROM employees WHERE organization_id = ? ORDER BY id`, string(orgID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []coverage.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		roster = append(roster, e.Employee)
	}
	return roster, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*vacation.Employee, error) {
	var e vacation.Employee
	var id, orgID, role, skills, availability string
	if err := row.Scan(&id, &orgID, &e.Name, &e.Department, &role, &skills, &e.CurrentWorkload, &availability); err != nil {
		return nil, err
	}
	e.ID = coverage.EmployeeID(id)
	e.OrganizationID = coverage.OrganizationID(orgID)
	e.Role = coverage.Role(role)
	e.Availability = coverage.Availability(availability)
	if err := json.Unmarshal([]byte(skills), &e.Skills); err != nil {
		return nil, fmt.Errorf("corrupt skills for employee %s: %w", id, err)
	}
	return &e, nil
}

// =============================================================================
// REQUESTS
// =============================================================================

func (s *Store) CreateRequest(ctx context.Context, r coverage.VacationRequest) error {
	if err := vacation.ValidateRequest(r); err != nil {
		return err
	}
	skills, err := json.Marshal(r.CoverageSkills)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO vacation_requests (id, employee_id, organization_id, start_date, end_date, status, coverage_skills, priority)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(r.ID), string(r.EmployeeID), string(r.OrganizationID),
		r.Range.Start.String(), r.Range.End.String(), string(r.Status), string(skills), r.Priority)
	return err
}

func (s *Store) RequestByID(ctx context.Context, id coverage.RequestID) (*coverage.VacationRequest, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, employee_id, organization_id, start_date, end_date, status, coverage_skills, priority
		 FROM vacation_requests WHERE id = ?`, string(id))
	r, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return nil, coverage.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Store) UpdateRequestStatus(ctx context.Context, id coverage.RequestID, status coverage.RequestStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE vacation_requests SET status = ? WHERE id = ?`,
		string(status), string(id))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return coverage.ErrRequestNotFound
	}
	return nil
}

func (s *Store) DeleteRequest(ctx context.Context, id coverage.RequestID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM vacation_requests WHERE id = ?`, string(id))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return coverage.ErrRequestNotFound
	}
	return nil
}

func (s *Store) RequestsInRange(ctx context.Context, orgID coverage.OrganizationID, r coverage.DateRange) ([]coverage.VacationRequest, error) {
	// Inclusive intersection: start <= r.End AND end >= r.Start.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, organization_id, start_date, end_date, status, coverage_skills, priority
		 FROM vacation_requests
		 WHERE organization_id = ? AND start_date <= ? AND end_date >= ?
		 ORDER BY start_date, id`,
		string(orgID), r.End.String(), r.Start.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (s *Store) RequestsByEmployee(ctx context.Context, id coverage.EmployeeID) ([]coverage.VacationRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, organization_id, start_date, end_date, status, coverage_skills, priority
		 FROM vacation_requests WHERE employee_id = ? ORDER BY start_date, id`, string(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func collectRequests(rows *sql.Rows) ([]coverage.VacationRequest, error) {
	var out []coverage.VacationRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func scanRequest(row rowScanner) (*coverage.VacationRequest, error) {
	var r coverage.VacationRequest
	var id, empID, orgID, start, end, status, skills string
	if err := row.Scan(&id, &empID, &orgID, &start, &end, &status, &skills, &r.Priority); err != nil {
		return nil, err
	}
	startDate, err := coverage.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("corrupt start date for request %s: %w", id, err)
	}
	endDate, err := coverage.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("corrupt end date for request %s: %w", id, err)
	}
	r.ID = coverage.RequestID(id)
	r.EmployeeID = coverage.EmployeeID(empID)
	r.OrganizationID = coverage.OrganizationID(orgID)
	r.Range = coverage.NewDateRange(startDate, endDate)
	r.Status = coverage.RequestStatus(status)
	if err := json.Unmarshal([]byte(skills), &r.CoverageSkills); err != nil {
		return nil, fmt.Errorf("corrupt coverage skills for request %s: %w", id, err)
	}
	return &r, nil
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) AddHoliday(ctx context.Context, h vacation.Holiday) error {
	if err := vacation.ValidateHoliday(h); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO holidays (date, name, scope, region) VALUES (?, ?, ?, ?)`,
		h.Date.String(), h.Name, string(h.Scope), h.Region)
	return err
}

func (s *Store) ListHolidays(ctx context.Context) ([]vacation.Holiday, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, name, scope, region FROM holidays ORDER BY date, region`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []vacation.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

func (s *Store) HolidayDatesInRange(ctx context.Context, r coverage.DateRange) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT date FROM holidays WHERE date >= ? AND date <= ? ORDER BY date`,
		r.Start.String(), r.End.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func scanHoliday(row rowScanner) (*vacation.Holiday, error) {
	var h vacation.Holiday
	var date, scope string
	if err := row.Scan(&date, &h.Name, &scope, &h.Region); err != nil {
		return nil, err
	}
	d, err := coverage.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("corrupt holiday date %q: %w", date, err)
	}
	h.Date = d
	h.Scope = vacation.HolidayScope(scope)
	return &h, nil
}

// =============================================================================
// ALLOWANCES
// =============================================================================

func (s *Store) SetAllowance(ctx context.Context, a vacation.Allowance) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO allowances (employee_id, year, entitled_days) VALUES (?, ?, ?)`,
		string(a.EmployeeID), a.Year, a.EntitledDays.String())
	return err
}

func (s *Store) AllowanceFor(ctx context.Context, id coverage.EmployeeID, year int) (*vacation.Allowance, error) {
	var entitled string
	err := s.db.QueryRowContext(ctx,
		`SELECT entitled_days FROM allowances WHERE employee_id = ? AND year = ?`,
		string(id), year).Scan(&entitled)
	if err == sql.ErrNoRows {
		return nil, vacation.ErrAllowanceNotFound
	}
	if err != nil {
		return nil, err
	}

	days, err := decimal.NewFromString(entitled)
	if err != nil {
		return nil, fmt.Errorf("corrupt allowance for %s/%d: %w", id, year, err)
	}
	return &vacation.Allowance{EmployeeID: id, Year: year, EntitledDays: days}, nil
}
