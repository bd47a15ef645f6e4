/*
Package sqlite provides the SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements attendance.Store using SQLite. In production, the same
  patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  employees:           Owning entities for attendance records
  attendance_records:  One row per employee per day; latest submission wins
  holiday_overrides:   Leave system's taken/not-taken decisions per date key

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/attendance.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - attendance/store.go: Interface definitions
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/attendance-engine/attendance"
	"github.com/warp/attendance-engine/calendar"
)

// Store implements attendance.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ attendance.Store = (*Store)(nil)

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
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		join_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- One attendance row per employee per day. Resubmission replaces the
	-- earlier row (latest submission wins), enforced by the unique index.
	CREATE TABLE IF NOT EXISTS attendance_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		record_date TEXT NOT NULL,
		status TEXT NOT NULL,
		work_in TEXT,
		work_out TEXT,
		note TEXT,
		extra_worked_date TEXT,
		extra_worked_time TEXT,
		extra_hours TEXT,
		extra_compoff_date TEXT,
		extra_compoff_time TEXT,
		created_at TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_records_employee_date
		ON attendance_records(employee_id, record_date);

	-- Hot path: monthly listing for summaries and dashboards
	CREATE INDEX IF NOT EXISTS idx_records_employee
		ON attendance_records(employee_id, record_date ASC);

	CREATE TABLE IF NOT EXISTS holiday_overrides (
		date_key TEXT PRIMARY KEY,
		state TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts or updates an employee.
func (s *Store) SaveEmployee(ctx context.Context, e attendance.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, email, join_date, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, email = excluded.email,
			join_date = excluded.join_date`,
		e.ID, e.Name, e.Email, e.JoinDate.Key(), createdAt.Format(time.RFC3339))
	return err
}

// GetEmployee returns an employee by ID, or nil when absent.
func (s *Store) GetEmployee(ctx context.Context, id string) (*attendance.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, join_date, created_at FROM employees WHERE id = ?`, id)

	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListEmployees returns all employees ordered by name.
func (s *Store) ListEmployees(ctx context.Context) ([]attendance.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, join_date, created_at FROM employees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []attendance.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*attendance.Employee, error) {
	var e attendance.Employee
	var joinDate, createdAt string
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &joinDate, &createdAt); err != nil {
		return nil, err
	}
	d, err := calendar.ParseKey(joinDate)
	if err != nil {
		return nil, fmt.Errorf("corrupt join_date %q: %w", joinDate, err)
	}
	e.JoinDate = d
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		e.CreatedAt = t
	}
	return &e, nil
}

// =============================================================================
// ATTENDANCE RECORDS
// =============================================================================

// SaveRecord inserts a record, replacing any earlier record for the same
// employee and date.
func (s *Store) SaveRecord(ctx context.Context, r attendance.StoredRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var workedDate, workedTime, hours, compOffDate, compOffTime any
	if r.ExtraWork != nil {
		workedDate = r.ExtraWork.WorkedDate.Key()
		workedTime = r.ExtraWork.WorkedTime
		hours = r.ExtraWork.Hours.String()
		compOffDate = r.ExtraWork.CompOffDate.Key()
		compOffTime = r.ExtraWork.CompOffTime
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attendance_records (
			id, employee_id, record_date, status, work_in, work_out, note,
			extra_worked_date, extra_worked_time, extra_hours,
			extra_compoff_date, extra_compoff_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, record_date) DO UPDATE SET
			status = excluded.status,
			work_in = excluded.work_in,
			work_out = excluded.work_out,
			note = excluded.note,
			extra_worked_date = excluded.extra_worked_date,
			extra_worked_time = excluded.extra_worked_time,
			extra_hours = excluded.extra_hours,
			extra_compoff_date = excluded.extra_compoff_date,
			extra_compoff_time = excluded.extra_compoff_time`,
		r.ID, r.EmployeeID, r.Date.Key(), string(r.Status), r.WorkIn, r.WorkOut, r.Note,
		workedDate, workedTime, hours, compOffDate, compOffTime,
		createdAt.Format(time.RFC3339))
	return err
}

// ListRecords returns the employee's records for one month, ordered by date.
func (s *Store) ListRecords(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.StoredRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	first, err := calendar.New(year, month, 1)
	if err != nil {
		return nil, err
	}
	last := first.AddDays(calendar.DaysIn(year, month) - 1)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, record_date, status, work_in, work_out, note,
			extra_worked_date, extra_worked_time, extra_hours,
			extra_compoff_date, extra_compoff_time, created_at
		FROM attendance_records
		WHERE employee_id = ? AND record_date >= ? AND record_date <= ?
		ORDER BY record_date ASC`,
		employeeID, first.Key(), last.Key())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.StoredRecord
	for rows.Next() {
		var r attendance.StoredRecord
		var recordDate, createdAt string
		var workIn, workOut, note sql.NullString
		var workedDate, workedTime, hours, compOffDate, compOffTime sql.NullString

		if err := rows.Scan(&r.ID, &r.EmployeeID, &recordDate, (*string)(&r.Status),
			&workIn, &workOut, &note,
			&workedDate, &workedTime, &hours, &compOffDate, &compOffTime,
			&createdAt); err != nil {
			return nil, err
		}

		d, err := calendar.ParseKey(recordDate)
		if err != nil {
			return nil, fmt.Errorf("corrupt record_date %q: %w", recordDate, err)
		}
		r.Date = d
		r.WorkIn = workIn.String
		r.WorkOut = workOut.String
		r.Note = note.String
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = t
		}

		if workedDate.Valid && workedDate.String != "" {
			extra, err := scanExtraWork(workedDate.String, workedTime.String,
				hours.String, compOffDate.String, compOffTime.String)
			if err != nil {
				return nil, err
			}
			r.ExtraWork = extra
		}

		records = append(records, r)
	}
	return records, rows.Err()
}

func scanExtraWork(workedDate, workedTime, hours, compOffDate, compOffTime string) (*attendance.ExtraWork, error) {
	wd, err := calendar.ParseKey(workedDate)
	if err != nil {
		return nil, fmt.Errorf("corrupt extra_worked_date %q: %w", workedDate, err)
	}
	cd, err := calendar.ParseKey(compOffDate)
	if err != nil {
		return nil, fmt.Errorf("corrupt extra_compoff_date %q: %w", compOffDate, err)
	}
	h, err := decimal.NewFromString(hours)
	if err != nil {
		return nil, fmt.Errorf("corrupt extra_hours %q: %w", hours, err)
	}
	return &attendance.ExtraWork{
		WorkedDate:  wd,
		WorkedTime:  workedTime,
		Hours:       h,
		CompOffDate: cd,
		CompOffTime: compOffTime,
	}, nil
}

// =============================================================================
// HOLIDAY OVERRIDES
// =============================================================================

// SetOverride records the leave system's taken/not-taken decision for a date.
func (s *Store) SetOverride(ctx context.Context, dateKey string, state calendar.TakenState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := calendar.ParseKey(dateKey); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO holiday_overrides (date_key, state, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(date_key) DO UPDATE SET state = excluded.state,
			updated_at = excluded.updated_at`,
		dateKey, string(state), time.Now().UTC().Format(time.RFC3339))
	return err
}

// OverridesForMonth returns the override snapshot for one month.
func (s *Store) OverridesForMonth(ctx context.Context, year int, month time.Month) (calendar.OverrideMap, error) {
	first, err := calendar.New(year, month, 1)
	if err != nil {
		return nil, err
	}
	last := first.AddDays(calendar.DaysIn(year, month) - 1)
	return s.OverridesForRange(ctx, first, last)
}

// OverridesForRange returns one merged snapshot covering [start, end].
func (s *Store) OverridesForRange(ctx context.Context, start, end calendar.Date) (calendar.OverrideMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT date_key, state FROM holiday_overrides
		WHERE date_key >= ? AND date_key <= ?`,
		start.Key(), end.Key())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make(calendar.OverrideMap)
	for rows.Next() {
		var key, state string
		if err := rows.Scan(&key, &state); err != nil {
			return nil, err
		}
		overrides[key] = calendar.TakenState(state)
	}
	return overrides, rows.Err()
}
