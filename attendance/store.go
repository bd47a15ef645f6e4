package attendance

import (
	"context"
	"time"

	"github.com/warp/attendance-engine/calendar"
)

// =============================================================================
// STORAGE INTERFACES
// =============================================================================
// The engine itself is pure; persistence belongs to the surrounding system.
// These interfaces describe the collaborator-owned data the API layer loads
// before calling into the engine: attendance records, holiday override
// snapshots, and the employees that own them. Implementations live in
// store/sqlite (production) and store/memory (tests).

// Employee is the owning entity for attendance records.
type Employee struct {
	ID        string
	Name      string
	Email     string
	JoinDate  calendar.Date
	CreatedAt time.Time
}

// StoredRecord is a persisted attendance record with its identity and owner.
type StoredRecord struct {
	ID         string
	EmployeeID string
	Record
	CreatedAt time.Time
}

// EmployeeStore persists employees.
type EmployeeStore interface {
	SaveEmployee(ctx context.Context, e Employee) error
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
}

// RecordStore persists attendance records.
type RecordStore interface {
	// SaveRecord inserts a record; a second record for the same employee
	// and date replaces the first (latest submission wins).
	SaveRecord(ctx context.Context, r StoredRecord) error

	// ListRecords returns the employee's records for one month, ordered by
	// date ascending.
	ListRecords(ctx context.Context, employeeID string, year int, month time.Month) ([]StoredRecord, error)
}

// OverrideStore persists the leave-management system's optional-holiday
// taken/not-taken decisions. Reads return snapshots; the engine never holds
// a reference across queries.
type OverrideStore interface {
	SetOverride(ctx context.Context, dateKey string, state calendar.TakenState) error
	OverridesForMonth(ctx context.Context, year int, month time.Month) (calendar.OverrideMap, error)

	// OverridesForRange returns one merged snapshot covering [start, end].
	OverridesForRange(ctx context.Context, start, end calendar.Date) (calendar.OverrideMap, error)
}

// Store is the combined persistence surface the API layer depends on.
type Store interface {
	EmployeeStore
	RecordStore
	OverrideStore
}
