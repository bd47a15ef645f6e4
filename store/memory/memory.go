// Package memory provides an in-memory attendance.Store for testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/warp/attendance-engine/attendance"
	"github.com/warp/attendance-engine/calendar"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Store struct {
	mu        sync.RWMutex
	employees map[string]attendance.Employee
	records   map[recordKey]attendance.StoredRecord
	overrides map[string]calendar.TakenState
}

type recordKey struct {
	EmployeeID string
	DateKey    string
}

var _ attendance.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		employees: make(map[string]attendance.Employee),
		records:   make(map[recordKey]attendance.StoredRecord),
		overrides: make(map[string]calendar.TakenState),
	}
}

func (m *Store) SaveEmployee(_ context.Context, e attendance.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	m.employees[e.ID] = e
	return nil
}

func (m *Store) GetEmployee(_ context.Context, id string) (*attendance.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *Store) ListEmployees(_ context.Context) ([]attendance.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]attendance.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *Store) SaveRecord(_ context.Context, r attendance.StoredRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	m.records[recordKey{EmployeeID: r.EmployeeID, DateKey: r.Date.Key()}] = r
	return nil
}

func (m *Store) ListRecords(_ context.Context, employeeID string, year int, month time.Month) ([]attendance.StoredRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []attendance.StoredRecord
	for k, r := range m.records {
		if k.EmployeeID == employeeID && r.Date.Year() == year && r.Date.Month() == month {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *Store) SetOverride(_ context.Context, dateKey string, state calendar.TakenState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := calendar.ParseKey(dateKey); err != nil {
		return err
	}
	m.overrides[dateKey] = state
	return nil
}

func (m *Store) OverridesForMonth(ctx context.Context, year int, month time.Month) (calendar.OverrideMap, error) {
	first, err := calendar.New(year, month, 1)
	if err != nil {
		return nil, err
	}
	last := first.AddDays(calendar.DaysIn(year, month) - 1)
	return m.OverridesForRange(ctx, first, last)
}

func (m *Store) OverridesForRange(_ context.Context, start, end calendar.Date) (calendar.OverrideMap, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Canonical keys sort chronologically, so string comparison is enough.
	result := make(calendar.OverrideMap)
	for key, state := range m.overrides {
		if key >= start.Key() && key <= end.Key() {
			result[key] = state
		}
	}
	return result, nil
}
