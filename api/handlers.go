/*
handlers.go - HTTP API handlers for the attendance engine

PURPOSE:
  Exposes the calendar and attendance-accounting engine via REST API.
  Handles HTTP request/response, JSON serialization, and delegates to
  the pure engine packages.

ENDPOINTS:
  Calendar:
    GET    /api/calendar/{year}/{month}        Classified day list
    GET    /api/calendar/{year}/{month}/grid   Week-aligned rendering grid
    GET    /api/calendar/working-days          Working-day count for a range
    GET    /api/holidays                       Recurring holiday table

  Overrides (optional-holiday taken/not-taken, owned by leave management):
    GET    /api/overrides/{year}/{month}       Snapshot for a month
    PUT    /api/overrides/{dateKey}            Set one date's state

  Employees & attendance:
    GET    /api/employees                      List employees
    POST   /api/employees                      Create employee
    GET    /api/employees/{id}                 Get employee
    POST   /api/employees/{id}/attendance      Submit a day's record
    GET    /api/employees/{id}/attendance      Records for a month
    GET    /api/employees/{id}/attendance/summary  Per-record and total hours

REQUEST FLOW:
  1. Parse HTTP request; normalize date strings at this boundary only
  2. Load collaborator snapshots (overrides, records) from the store
  3. Call the pure engine (calendar, attendance packages)
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid dates / statuses
  - 404: Resource not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/warp/attendance-engine/attendance"
	"github.com/warp/attendance-engine/calendar"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store      attendance.Store
	Classifier *calendar.Classifier
}

// NewHandler creates a new handler over the given store, classifying against
// the built-in holiday table.
func NewHandler(store attendance.Store) *Handler {
	return &Handler{
		Store:      store,
		Classifier: calendar.NewClassifier(nil),
	}
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// GetMonth returns the classified day list for a month.
// GET /api/calendar/{year}/{month}
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	overrides, err := h.Store.OverridesForMonth(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load overrides", err)
		return
	}

	entries, err := h.Classifier.BuildMonth(year, month, overrides)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	days := make([]DayDTO, len(entries))
	for i, e := range entries {
		days[i] = toDayDTO(e)
	}
	writeJSON(w, http.StatusOK, MonthDTO{Year: year, Month: int(month), Days: days})
}

// GetMonthGrid returns the week-aligned rendering grid for a month.
// GET /api/calendar/{year}/{month}/grid
func (h *Handler) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	grid, err := h.Classifier.BuildMonthGrid(year, month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	weeks := make([][]*GridCellDTO, len(grid))
	for i, row := range grid {
		weeks[i] = make([]*GridCellDTO, len(row))
		for j, cell := range row {
			if cell != nil {
				weeks[i][j] = &GridCellDTO{Day: cell.Day, DateKey: cell.DateKey}
			}
		}
	}
	writeJSON(w, http.StatusOK, MonthGridDTO{Year: year, Month: int(month), Weeks: weeks})
}

// GetWorkingDays counts effective working days in an inclusive range.
// GET /api/calendar/working-days?from=20-01-2025&to=28-01-2025
// Accepts DD-MM-YYYY display form or YYYY-MM-DD keys for both parameters.
func (h *Handler) GetWorkingDays(w http.ResponseWriter, r *http.Request) {
	from, err := calendar.ParseBoundary(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid 'from' date", err)
		return
	}
	to, err := calendar.ParseBoundary(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid 'to' date", err)
		return
	}

	var overrides calendar.OverrideMap
	if !to.Before(from) {
		overrides, err = h.Store.OverridesForRange(r.Context(), from, to)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load overrides", err)
			return
		}
	}

	count := h.Classifier.CountWorkingDays(from, to, overrides)
	writeJSON(w, http.StatusOK, WorkingDaysDTO{
		From:        from.Key(),
		To:          to.Key(),
		WorkingDays: count,
	})
}

// ListHolidays returns the recurring holiday table.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	defs := h.Classifier.Table.Definitions()
	dtos := make([]HolidayDTO, len(defs))
	for i, def := range defs {
		dtos[i] = HolidayDTO{
			Month:     int(def.Month),
			Day:       def.Day,
			Name:      def.Name,
			Mandatory: def.Mandatory,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// OVERRIDE HANDLERS
// =============================================================================

// GetOverrides returns the override snapshot for a month.
// GET /api/overrides/{year}/{month}
func (h *Handler) GetOverrides(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	overrides, err := h.Store.OverridesForMonth(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load overrides", err)
		return
	}
	writeJSON(w, http.StatusOK, overrides)
}

// SetOverride marks an optional holiday taken or not taken for one date.
// PUT /api/overrides/{dateKey}
func (h *Handler) SetOverride(w http.ResponseWriter, r *http.Request) {
	dateKey := chi.URLParam(r, "dateKey")
	if _, err := calendar.ParseKey(dateKey); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date key (use YYYY-MM-DD)", err)
		return
	}

	var req SetOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	state := calendar.TakenState(req.State)
	if state != calendar.Taken && state != calendar.NotTaken {
		writeError(w, http.StatusBadRequest, "State must be TAKEN or NOT_TAKEN", nil)
		return
	}

	if err := h.Store.SetOverride(r.Context(), dateKey, state); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save override", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"date": dateKey, "state": string(state)})
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	joinDate, err := calendar.ParseKey(req.JoinDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid join_date format (use YYYY-MM-DD)", err)
		return
	}

	emp := attendance.Employee{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		JoinDate: joinDate,
	}
	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// =============================================================================
// ATTENDANCE HANDLERS
// =============================================================================

// SubmitAttendance records one day's attendance for an employee.
// POST /api/employees/{id}/attendance
func (h *Handler) SubmitAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	emp, err := h.Store.GetEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}

	var req SubmitAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := calendar.ParseKey(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	record := attendance.Record{
		Date:    date,
		Status:  attendance.Status(req.Status),
		WorkIn:  req.WorkIn,
		WorkOut: req.WorkOut,
		Note:    req.Note,
	}
	if req.ExtraWork != nil {
		extra, err := h.parseExtraWork(req.ExtraWork)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid extra_work dates (use YYYY-MM-DD)", err)
			return
		}
		record.ExtraWork = extra
	}
	if err := record.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid attendance record", err)
		return
	}

	stored := attendance.StoredRecord{EmployeeID: employeeID, Record: record}
	if err := h.Store.SaveRecord(r.Context(), stored); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save record", err)
		return
	}

	hours, _ := attendance.EffectiveHours(record).Float64()
	writeJSON(w, http.StatusCreated, toRecordDTO(stored, hours))
}

// ListAttendance returns an employee's records for a month.
// GET /api/employees/{id}/attendance?year=2025&month=1
func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, _, _, ok := h.loadMonthRecords(w, r)
	if !ok {
		return
	}

	dtos := make([]AttendanceRecordDTO, len(records))
	for i, rec := range records {
		hours, _ := attendance.EffectiveHours(rec.Record).Float64()
		dtos[i] = toRecordDTO(rec, hours)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetAttendanceSummary returns per-record and total hours for a month.
// GET /api/employees/{id}/attendance/summary?year=2025&month=1
func (h *Handler) GetAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	records, year, month, ok := h.loadMonthRecords(w, r)
	if !ok {
		return
	}

	plain := make([]attendance.Record, len(records))
	for i, rec := range records {
		plain[i] = rec.Record
	}
	summary := attendance.Aggregate(plain)

	dtos := make([]AttendanceRecordDTO, len(records))
	for i, rec := range records {
		hours, _ := summary.PerRecord[i].Float64()
		dtos[i] = toRecordDTO(rec, hours)
	}
	total, _ := summary.Total.Float64()

	writeJSON(w, http.StatusOK, AttendanceSummaryDTO{
		EmployeeID: chi.URLParam(r, "id"),
		Year:       year,
		Month:      int(month),
		Records:    dtos,
		TotalHours: total,
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month (use 1-12)", err)
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func (h *Handler) queryYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month (use 1-12)", err)
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func (h *Handler) loadMonthRecords(w http.ResponseWriter, r *http.Request) ([]attendance.StoredRecord, int, time.Month, bool) {
	employeeID := chi.URLParam(r, "id")
	year, month, ok := h.queryYearMonth(w, r)
	if !ok {
		return nil, 0, 0, false
	}

	records, err := h.Store.ListRecords(r.Context(), employeeID, year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return nil, 0, 0, false
	}
	return records, year, month, true
}

func (h *Handler) parseExtraWork(dto *ExtraWorkDTO) (*attendance.ExtraWork, error) {
	workedDate, err := calendar.ParseKey(dto.WorkedDate)
	if err != nil {
		return nil, err
	}
	compOffDate, err := calendar.ParseKey(dto.CompOffDate)
	if err != nil {
		return nil, err
	}
	return &attendance.ExtraWork{
		WorkedDate:  workedDate,
		WorkedTime:  dto.WorkedTime,
		Hours:       decimal.NewFromFloat(dto.Hours),
		CompOffDate: compOffDate,
		CompOffTime: dto.CompOffTime,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
