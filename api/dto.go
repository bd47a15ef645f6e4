/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

DATE FORMATS:
  Responses always carry the canonical YYYY-MM-DD key. Requests accept the
  key, and the range endpoints additionally accept the DD-MM-YYYY display
  form that UI date fields submit; normalization happens in the handler,
  never deeper.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/warp/attendance-engine/attendance"
	"github.com/warp/attendance-engine/calendar"
)

// =============================================================================
// CALENDAR TYPES
// =============================================================================

// DayDTO is one classified day of a month.
type DayDTO struct {
	Date        string `json:"date"`
	Weekday     int    `json:"weekday"`
	Kind        string `json:"kind"`
	HolidayName string `json:"holiday_name,omitempty"`
	Taken       string `json:"taken,omitempty"`
}

// MonthDTO is the classified day list for one month.
type MonthDTO struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Days  []DayDTO `json:"days"`
}

// GridCellDTO is one non-empty cell of a month grid; padding cells are null.
type GridCellDTO struct {
	Day     int    `json:"day"`
	DateKey string `json:"date_key"`
}

// MonthGridDTO is the week-aligned rendering grid for one month.
type MonthGridDTO struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Weeks [][]*GridCellDTO `json:"weeks"`
}

// HolidayDTO is one recurring holiday definition.
type HolidayDTO struct {
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Name      string `json:"name"`
	Mandatory bool   `json:"mandatory"`
}

// WorkingDaysDTO is the working-day count for a date range.
type WorkingDaysDTO struct {
	From        string `json:"from"`
	To          string `json:"to"`
	WorkingDays int    `json:"working_days"`
}

// SetOverrideRequest marks an optional holiday taken or not taken.
type SetOverrideRequest struct {
	State string `json:"state"` // "TAKEN" or "NOT_TAKEN"
}

// =============================================================================
// EMPLOYEE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	JoinDate  string `json:"join_date"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinDate string `json:"join_date"`
}

// =============================================================================
// ATTENDANCE TYPES
// =============================================================================

// ExtraWorkDTO is the compensatory-work sub-record on a COMPOFF entry.
type ExtraWorkDTO struct {
	WorkedDate  string  `json:"worked_date"`
	WorkedTime  string  `json:"worked_time"`
	Hours       float64 `json:"hours"`
	CompOffDate string  `json:"compoff_date"`
	CompOffTime string  `json:"compoff_time"`
}

// AttendanceRecordDTO represents one day's attendance in API responses.
type AttendanceRecordDTO struct {
	ID         string        `json:"id"`
	EmployeeID string        `json:"employee_id"`
	Date       string        `json:"date"`
	Status     string        `json:"status"`
	WorkIn     string        `json:"work_in,omitempty"`
	WorkOut    string        `json:"work_out,omitempty"`
	Note       string        `json:"note,omitempty"`
	ExtraWork  *ExtraWorkDTO `json:"extra_work,omitempty"`
	Hours      float64       `json:"hours"`
}

// SubmitAttendanceRequest is the request to record one day's attendance.
type SubmitAttendanceRequest struct {
	Date      string        `json:"date"`
	Status    string        `json:"status"`
	WorkIn    string        `json:"work_in,omitempty"`
	WorkOut   string        `json:"work_out,omitempty"`
	Note      string        `json:"note,omitempty"`
	ExtraWork *ExtraWorkDTO `json:"extra_work,omitempty"`
}

// AttendanceSummaryDTO is the per-record and total hours for a month.
type AttendanceSummaryDTO struct {
	EmployeeID string                `json:"employee_id"`
	Year       int                   `json:"year"`
	Month      int                   `json:"month"`
	Records    []AttendanceRecordDTO `json:"records"`
	TotalHours float64               `json:"total_hours"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toDayDTO(e calendar.DayEntry) DayDTO {
	dto := DayDTO{
		Date:        e.Date.Key(),
		Weekday:     e.Date.Weekday(),
		Kind:        string(e.Classification.Kind),
		HolidayName: e.Classification.HolidayName,
	}
	if e.Classification.Kind == calendar.OptionalHoliday {
		dto.Taken = string(e.Classification.Taken)
	}
	return dto
}

func toRecordDTO(r attendance.StoredRecord, hours float64) AttendanceRecordDTO {
	dto := AttendanceRecordDTO{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date.Key(),
		Status:     string(r.Status),
		WorkIn:     r.WorkIn,
		WorkOut:    r.WorkOut,
		Note:       r.Note,
		Hours:      hours,
	}
	if r.ExtraWork != nil {
		h, _ := r.ExtraWork.Hours.Float64()
		dto.ExtraWork = &ExtraWorkDTO{
			WorkedDate:  r.ExtraWork.WorkedDate.Key(),
			WorkedTime:  r.ExtraWork.WorkedTime,
			Hours:       h,
			CompOffDate: r.ExtraWork.CompOffDate.Key(),
			CompOffTime: r.ExtraWork.CompOffTime,
		}
	}
	return dto
}

func toEmployeeDTO(e attendance.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		JoinDate:  e.JoinDate.Key(),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
