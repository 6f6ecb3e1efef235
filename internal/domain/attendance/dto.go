package attendance

import (
	"time"

	"github.com/stafflane/hradmin-backend-go/internal/domain/employee"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	EmployeeID   string  `json:"employeeId"`
	Date         string  `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Status       string  `json:"status"`
	CheckInTime  *string `json:"checkInTime,omitempty"`  // RFC3339
	CheckOutTime *string `json:"checkOutTime,omitempty"` // RFC3339
	Notes        *string `json:"notes,omitempty"`
	Location     *string `json:"location,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, half-day, leave, work-from-home",
		})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checkInTime",
				Message: "checkInTime must be an ISO8601 timestamp",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checkOutTime",
				Message: "checkOutTime must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkMarkRequest struct {
	Records []MarkRequest `json:"attendanceRecords"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendanceRecords",
			Message: "attendanceRecords must be a non-empty array",
		})
		return errs
	}

	for _, rec := range r.Records {
		if err := rec.Validate(); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, ve...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayFilter selects the employee roster for a reconciled daily view.
type DayFilter struct {
	Search *string
	Page   int
	Limit  int
}

func (f *DayFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	// Same page window as the employee list: the day view is that list
	// joined with attendance records.
	if f.Limit == 0 {
		f.Limit = 8
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryFilter struct {
	EmployeeID string
	StartDate  *string // YYYY-MM-DD
	EndDate    *string // YYYY-MM-DD
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatsFilter struct {
	StartDate *string
	EndDate   *string
}

func (f *StatsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string   `json:"id,omitempty"`
	EmployeeID   string   `json:"employeeId"`
	EmpID        string   `json:"empId"`
	Name         string   `json:"name"`
	Department   string   `json:"department"`
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	CheckInTime  *string  `json:"checkInTime,omitempty"`
	CheckOutTime *string  `json:"checkOutTime,omitempty"`
	WorkHours    *float64 `json:"workHours,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Virtual      bool     `json:"virtual"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmpID:        a.EmployeeEmpID,
		Name:         a.EmployeeName,
		Department:   a.Department,
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		CheckInTime:  timePtrToString(a.CheckInTime),
		CheckOutTime: timePtrToString(a.CheckOutTime),
		WorkHours:    a.WorkHours,
		Notes:        a.Notes,
		Location:     a.Location,
	}
}

// NewDayEntryResponse serializes a reconciled entry. A virtual entry has no id
// or check-in/out; its identity fields come from the live employee row.
func NewDayEntryResponse(e DayEntry, day time.Time) AttendanceResponse {
	if e.Kind == EntryStored {
		return NewAttendanceResponse(*e.Record)
	}
	return AttendanceResponse{
		EmployeeID: e.Employee.EmployeeID,
		EmpID:      e.Employee.EmpID,
		Name:       e.Employee.Name,
		Department: e.Employee.Department,
		Date:       day.Format("2006-01-02"),
		Status:     string(StatusAbsent),
		Virtual:    true,
	}
}

type DayViewResponse struct {
	Date       string               `json:"date"`
	Entries    []AttendanceResponse `json:"entries"`
	Pagination employee.Pagination  `json:"pagination"`
}

type StatsResponse struct {
	StartDate *string          `json:"startDate,omitempty"`
	EndDate   *string          `json:"endDate,omitempty"`
	Counts    map[string]int64 `json:"counts"`
	Total     int64            `json:"total"`
}
