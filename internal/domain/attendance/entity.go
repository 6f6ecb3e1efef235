package attendance

import "time"

type Status string

const (
	StatusPresent      Status = "present"
	StatusAbsent       Status = "absent"
	StatusHalfDay      Status = "half-day"
	StatusLeave        Status = "leave"
	StatusWorkFromHome Status = "work-from-home"
)

// Statuses lists every accepted attendance status.
var Statuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusHalfDay),
	string(StatusLeave),
	string(StatusWorkFromHome),
}

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time // normalized to day start
	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	WorkHours    *float64
	Notes        *string
	Location     *string

	// Snapshot of the employee at record-creation time. Not refreshed on
	// later employee edits.
	EmployeeName  string
	EmployeeEmpID string
	Department    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeSnapshot carries the identity fields a virtual entry needs.
type EmployeeSnapshot struct {
	EmployeeID string
	EmpID      string
	Name       string
	Department string
}

type EntryKind int

const (
	EntryStored EntryKind = iota
	EntryVirtual
)

// DayEntry is one row of a reconciled daily view: either a stored attendance
// record or a synthesized absent placeholder for an employee without one.
type DayEntry struct {
	Kind     EntryKind
	Record   *Attendance      // set when Kind == EntryStored
	Employee EmployeeSnapshot // always set
}

// Status returns the effective status of the entry; virtual entries are absent.
func (e DayEntry) EffectiveStatus() Status {
	if e.Kind == EntryStored {
		return e.Record.Status
	}
	return StatusAbsent
}
