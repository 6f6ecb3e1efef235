package attendance

import (
	"math"
	"time"

	"github.com/stafflane/hradmin-backend-go/internal/domain/attendance"
	"github.com/stafflane/hradmin-backend-go/internal/domain/employee"
)

// NormalizeDay truncates a timestamp to its day boundary in UTC, so one
// calendar day maps to exactly one attendance slot.
func NormalizeDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeWorkHours derives the worked hours from a check-in/out pair, rounded
// to two decimals. Nil when either end is missing.
func ComputeWorkHours(checkIn, checkOut *time.Time) *float64 {
	if checkIn == nil || checkOut == nil {
		return nil
	}
	hours := checkOut.Sub(*checkIn).Hours()
	rounded := math.Round(hours*100) / 100
	return &rounded
}

// Reconcile merges stored attendance records into the employee roster for one
// day. Every roster employee yields exactly one entry, in roster order: the
// stored record when one exists, otherwise a virtual absent placeholder built
// from the employee's current identity fields.
func Reconcile(roster []employee.Employee, records []attendance.Attendance) []attendance.DayEntry {
	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, record := range records {
		byEmployee[record.EmployeeID] = record
	}

	entries := make([]attendance.DayEntry, 0, len(roster))
	for _, emp := range roster {
		snapshot := attendance.EmployeeSnapshot{
			EmployeeID: emp.ID,
			EmpID:      emp.EmpID,
			Name:       emp.FullName(),
			Department: emp.Department,
		}

		if record, ok := byEmployee[emp.ID]; ok {
			entries = append(entries, attendance.DayEntry{
				Kind:     attendance.EntryStored,
				Record:   &record,
				Employee: snapshot,
			})
			continue
		}

		entries = append(entries, attendance.DayEntry{
			Kind:     attendance.EntryVirtual,
			Employee: snapshot,
		})
	}

	return entries
}
