package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetForDay returns the record for (employeeID, dayStart) or ErrAttendanceNotFound.
	GetForDay(ctx context.Context, employeeID string, day time.Time) (Attendance, error)
	// Upsert inserts the record or, when a row for (employee_id, date) already
	// exists, overwrites its mutable fields. The unique constraint on that pair
	// is the backstop for concurrent marks.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)
	// UpsertMany applies Upsert to each record. Callers run it inside a
	// transaction when all-or-nothing behavior is required.
	UpsertMany(ctx context.Context, records []Attendance) (int, error)
	// ListForDay returns stored records with date in [day, day+24h) restricted
	// to the given employee ids, keyed lookup is left to the caller.
	ListForDay(ctx context.Context, day time.Time, employeeIDs []string) ([]Attendance, error)
	// ListByEmployee returns an employee's records, newest first, optionally
	// bounded by an inclusive date range.
	ListByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]Attendance, error)
	// CountByStatus groups record counts by status over an optional range.
	CountByStatus(ctx context.Context, start, end *time.Time) (map[Status]int64, error)
	Delete(ctx context.Context, id string) error
}
