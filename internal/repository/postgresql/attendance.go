package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafflane/hradmin-backend-go/internal/domain/attendance"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/database"
)

const attendanceColumns = `id, employee_id, date, status, check_in_time, check_out_time,
		work_hours, notes, location, employee_name, employee_emp_id, department,
		created_at, updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckInTime, &a.CheckOutTime,
		&a.WorkHours, &a.Notes, &a.Location, &a.EmployeeName, &a.EmployeeEmpID,
		&a.Department, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendance WHERE id = $1`, attendanceColumns)

	found, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return found, nil
}

// GetForDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetForDay(ctx context.Context, employeeID string, day time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendance WHERE employee_id = $1 AND date = $2`, attendanceColumns)

	found, err := scanAttendance(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance for day: %w", err)
	}

	return found, nil
}

// Upsert implements attendance.AttendanceRepository.
// The unique constraint on (employee_id, date) makes concurrent marks for the
// same day converge on a single row; the update path is last-writer-wins.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendance (
			employee_id, date, status, check_in_time, check_out_time,
			work_hours, notes, location, employee_name, employee_emp_id, department
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			check_in_time = EXCLUDED.check_in_time,
			check_out_time = EXCLUDED.check_out_time,
			work_hours = EXCLUDED.work_hours,
			notes = EXCLUDED.notes,
			location = EXCLUDED.location,
			updated_at = NOW()
		RETURNING %s
	`, attendanceColumns)

	upserted, err := scanAttendance(q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.Status, record.CheckInTime,
		record.CheckOutTime, record.WorkHours, record.Notes, record.Location,
		record.EmployeeName, record.EmployeeEmpID, record.Department,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return upserted, nil
}

// UpsertMany implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpsertMany(ctx context.Context, records []attendance.Attendance) (int, error) {
	count := 0
	for _, record := range records {
		if _, err := r.Upsert(ctx, record); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ListForDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListForDay(ctx context.Context, day time.Time, employeeIDs []string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if len(employeeIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance
		WHERE date >= $1 AND date < $2 AND employee_id = ANY($3)
	`, attendanceColumns)

	nextDay := day.AddDate(0, 0, 1)
	rows, err := q.Query(ctx, query, day, nextDay, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for day: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"employee_id = $1"}
	args := []interface{}{employeeID}
	argIdx := 2

	if start != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *end)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance
		WHERE %s
		ORDER BY date DESC
	`, attendanceColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatus(ctx context.Context, start, end *time.Time) (map[attendance.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if start != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *end)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT status, COUNT(*)
		FROM attendance
		WHERE %s
		GROUP BY status
	`, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int64)
	for rows.Next() {
		var status attendance.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return nil
}
