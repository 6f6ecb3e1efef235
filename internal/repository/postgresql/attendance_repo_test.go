package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/hradmin-backend-go/internal/domain/attendance"
	"github.com/stafflane/hradmin-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafflane/hradmin-backend-go/internal/service/attendance"
)

func TestAttendanceRepository_UpsertConvergesOnOneRow(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	emp := seedEmployee(t, ctx, employeeRepo, "EMP001", "asha@example.com")

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	first, err := attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID:    emp.ID,
		Date:          day,
		Status:        attendance.StatusPresent,
		EmployeeName:  "Asha Rao",
		EmployeeEmpID: "EMP001",
		Department:    "Engineering",
	})
	require.NoError(t, err)

	second, err := attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID:    emp.ID,
		Date:          day,
		Status:        attendance.StatusHalfDay,
		EmployeeName:  "Asha Rao",
		EmployeeEmpID: "EMP001",
		Department:    "Engineering",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusHalfDay, second.Status)

	records, err := attendanceRepo.ListForDay(ctx, day, []string{emp.ID})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceService_MarkBulkCommits(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	asha := seedEmployee(t, ctx, employeeRepo, "EMP001", "asha@example.com")

	budi, err := employeeRepo.Create(ctx, sampleEmployee("EMP002", "budi@example.com"))
	require.NoError(t, err)

	svc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)

	count, err := svc.MarkBulk(ctx, attendance.BulkMarkRequest{
		Records: []attendance.MarkRequest{
			{EmployeeID: asha.ID, Date: "2024-03-15", Status: "present"},
			{EmployeeID: budi.ID, Date: "2024-03-15", Status: "leave"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records, err := attendanceRepo.ListForDay(ctx, day, []string{asha.ID, budi.ID})
	require.NoError(t, err)
	require.Len(t, records, 2)

	byEmployee := make(map[string]attendance.Status)
	for _, r := range records {
		byEmployee[r.EmployeeID] = r.Status
	}
	assert.Equal(t, attendance.StatusPresent, byEmployee[asha.ID])
	assert.Equal(t, attendance.StatusLeave, byEmployee[budi.ID])
}

func TestAttendanceRepository_ListByEmployeeRange(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	emp := seedEmployee(t, ctx, employeeRepo, "EMP001", "asha@example.com")

	for _, d := range []string{"2024-03-14", "2024-03-15", "2024-03-16"} {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		_, err = attendanceRepo.Upsert(ctx, attendance.Attendance{
			EmployeeID:    emp.ID,
			Date:          day,
			Status:        attendance.StatusPresent,
			EmployeeName:  "Asha Rao",
			EmployeeEmpID: "EMP001",
			Department:    "Engineering",
		})
		require.NoError(t, err)
	}

	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records, err := attendanceRepo.ListByEmployee(ctx, emp.ID, &start, &end)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-15", records[0].Date.Format("2006-01-02"))
}

func TestAttendanceRepository_CountByStatus(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	asha := seedEmployee(t, ctx, employeeRepo, "EMP001", "asha@example.com")
	budi, err := employeeRepo.Create(ctx, sampleEmployee("EMP002", "budi@example.com"))
	require.NoError(t, err)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, rec := range []attendance.Attendance{
		{EmployeeID: asha.ID, Date: day, Status: attendance.StatusPresent, EmployeeName: "Asha Rao", EmployeeEmpID: "EMP001", Department: "Engineering"},
		{EmployeeID: budi.ID, Date: day, Status: attendance.StatusLeave, EmployeeName: "Budi Santoso", EmployeeEmpID: "EMP002", Department: "Finance"},
	} {
		_, err := attendanceRepo.Upsert(ctx, rec)
		require.NoError(t, err)
	}

	counts, err := attendanceRepo.CountByStatus(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[attendance.StatusPresent])
	assert.Equal(t, int64(1), counts[attendance.StatusLeave])
}
