package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stafflane/hradmin-backend-go/internal/domain/attendance"
	"github.com/stafflane/hradmin-backend-go/internal/domain/employee"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/database"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/validator"
	"github.com/stafflane/hradmin-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func parseMarkTimes(req attendance.MarkRequest) (day time.Time, checkIn, checkOut *time.Time) {
	if req.Date != "" {
		parsed, _ := validator.IsValidDate(req.Date)
		day = NormalizeDay(parsed)
	} else {
		day = NormalizeDay(time.Now())
	}

	if req.CheckInTime != nil {
		if t, ok := validator.IsValidDateTime(*req.CheckInTime); ok {
			checkIn = &t
		}
	}
	if req.CheckOutTime != nil {
		if t, ok := validator.IsValidDateTime(*req.CheckOutTime); ok {
			checkOut = &t
		}
	}
	return day, checkIn, checkOut
}

// Mark implements attendance.AttendanceService.
//
// An existing record for (employee, day) is merged field-level: status is
// always replaced, check-in/out, notes and location only when the request
// supplies them. The employee snapshot is written at creation and never
// refreshed afterwards.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	day, checkIn, checkOut := parseMarkTimes(req)

	record := attendance.Attendance{
		EmployeeID:    emp.ID,
		Date:          day,
		Status:        attendance.Status(req.Status),
		CheckInTime:   checkIn,
		CheckOutTime:  checkOut,
		Notes:         req.Notes,
		Location:      req.Location,
		EmployeeName:  emp.FullName(),
		EmployeeEmpID: emp.EmpID,
		Department:    emp.Department,
	}

	existing, err := s.attendanceRepo.GetForDay(ctx, emp.ID, day)
	if err == nil {
		// Field-level merge: missing incoming values keep the stored ones
		if record.CheckInTime == nil {
			record.CheckInTime = existing.CheckInTime
		}
		if record.CheckOutTime == nil {
			record.CheckOutTime = existing.CheckOutTime
		}
		if record.Notes == nil {
			record.Notes = existing.Notes
		}
		if record.Location == nil {
			record.Location = existing.Location
		}
		// Snapshot fields stay as written at creation time
		record.EmployeeName = existing.EmployeeName
		record.EmployeeEmpID = existing.EmployeeEmpID
		record.Department = existing.Department
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up existing record: %w", err)
	}

	record.WorkHours = ComputeWorkHours(record.CheckInTime, record.CheckOutTime)

	upserted, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(upserted), nil
}

// MarkBulk implements attendance.AttendanceService.
//
// Strict all-or-nothing policy: every employee id is resolved before any write,
// and an unknown id aborts the whole batch naming the offending employee. The
// upserts then run inside a single transaction.
func (s *AttendanceServiceImpl) MarkBulk(ctx context.Context, req attendance.BulkMarkRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	records := make([]attendance.Attendance, 0, len(req.Records))
	for _, markReq := range req.Records {
		emp, err := s.employeeRepo.GetByID(ctx, markReq.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return 0, fmt.Errorf("employee %s: %w", markReq.EmployeeID, attendance.ErrEmployeeNotFound)
			}
			return 0, fmt.Errorf("failed to resolve employee %s: %w", markReq.EmployeeID, err)
		}

		day, checkIn, checkOut := parseMarkTimes(markReq)

		records = append(records, attendance.Attendance{
			EmployeeID:    emp.ID,
			Date:          day,
			Status:        attendance.Status(markReq.Status),
			CheckInTime:   checkIn,
			CheckOutTime:  checkOut,
			WorkHours:     ComputeWorkHours(checkIn, checkOut),
			Notes:         markReq.Notes,
			Location:      markReq.Location,
			EmployeeName:  emp.FullName(),
			EmployeeEmpID: emp.EmpID,
			Department:    emp.Department,
		})
	}

	count := 0
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		count, err = s.attendanceRepo.UpsertMany(txCtx, records)
		return err
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// GetDayView implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDayView(ctx context.Context, day time.Time, filter attendance.DayFilter) (attendance.DayViewResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DayViewResponse{}, err
	}

	day = NormalizeDay(day)

	roster, total, err := s.employeeRepo.List(ctx, employee.Filter{
		Search: filter.Search,
		Page:   filter.Page,
		Limit:  filter.Limit,
	})
	if err != nil {
		return attendance.DayViewResponse{}, fmt.Errorf("failed to resolve roster: %w", err)
	}

	ids := make([]string, 0, len(roster))
	for _, emp := range roster {
		ids = append(ids, emp.ID)
	}

	records, err := s.attendanceRepo.ListForDay(ctx, day, ids)
	if err != nil {
		return attendance.DayViewResponse{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	entries := Reconcile(roster, records)

	responses := make([]attendance.AttendanceResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, attendance.NewDayEntryResponse(entry, day))
	}

	return attendance.DayViewResponse{
		Date:       day.Format("2006-01-02"),
		Entries:    responses,
		Pagination: employee.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

// GetEmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, filter.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, attendance.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	var start, end *time.Time
	if filter.StartDate != nil {
		parsed, _ := validator.IsValidDate(*filter.StartDate)
		normalized := NormalizeDay(parsed)
		start = &normalized
	}
	if filter.EndDate != nil {
		parsed, _ := validator.IsValidDate(*filter.EndDate)
		normalized := NormalizeDay(parsed)
		end = &normalized
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, filter.EmployeeID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}

	return responses, nil
}

// GetStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStats(ctx context.Context, filter attendance.StatsFilter) (attendance.StatsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	var start, end *time.Time
	if filter.StartDate != nil {
		parsed, _ := validator.IsValidDate(*filter.StartDate)
		normalized := NormalizeDay(parsed)
		start = &normalized
	}
	if filter.EndDate != nil {
		parsed, _ := validator.IsValidDate(*filter.EndDate)
		normalized := NormalizeDay(parsed)
		end = &normalized
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, start, end)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	result := attendance.StatsResponse{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Counts:    make(map[string]int64, len(counts)),
	}
	for status, count := range counts {
		result.Counts[string(status)] = count
		result.Total += count
	}

	return result, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}
