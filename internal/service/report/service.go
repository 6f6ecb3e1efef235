package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stafflane/hradmin-backend-go/internal/domain/attendance"
	"github.com/stafflane/hradmin-backend-go/internal/domain/employee"
	"github.com/stafflane/hradmin-backend-go/internal/domain/report"
	attendancesvc "github.com/stafflane/hradmin-backend-go/internal/service/attendance"
)

const (
	detailSheet  = "Attendance"
	summarySheet = "Summary"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Fetch the whole roster in one page. The export is unpaginated.
	rosterBatchLimit = 100
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ExportDailyAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportDailyAttendance(ctx context.Context, day time.Time) (report.DailyExport, error) {
	day = attendancesvc.NormalizeDay(day)

	roster, err := s.fullRoster(ctx)
	if err != nil {
		return report.DailyExport{}, err
	}

	ids := make([]string, 0, len(roster))
	for _, emp := range roster {
		ids = append(ids, emp.ID)
	}

	records, err := s.attendanceRepo.ListForDay(ctx, day, ids)
	if err != nil {
		return report.DailyExport{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	entries := attendancesvc.Reconcile(roster, records)

	content, err := renderWorkbook(day, entries)
	if err != nil {
		return report.DailyExport{}, err
	}

	return report.DailyExport{
		Filename:    fmt.Sprintf("attendance-%s.xlsx", day.Format("2006-01-02")),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

func (s *ReportServiceImpl) fullRoster(ctx context.Context) ([]employee.Employee, error) {
	var roster []employee.Employee
	page := 1
	for {
		batch, total, err := s.employeeRepo.List(ctx, employee.Filter{Page: page, Limit: rosterBatchLimit})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve roster: %w", err)
		}
		roster = append(roster, batch...)
		if int64(len(roster)) >= total || len(batch) == 0 {
			return roster, nil
		}
		page++
	}
}

func renderWorkbook(day time.Time, entries []attendance.DayEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", detailSheet); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}

	if err := writeDetailSheet(f, day, entries); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, buildSummary(day, entries)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDetailSheet(f *excelize.File, day time.Time, entries []attendance.DayEntry) error {
	header := []interface{}{"No", "Employee ID", "Name", "Department", "Status", "Check In", "Check Out", "Date"}
	if err := f.SetSheetRow(detailSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	dateStr := day.Format("2006-01-02")
	for i, entry := range entries {
		row := []interface{}{
			i + 1,
			entryEmpID(entry),
			entryName(entry),
			entryDepartment(entry),
			string(entry.EffectiveStatus()),
			entryClock(entry, true),
			entryClock(entry, false),
			dateStr,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(detailSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return nil
}

func buildSummary(day time.Time, entries []attendance.DayEntry) report.Summary {
	counts := make(map[string]int)
	for _, entry := range entries {
		counts[string(entry.EffectiveStatus())]++
	}

	present := counts[string(attendance.StatusPresent)]
	percent := 0.0
	if len(entries) > 0 {
		percent = float64(present) / float64(len(entries)) * 100
	}

	return report.Summary{
		Date:           day.Format("2006-01-02"),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		TotalEmployees: len(entries),
		StatusCounts:   counts,
		PresentPercent: percent,
	}
}

func writeSummarySheet(f *excelize.File, summary report.Summary) error {
	rows := [][]interface{}{
		{"Date", summary.Date},
		{"Generated At", summary.GeneratedAt},
		{"Total Employees", summary.TotalEmployees},
	}

	statuses := make([]string, 0, len(summary.StatusCounts))
	for status := range summary.StatusCounts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		rows = append(rows, []interface{}{status, summary.StatusCounts[status]})
	}

	rows = append(rows, []interface{}{"Present %", fmt.Sprintf("%.1f%%", summary.PresentPercent)})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return nil
}

func entryEmpID(e attendance.DayEntry) string {
	if e.Kind == attendance.EntryStored {
		return e.Record.EmployeeEmpID
	}
	return e.Employee.EmpID
}

func entryName(e attendance.DayEntry) string {
	if e.Kind == attendance.EntryStored {
		return e.Record.EmployeeName
	}
	return e.Employee.Name
}

func entryDepartment(e attendance.DayEntry) string {
	if e.Kind == attendance.EntryStored {
		return e.Record.Department
	}
	return e.Employee.Department
}

func entryClock(e attendance.DayEntry, checkIn bool) string {
	if e.Kind != attendance.EntryStored {
		return "-"
	}
	t := e.Record.CheckOutTime
	if checkIn {
		t = e.Record.CheckInTime
	}
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}
