package report

import (
	"context"
	"time"
)

type ReportService interface {
	// ExportDailyAttendance renders the reconciled attendance view for the day
	// (all employees, no pagination) into an xlsx workbook.
	ExportDailyAttendance(ctx context.Context, day time.Time) (DailyExport, error)
}
