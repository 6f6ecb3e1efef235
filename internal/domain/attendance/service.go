package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	Mark(ctx context.Context, req MarkRequest) (AttendanceResponse, error)
	MarkBulk(ctx context.Context, req BulkMarkRequest) (int, error)
	// GetDayView reconciles stored records with virtual absents for every
	// employee matching the filter on the given day.
	GetDayView(ctx context.Context, day time.Time, filter DayFilter) (DayViewResponse, error)
	GetEmployeeHistory(ctx context.Context, filter HistoryFilter) ([]AttendanceResponse, error)
	GetStats(ctx context.Context, filter StatsFilter) (StatsResponse, error)
	Delete(ctx context.Context, id string) error
}
