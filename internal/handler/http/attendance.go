package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stafflane/hradmin-backend-go/internal/domain/attendance"
	"github.com/stafflane/hradmin-backend-go/internal/domain/report"
	"github.com/stafflane/hradmin-backend-go/internal/handler/http/response"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	MarkBulk(w http.ResponseWriter, r *http.Request)
	GetDayView(w http.ResponseWriter, r *http.Request)
	DownloadDay(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, reportService report.ReportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := markReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.attendanceService.Mark(r.Context(), markReq)
	if err != nil {
		slog.Error("Mark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", result)
}

// MarkBulk implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkBulk(w http.ResponseWriter, r *http.Request) {
	var bulkReq attendance.BulkMarkRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("MarkBulk decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := bulkReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	count, err := h.attendanceService.MarkBulk(r.Context(), bulkReq)
	if err != nil {
		slog.Error("MarkBulk service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Marked attendance for %d employees", count), map[string]int{"count": count})
}

// GetDayView implements AttendanceHandler - reconciled roster for one day.
func (h *attendanceHandlerImpl) GetDayView(w http.ResponseWriter, r *http.Request) {
	day, ok := dateParam(w, r)
	if !ok {
		return
	}

	filter := attendance.DayFilter{}
	if p := r.URL.Query().Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil {
			filter.Page = page
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil {
			filter.Limit = limit
		}
	}
	if s := strings.TrimSpace(r.URL.Query().Get("search")); s != "" {
		filter.Search = &s
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetDayView(r.Context(), day, filter)
	if err != nil {
		slog.Error("GetDayView service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadDay implements AttendanceHandler - xlsx export for one day.
func (h *attendanceHandlerImpl) DownloadDay(w http.ResponseWriter, r *http.Request) {
	day, ok := dateParam(w, r)
	if !ok {
		return
	}

	export, err := h.reportService.ExportDailyAttendance(r.Context(), day)
	if err != nil {
		slog.Error("DownloadDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Content); err != nil {
		slog.Error("DownloadDay write error", "error", err)
	}
}

// GetEmployeeHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	filter := attendance.HistoryFilter{
		EmployeeID: chi.URLParam(r, "employeeId"),
	}
	if s := r.URL.Query().Get("startDate"); s != "" {
		filter.StartDate = &s
	}
	if e := r.URL.Query().Get("endDate"); e != "" {
		filter.EndDate = &e
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetEmployeeHistory(r.Context(), filter)
	if err != nil {
		slog.Error("GetEmployeeHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	filter := attendance.StatsFilter{}
	if s := r.URL.Query().Get("startDate"); s != "" {
		filter.StartDate = &s
	}
	if e := r.URL.Query().Get("endDate"); e != "" {
		filter.EndDate = &e
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetStats(r.Context(), filter)
	if err != nil {
		slog.Error("GetStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

// dateParam parses the {date} path segment. Writes a 400 and returns false
// when the value is not a YYYY-MM-DD date.
func dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := chi.URLParam(r, "date")
	day, ok := validator.IsValidDate(raw)
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return time.Time{}, false
	}
	return day, true
}
