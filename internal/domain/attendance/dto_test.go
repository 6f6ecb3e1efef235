package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMarkRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     MarkRequest
		wantErr bool
	}{
		{
			name:    "valid minimal request",
			req:     MarkRequest{EmployeeID: "e1", Status: "present"},
			wantErr: false,
		},
		{
			name:    "valid with date and times",
			req:     MarkRequest{EmployeeID: "e1", Status: "present", Date: "2024-03-15", CheckInTime: strPtr("2024-03-15T09:00:00Z")},
			wantErr: false,
		},
		{
			name:    "missing employee id",
			req:     MarkRequest{Status: "present"},
			wantErr: true,
		},
		{
			name:    "missing status",
			req:     MarkRequest{EmployeeID: "e1"},
			wantErr: true,
		},
		{
			name:    "unknown status",
			req:     MarkRequest{EmployeeID: "e1", Status: "vacationing"},
			wantErr: true,
		},
		{
			name:    "bad date format",
			req:     MarkRequest{EmployeeID: "e1", Status: "present", Date: "15-03-2024"},
			wantErr: true,
		},
		{
			name:    "bad check-in timestamp",
			req:     MarkRequest{EmployeeID: "e1", Status: "present", CheckInTime: strPtr("9am")},
			wantErr: true,
		},
		{
			name:    "half-day accepted",
			req:     MarkRequest{EmployeeID: "e1", Status: "half-day"},
			wantErr: false,
		},
		{
			name:    "work-from-home accepted",
			req:     MarkRequest{EmployeeID: "e1", Status: "work-from-home"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBulkMarkRequestValidate(t *testing.T) {
	t.Run("empty batch rejected", func(t *testing.T) {
		req := BulkMarkRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("invalid entry rejected", func(t *testing.T) {
		req := BulkMarkRequest{Records: []MarkRequest{
			{EmployeeID: "e1", Status: "present"},
			{EmployeeID: "e2", Status: "nope"},
		}}
		assert.Error(t, req.Validate())
	})

	t.Run("valid batch accepted", func(t *testing.T) {
		req := BulkMarkRequest{Records: []MarkRequest{
			{EmployeeID: "e1", Status: "present"},
			{EmployeeID: "e2", Status: "leave"},
		}}
		assert.NoError(t, req.Validate())
	})
}

func TestDayFilterDefaults(t *testing.T) {
	filter := DayFilter{}
	require.NoError(t, filter.Validate())
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 8, filter.Limit)

	oversized := DayFilter{Limit: 500}
	assert.Error(t, oversized.Validate())
}

func TestNewDayEntryResponse(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("stored entry keeps record identity", func(t *testing.T) {
		checkIn := day.Add(9 * time.Hour)
		record := Attendance{
			ID:            "a1",
			EmployeeID:    "e1",
			Date:          day,
			Status:        StatusPresent,
			CheckInTime:   &checkIn,
			EmployeeName:  "Asha Rao",
			EmployeeEmpID: "EMP001",
			Department:    "Engineering",
		}
		resp := NewDayEntryResponse(DayEntry{Kind: EntryStored, Record: &record}, day)

		assert.Equal(t, "a1", resp.ID)
		assert.Equal(t, "present", resp.Status)
		assert.False(t, resp.Virtual)
		require.NotNil(t, resp.CheckInTime)
		assert.Equal(t, "2024-03-15T09:00:00Z", *resp.CheckInTime)
	})

	t.Run("virtual entry is an absent placeholder", func(t *testing.T) {
		entry := DayEntry{
			Kind: EntryVirtual,
			Employee: EmployeeSnapshot{
				EmployeeID: "e2",
				EmpID:      "EMP002",
				Name:       "Budi Santoso",
				Department: "Finance",
			},
		}
		resp := NewDayEntryResponse(entry, day)

		assert.Empty(t, resp.ID)
		assert.True(t, resp.Virtual)
		assert.Equal(t, "absent", resp.Status)
		assert.Equal(t, "2024-03-15", resp.Date)
		assert.Equal(t, "EMP002", resp.EmpID)
		assert.Nil(t, resp.CheckInTime)
		assert.Nil(t, resp.WorkHours)
	})
}
