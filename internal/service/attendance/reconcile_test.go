package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/stafflane/hradmin-backend-go/internal/domain/attendance"
	"github.com/stafflane/hradmin-backend-go/internal/domain/employee"
)

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "midday UTC truncates to midnight",
			input:    time.Date(2024, 3, 15, 13, 45, 30, 0, time.UTC),
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "already midnight stays unchanged",
			input:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "non-UTC zone converts before truncating",
			input:    time.Date(2024, 3, 15, 1, 0, 0, 0, time.FixedZone("WIB", 7*3600)),
			expected: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(NormalizeDay(tt.input)))
		})
	}
}

func TestComputeWorkHours(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) *time.Time {
		t := day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		return &t
	}

	t.Run("nil when check-in missing", func(t *testing.T) {
		assert.Nil(t, ComputeWorkHours(nil, at(17, 0)))
	})

	t.Run("nil when check-out missing", func(t *testing.T) {
		assert.Nil(t, ComputeWorkHours(at(9, 0), nil))
	})

	t.Run("half hours kept", func(t *testing.T) {
		got := ComputeWorkHours(at(9, 0), at(17, 30))
		require.NotNil(t, got)
		assert.Equal(t, 8.5, *got)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		got := ComputeWorkHours(at(9, 0), at(17, 20))
		require.NotNil(t, got)
		assert.Equal(t, 8.33, *got)
	})
}

func TestReconcile(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	roster := []employee.Employee{
		{ID: "e1", EmpID: "EMP001", FirstName: "Asha", LastName: "Rao", Department: "Engineering"},
		{ID: "e2", EmpID: "EMP002", FirstName: "Budi", LastName: "Santoso", Department: "Finance"},
		{ID: "e3", EmpID: "EMP003", FirstName: "Citra", LastName: "Dewi", Department: "Engineering"},
	}
	records := []domain.Attendance{
		{ID: "a1", EmployeeID: "e2", Date: day, Status: domain.StatusPresent, EmployeeName: "Budi Santoso", EmployeeEmpID: "EMP002", Department: "Finance"},
	}

	entries := Reconcile(roster, records)

	// One entry per roster employee, in roster order
	require.Len(t, entries, len(roster))
	assert.Equal(t, "e1", entries[0].Employee.EmployeeID)
	assert.Equal(t, "e2", entries[1].Employee.EmployeeID)
	assert.Equal(t, "e3", entries[2].Employee.EmployeeID)

	// Stored record wins for e2
	assert.Equal(t, domain.EntryStored, entries[1].Kind)
	require.NotNil(t, entries[1].Record)
	assert.Equal(t, "a1", entries[1].Record.ID)
	assert.Equal(t, domain.StatusPresent, entries[1].EffectiveStatus())

	// The others are virtual absents
	for _, i := range []int{0, 2} {
		assert.Equal(t, domain.EntryVirtual, entries[i].Kind)
		assert.Nil(t, entries[i].Record)
		assert.Equal(t, domain.StatusAbsent, entries[i].EffectiveStatus())
	}

	// Virtual entries carry the employee's live identity
	assert.Equal(t, "Asha Rao", entries[0].Employee.Name)
	assert.Equal(t, "EMP001", entries[0].Employee.EmpID)
}

func TestReconcileEmptyRoster(t *testing.T) {
	entries := Reconcile(nil, nil)
	assert.Empty(t, entries)
}

func TestReconcileIgnoresRecordsOutsideRoster(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	roster := []employee.Employee{
		{ID: "e1", EmpID: "EMP001", FirstName: "Asha", LastName: "Rao"},
	}
	records := []domain.Attendance{
		{ID: "a9", EmployeeID: "e9", Date: day, Status: domain.StatusPresent},
	}

	entries := Reconcile(roster, records)

	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryVirtual, entries[0].Kind)
}
