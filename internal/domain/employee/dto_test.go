package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		limit    int
		expected Pagination
	}{
		{
			name:  "first of several pages",
			total: 25, page: 1, limit: 8,
			expected: Pagination{Total: 25, Page: 1, Limit: 8, TotalPages: 4, HasNextPage: true, HasPrevPage: false},
		},
		{
			name:  "middle page",
			total: 25, page: 2, limit: 8,
			expected: Pagination{Total: 25, Page: 2, Limit: 8, TotalPages: 4, HasNextPage: true, HasPrevPage: true},
		},
		{
			name:  "last page",
			total: 25, page: 4, limit: 8,
			expected: Pagination{Total: 25, Page: 4, Limit: 8, TotalPages: 4, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:  "empty result",
			total: 0, page: 1, limit: 8,
			expected: Pagination{Total: 0, Page: 1, Limit: 8, TotalPages: 0, HasNextPage: false, HasPrevPage: false},
		},
		{
			name:  "exact multiple",
			total: 16, page: 2, limit: 8,
			expected: Pagination{Total: 16, Page: 2, Limit: 8, TotalPages: 2, HasNextPage: false, HasPrevPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPagination(tt.total, tt.page, tt.limit))
		})
	}
}

func TestFilterValidateDefaults(t *testing.T) {
	filter := Filter{}
	require.NoError(t, filter.Validate())
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 8, filter.Limit)
}

func TestFilterValidateRejectsOversizedLimit(t *testing.T) {
	filter := Filter{Limit: 1000}
	assert.Error(t, filter.Validate())
}

func TestSearchRequestCapsLimit(t *testing.T) {
	req := SearchRequest{Query: "asha", Limit: 50}
	require.NoError(t, req.Validate())
	assert.Equal(t, 20, req.Limit)
}

func TestUpdateRequestValidate(t *testing.T) {
	bad := "not-an-email"
	req := UpdateEmployeeRequest{Email: &bad}
	assert.Error(t, req.Validate())

	good := "asha@example.com"
	req = UpdateEmployeeRequest{Email: &good}
	assert.NoError(t, req.Validate())
}
