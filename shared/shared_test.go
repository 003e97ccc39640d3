package shared_test

import (
	"testing"

	"campusbook/shared"
	"campusbook/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "remainder rounds up", total: 21, limit: 10, want: 3},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 15, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	req := struct {
		Status     string `db:"status"`
		ApproverID int    `db:"approver_id"`
		Skipped    string `db:"-"`
		NoTag      string
	}{
		Status:     "APPROVED",
		ApproverID: 7,
	}

	fields := shared.TransformFields(req, "7")

	assert.Equal(t, "APPROVED", fields["status"])
	assert.Equal(t, 7, fields["approver_id"])
	assert.Equal(t, "7", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")
	assert.NotContains(t, fields, "NoTag")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(42, "booking_id", "bookings")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.booking_id = :booking_id)", where)
	assert.Equal(t, 42, args["booking_id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:42", shared.BuildCacheKey("booking", "get", "42"))
}

func TestBuildCacheKeyWithQuery_Distinct(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	plain := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{})
	filtered := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "PENDING", Table: "bookings"},
		},
	})

	assert.NotEqual(t, plain, filtered)
}
