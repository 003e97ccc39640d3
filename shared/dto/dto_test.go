package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campusbook/shared/constant"
	"campusbook/shared/dto"
	"campusbook/shared/model"
	"campusbook/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "defaults applied when enabled",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:        "no defaults when disabled",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name: "invalid page falls back to default",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "negative limit falls back to default",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			assert.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			assert.NoError(t, err)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Value:    "PENDING",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "PENDING"},
		},
		{
			name: "named arg avoids collisions on repeated fields",
			filter: dto.Filter{
				ArgName:  "week_start",
				Field:    "start_datetime",
				Value:    "2026-03-02T00:00:00",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.start_datetime >= :week_start",
			wantArgs:  map[string]any{"week_start": "2026-03-02T00:00:00"},
		},
		{
			name: "like wraps the value in wildcards",
			filter: dto.Filter{
				Field:    "name",
				Value:    "science",
				Operator: dto.FilterOperatorLike,
				Table:    "buildings",
			},
			wantWhere: "LOWER(buildings.name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%science%"},
		},
		{
			name: "in expands slices into named args",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"APPROVED", "REJECTED"},
				Operator: dto.FilterOperatorIn,
			},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "APPROVED", "status_1": "REJECTED"},
		},
		{
			name: "is null takes no args",
			filter: dto.Filter{
				Field:    "shelf_id",
				Operator: dto.FilterIsNull,
				Table:    "bookings",
			},
			wantWhere: "bookings.shelf_id IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("joins filters with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "resource_id", Value: 4, Operator: dto.FilterOperatorEq, Table: "bookings"},
				dto.Filter{Field: "status", Value: "APPROVED", Operator: dto.FilterOperatorEq, Table: "bookings"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(bookings.resource_id = :resource_id AND bookings.status = :status)", where)
		assert.Equal(t, map[string]any{"resource_id": 4, "status": "APPROVED"}, args)
	})

	t.Run("nests groups", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "user_id", Value: 7, Operator: dto.FilterOperatorEq, Table: "bookings"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "resource_id", Value: 4, Operator: dto.FilterOperatorEq, Table: "bookings"},
						dto.Filter{Field: "shelf_id", Value: 9, Operator: dto.FilterOperatorEq, Table: "bookings"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(bookings.user_id = :user_id AND (bookings.resource_id = :resource_id OR bookings.shelf_id = :shelf_id))", where)
		assert.Len(t, args, 3)
	})

	t.Run("empty group yields no clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}

func TestSortDirectionConstants(t *testing.T) {
	assert.Equal(t, "ASC", dto.SortDirAsc)
	assert.Equal(t, "DESC", dto.SortDirDesc)
}
