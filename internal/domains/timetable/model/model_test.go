package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campusbook/internal/domains/timetable/model"
	"campusbook/shared/timezone"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, timezone.GetLocation())
}

func TestTimeline(t *testing.T) {
	timeline := model.Timeline()

	assert.Len(t, timeline, 5)

	assert.Equal(t, "07:45", timeline[0].Start)
	assert.Equal(t, "09:35", timeline[0].End)
	assert.False(t, timeline[0].Break)

	assert.True(t, timeline[1].Break)
	assert.True(t, timeline[3].Break)

	assert.Equal(t, "12:10", timeline[4].Start)
	assert.Equal(t, "13:50", timeline[4].End)

	// Rows tile the morning without gaps.
	for i := 1; i < len(timeline); i++ {
		assert.Equal(t, timeline[i-1].End, timeline[i].Start)
	}
}

func TestCellKey(t *testing.T) {
	slot := model.Timeline()[0]

	assert.Equal(t, "2026-03-02T07:45:00", model.CellKey("2026-03-02", slot))
}

func TestNormalizeWeekStart(t *testing.T) {
	monday := date(2026, time.March, 2)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "monday stays", in: monday, want: monday},
		{name: "wednesday rolls back", in: date(2026, time.March, 4), want: monday},
		{name: "friday rolls back", in: date(2026, time.March, 6), want: monday},
		{name: "sunday belongs to its own week", in: date(2026, time.March, 8), want: monday},
		{name: "time of day is dropped", in: date(2026, time.March, 4).Add(13 * time.Hour), want: monday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizeWeekStart(tt.in))
		})
	}
}

func TestCurrentWeekStart(t *testing.T) {
	monday := date(2026, time.March, 2)
	nextMonday := date(2026, time.March, 9)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{name: "weekday shows its own week", now: date(2026, time.March, 4), want: monday},
		{name: "saturday rolls to next monday", now: date(2026, time.March, 7), want: nextMonday},
		{name: "sunday rolls to next monday", now: date(2026, time.March, 8), want: nextMonday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CurrentWeekStart(tt.now))
		})
	}
}

func TestWeekNavigation(t *testing.T) {
	monday := date(2026, time.March, 2)

	assert.Equal(t, date(2026, time.February, 23), model.PrevWeekStart(monday))
	assert.Equal(t, date(2026, time.March, 9), model.NextWeekStart(monday))
}

func TestWeekDates(t *testing.T) {
	dates := model.WeekDates(date(2026, time.March, 2))

	assert.Equal(t, []string{
		"2026-03-02",
		"2026-03-03",
		"2026-03-04",
		"2026-03-05",
		"2026-03-06",
	}, dates)
}
