package model

import (
	"time"

	"campusbook/shared/datetime"
	"campusbook/shared/timezone"
)

const (
	EntityName = "timetable"

	CellStateBooked    = "booked"
	CellStatePast      = "past"
	CellStateAvailable = "available"
	CellStateBreak     = "break"

	// DaysPerWeek is the number of teaching days on the grid.
	DaysPerWeek = 5

	// WeekNavigationDays is the step between adjacent weeks.
	WeekNavigationDays = 7
)

// Slot is one row of the fixed weekly timeline. Start and End are naive
// clock times without seconds.
type Slot struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
	Break bool   `json:"break"`
}

// Timeline returns the fixed weekly timeline. Breaks are rendered but
// never bookable.
func Timeline() []Slot {
	return []Slot{
		{Name: "Slot 1", Start: "07:45", End: "09:35"},
		{Name: "Morning Break", Start: "09:35", End: "09:50", Break: true},
		{Name: "Slot 2", Start: "09:50", End: "11:30"},
		{Name: "Lunch Break", Start: "11:30", End: "12:10", Break: true},
		{Name: "Slot 3", Start: "12:10", End: "13:50"},
	}
}

// CellKey is the naive ISO string a booking's start must equal, character
// for character, to occupy the cell.
func CellKey(date string, slot Slot) string {
	return date + "T" + slot.Start + ":00"
}

// NormalizeWeekStart returns the Monday of the week containing t.
func NormalizeWeekStart(t time.Time) time.Time {
	t = timezone.ToAppTime(t)
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	offset := (int(t.Weekday()) + 6) % 7

	return t.AddDate(0, 0, -offset)
}

// CurrentWeekStart returns the Monday of the week shown by default.
// Weekend dates roll forward to the following Monday.
func CurrentWeekStart(now time.Time) time.Time {
	now = timezone.ToAppTime(now)

	switch now.Weekday() {
	case time.Saturday:
		now = now.AddDate(0, 0, 2)
	case time.Sunday:
		now = now.AddDate(0, 0, 1)
	}

	return NormalizeWeekStart(now)
}

// PrevWeekStart and NextWeekStart step the grid one week at a time.
func PrevWeekStart(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, -WeekNavigationDays)
}

func NextWeekStart(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, WeekNavigationDays)
}

// WeekDates lists the Monday through Friday dates of the week.
func WeekDates(weekStart time.Time) []string {
	dates := make([]string, DaysPerWeek)
	for i := range DaysPerWeek {
		dates[i] = weekStart.AddDate(0, 0, i).Format(datetime.DateLayout)
	}

	return dates
}
