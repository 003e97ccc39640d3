package dto

import (
	bookingDto "campusbook/internal/domains/booking/model/dto"
	"campusbook/internal/domains/timetable/model"
)

// Cell is one grid cell: a slot on a given day, with the booking that
// occupies it when the state is booked.
type Cell struct {
	Slot    model.Slot                  `json:"slot"`
	State   string                      `json:"state"`
	Booking *bookingDto.BookingResponse `json:"booking,omitempty"`
}

type Day struct {
	Date  string `json:"date"`
	Cells []Cell `json:"cells"`
}

type TimetableResponse struct {
	WeekStart     string `json:"weekStart"`
	PrevWeekStart string `json:"prevWeekStart"`
	NextWeekStart string `json:"nextWeekStart"`
	Building      string `json:"building,omitempty"`
	Days          []Day  `json:"days"`
}
