package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/otel/mocks"
	bookingMocks "campusbook/internal/domains/booking/mocks"
	bookingModel "campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/timetable/model"
	"campusbook/internal/domains/timetable/service"
	"campusbook/shared/cache"
	cacheMocks "campusbook/shared/cache/mocks"
	"campusbook/shared/datetime"
	"campusbook/shared/failure"
)

func newTimetableService(ctrl *gomock.Controller) (service.Timetable, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockBookingRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockBookingRepo, mockCache
}

func bookingAt(id int, start, end string) bookingModel.Booking {
	s, _ := datetime.Parse(start)
	e, _ := datetime.Parse(end)

	return bookingModel.Booking{
		ID:            id,
		UserID:        7,
		StartDatetime: s,
		EndDatetime:   e,
		Status:        bookingModel.StatusApproved,
	}
}

func TestTimetableService_GetWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookingRepo, mockCache := newTimetableService(ctrl)

	t.Run("booking lands on its exact cell", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				bookingAt(1, "2099-03-02T07:45:00", "2099-03-02T09:35:00"),
			}, nil)

		// Wednesday normalizes back to the Monday of the same week.
		res, err := svc.GetWeek(context.Background(), "2099-03-04", "")

		assert.NoError(t, err)
		assert.Equal(t, "2099-03-02", res.WeekStart)
		assert.Equal(t, "2099-02-23", res.PrevWeekStart)
		assert.Equal(t, "2099-03-09", res.NextWeekStart)
		assert.Len(t, res.Days, 5)
		assert.Len(t, res.Days[0].Cells, 5)

		first := res.Days[0].Cells[0]
		assert.Equal(t, model.CellStateBooked, first.State)
		if assert.NotNil(t, first.Booking) {
			assert.Equal(t, 1, first.Booking.ID)
		}

		// The other teaching slots of the same day stay free.
		assert.Equal(t, model.CellStateAvailable, res.Days[0].Cells[2].State)
		assert.Equal(t, model.CellStateAvailable, res.Days[0].Cells[4].State)
	})

	t.Run("start off by a minute matches nothing", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				bookingAt(2, "2099-03-02T07:46:00", "2099-03-02T09:35:00"),
			}, nil)

		res, err := svc.GetWeek(context.Background(), "2099-03-02", "")

		assert.NoError(t, err)

		for _, day := range res.Days {
			for _, cell := range day.Cells {
				assert.NotEqual(t, model.CellStateBooked, cell.State)
			}
		}
	})

	t.Run("first matching booking wins the cell", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				bookingAt(3, "2099-03-03T09:50:00", "2099-03-03T11:30:00"),
				bookingAt(4, "2099-03-03T09:50:00", "2099-03-03T11:30:00"),
			}, nil)

		res, err := svc.GetWeek(context.Background(), "2099-03-02", "")

		assert.NoError(t, err)

		cell := res.Days[1].Cells[2]
		assert.Equal(t, model.CellStateBooked, cell.State)
		if assert.NotNil(t, cell.Booking) {
			assert.Equal(t, 3, cell.Booking.ID)
		}
	})

	t.Run("breaks never hold bookings", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				bookingAt(5, "2099-03-02T09:35:00", "2099-03-02T09:50:00"),
			}, nil)

		res, err := svc.GetWeek(context.Background(), "2099-03-02", "")

		assert.NoError(t, err)

		cell := res.Days[0].Cells[1]
		assert.Equal(t, model.CellStateBreak, cell.State)
		assert.Nil(t, cell.Booking)
	})

	t.Run("elapsed slots show as past", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		res, err := svc.GetWeek(context.Background(), "2020-03-02", "")

		assert.NoError(t, err)

		for _, day := range res.Days {
			for i, cell := range day.Cells {
				if cell.Slot.Break {
					assert.Equal(t, model.CellStateBreak, cell.State)

					continue
				}

				assert.Equal(t, model.CellStatePast, cell.State, "day %s cell %d", day.Date, i)
			}
		}
	})

	t.Run("building filter is echoed back", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		res, err := svc.GetWeek(context.Background(), "2099-03-02", "Science Wing")

		assert.NoError(t, err)
		assert.Equal(t, "Science Wing", res.Building)
	})

	t.Run("malformed week start", func(t *testing.T) {
		_, err := svc.GetWeek(context.Background(), "03/02/2099", "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.GetWeek(context.Background(), "2099-03-02", "")

		assert.Error(t, err)
	})
}
