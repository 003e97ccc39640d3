package dto

import (
	"campusbook/internal/domains/booking/model"
	"campusbook/shared"
	"campusbook/shared/datetime"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateBookingRequest struct {
	UserID        int    `json:"user_id"        validate:"required"`
	ResourceID    *int   `json:"resource_id"    validate:"omitempty"`
	ShelfID       *int   `json:"shelf_id"       validate:"omitempty"`
	StartDatetime string `json:"start_datetime" validate:"required"`
	EndDatetime   string `json:"end_datetime"   validate:"required"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	start, err := datetime.Parse(c.StartDatetime)
	if err != nil {
		return model.Booking{}, err
	}

	end, err := datetime.Parse(c.EndDatetime)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ResourceID:    c.ResourceID,
		ShelfID:       c.ShelfID,
		UserID:        c.UserID,
		StartDatetime: start,
		EndDatetime:   end,
		Status:        model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status     string `json:"status"      validate:"required,oneof=APPROVED REJECTED"`
	ApproverID *int   `json:"approver_id" validate:"omitempty"`
}

type BookingResponse struct {
	ID            int    `json:"id"`
	ResourceID    *int   `json:"resource_id"`
	ShelfID       *int   `json:"shelf_id"`
	UserID        int    `json:"user_id"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
	Status        string `json:"status"`
	ApproverID    *int   `json:"approver_id"`
	BuildingName  string `json:"building_name,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.ShelfID = model.ShelfID
	r.UserID = model.UserID
	r.StartDatetime = model.StartDatetime.String()
	r.EndDatetime = model.EndDatetime.String()
	r.Status = model.Status
	r.ApproverID = model.ApproverID
	r.BuildingName = model.BuildingName
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking lifecycle topic.
type BookingEvent struct {
	Event   string          `json:"event"`
	Booking BookingResponse `json:"booking"`
}

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)
