package model

import (
	"campusbook/shared/datetime"
	"campusbook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldResourceID    = "resource_id"
	FieldShelfID       = "shelf_id"
	FieldUserID        = "user_id"
	FieldStartDatetime = "start_datetime"
	FieldEndDatetime   = "end_datetime"
	FieldStatus        = "status"
	FieldApproverID    = "approver_id"

	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Booking reserves either a resource or a shelf, never both.
type Booking struct {
	ID            int            `db:"id"`
	ResourceID    *int           `db:"resource_id"`
	ShelfID       *int           `db:"shelf_id"`
	UserID        int            `db:"user_id"`
	StartDatetime datetime.Local `db:"start_datetime"`
	EndDatetime   datetime.Local `db:"end_datetime"`
	Status        string         `db:"status"`
	ApproverID    *int           `db:"approver_id"`
	BuildingName  string         `db:"building_name" table:"buildings" column:"name"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN resources ON resources.id = bookings.resource_id " +
		"LEFT JOIN buildings ON buildings.id = resources.building_id"
}
