package model

import (
	"campusbook/shared/model"
)

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID           = "id"
	FieldResourceID   = "resource_id"
	FieldFacilityName = "facility_name"
	FieldDetails      = "details"
)

type Facility struct {
	ID           int    `db:"id"`
	ResourceID   int    `db:"resource_id"`
	FacilityName string `db:"facility_name"`
	Details      string `db:"details"`
	model.Metadata
}
