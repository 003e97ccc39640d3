package model

import (
	"campusbook/shared/model"
)

const (
	TableName  = "cupboards"
	EntityName = "cupboard"

	FieldID           = "id"
	FieldName         = "name"
	FieldTotalShelves = "total_shelves"
	FieldResourceID   = "resource_id"
)

type Cupboard struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	TotalShelves int    `db:"total_shelves"`
	ResourceID   int    `db:"resource_id"`
	model.Metadata
}
