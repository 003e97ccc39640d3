package model

import (
	"campusbook/shared/model"
)

const (
	TableName  = "shelves"
	EntityName = "shelf"

	FieldID          = "id"
	FieldShelfNumber = "shelf_number"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldCupboardID  = "cupboard_id"
)

type Shelf struct {
	ID          int    `db:"id"`
	ShelfNumber int    `db:"shelf_number"`
	Capacity    int    `db:"capacity"`
	Description string `db:"description"`
	CupboardID  int    `db:"cupboard_id"`
	model.Metadata
}
