package model

import (
	"campusbook/shared/model"
)

const (
	TableName  = "buildings"
	EntityName = "building"

	FieldID          = "id"
	FieldName        = "name"
	FieldNumber      = "number"
	FieldTotalFloors = "total_floors"
)

type Building struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Number      string `db:"number"`
	TotalFloors int    `db:"total_floors"`
	model.Metadata
}
