package model

import (
	"campusbook/shared/model"
)

const (
	TableName  = "resource_types"
	EntityName = "resource_type"

	FieldID       = "id"
	FieldTypeName = "type_name"
)

type ResourceType struct {
	ID       int    `db:"id"`
	TypeName string `db:"type_name"`
	model.Metadata
}
