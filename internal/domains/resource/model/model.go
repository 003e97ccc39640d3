package model

import (
	"campusbook/shared/model"
)

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID             = "id"
	FieldName           = "name"
	FieldResourceTypeID = "resource_type_id"
	FieldBuildingID     = "building_id"
	FieldFloorNumber    = "floor_number"
	FieldDescription    = "description"
	FieldPhotoURL       = "photo_url"
)

type Resource struct {
	ID             int    `db:"id"`
	Name           string `db:"name"`
	ResourceTypeID int    `db:"resource_type_id"`
	BuildingID     int    `db:"building_id"`
	FloorNumber    int    `db:"floor_number"`
	Description    string `db:"description"`
	PhotoURL       string `db:"photo_url"`
	BuildingName   string `db:"building_name" table:"buildings" column:"name"`
	TypeName       string `db:"type_name"     table:"resource_types"`
	model.Metadata
}

func (Resource) GetJoinQuery() string {
	return "LEFT JOIN buildings ON buildings.id = resources.building_id " +
		"LEFT JOIN resource_types ON resource_types.id = resources.resource_type_id"
}
