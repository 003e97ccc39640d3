package dto

import (
	"campusbook/internal/domains/resource/model"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateResourceRequest struct {
	Name           string `json:"name"             validate:"required,max=100"`
	ResourceTypeID int    `json:"resource_type_id" validate:"required"`
	BuildingID     int    `json:"building_id"      validate:"required"`
	FloorNumber    int    `json:"floor_number"     validate:"omitempty"`
	Description    string `json:"description"      validate:"omitempty"`
}

func (c *CreateResourceRequest) ToModel(user string) model.Resource {
	return model.Resource{
		Name:           c.Name,
		ResourceTypeID: c.ResourceTypeID,
		BuildingID:     c.BuildingID,
		FloorNumber:    c.FloorNumber,
		Description:    c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateResourceRequest struct {
	Name           string `db:"name"             json:"name"             validate:"omitempty,max=100"`
	ResourceTypeID int    `db:"resource_type_id" json:"resource_type_id" validate:"omitempty"`
	BuildingID     int    `db:"building_id"      json:"building_id"      validate:"omitempty"`
	FloorNumber    int    `db:"floor_number"     json:"floor_number"     validate:"omitempty"`
	Description    string `db:"description"      json:"description"      validate:"omitempty"`
}

type ResourceResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ResourceTypeID int    `json:"resource_type_id"`
	BuildingID     int    `json:"building_id"`
	FloorNumber    int    `json:"floor_number"`
	Description    string `json:"description"`
	PhotoURL       string `json:"photo_url"`
	BuildingName   string `json:"building_name"`
	TypeName       string `json:"type_name"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.ID = model.ID
	r.Name = model.Name
	r.ResourceTypeID = model.ResourceTypeID
	r.BuildingID = model.BuildingID
	r.FloorNumber = model.FloorNumber
	r.Description = model.Description
	r.PhotoURL = model.PhotoURL
	r.BuildingName = model.BuildingName
	r.TypeName = model.TypeName
	r.Metadata.FromModel(model.Metadata)
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Resources = make([]ResourceResponse, len(models))
	for i, mod := range models {
		r.Resources[i].FromModel(mod)
	}
}

type UploadPhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}
