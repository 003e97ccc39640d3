package dto

import (
	"campusbook/internal/domains/resourcetype/model"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateResourceTypeRequest struct {
	TypeName string `json:"type_name" validate:"required,max=100"`
}

func (c *CreateResourceTypeRequest) ToModel(user string) model.ResourceType {
	return model.ResourceType{
		TypeName: c.TypeName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateResourceTypeRequest struct {
	TypeName string `db:"type_name" json:"type_name" validate:"omitempty,max=100"`
}

type ResourceTypeResponse struct {
	ID       int    `json:"id"`
	TypeName string `json:"type_name"`
	gDto.Metadata
}

func (r *ResourceTypeResponse) FromModel(model model.ResourceType) {
	r.ID = model.ID
	r.TypeName = model.TypeName
	r.Metadata.FromModel(model.Metadata)
}

type GetResourceTypesResponse struct {
	ResourceTypes []ResourceTypeResponse `json:"resource_types"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetResourceTypesResponse) FromModels(models []model.ResourceType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ResourceTypes = make([]ResourceTypeResponse, len(models))
	for i, mod := range models {
		r.ResourceTypes[i].FromModel(mod)
	}
}
