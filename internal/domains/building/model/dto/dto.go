package dto

import (
	"campusbook/internal/domains/building/model"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateBuildingRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Number      string `json:"number"       validate:"required,max=20"`
	TotalFloors int    `json:"total_floors" validate:"required,min=1"`
}

func (c *CreateBuildingRequest) ToModel(user string) model.Building {
	return model.Building{
		Name:        c.Name,
		Number:      c.Number,
		TotalFloors: c.TotalFloors,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBuildingRequest struct {
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Number      string `db:"number"       json:"number"       validate:"omitempty,max=20"`
	TotalFloors int    `db:"total_floors" json:"total_floors" validate:"omitempty,min=1"`
}

type BuildingResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Number      string `json:"number"`
	TotalFloors int    `json:"total_floors"`
	gDto.Metadata
}

func (r *BuildingResponse) FromModel(model model.Building) {
	r.ID = model.ID
	r.Name = model.Name
	r.Number = model.Number
	r.TotalFloors = model.TotalFloors
	r.Metadata.FromModel(model.Metadata)
}

type GetBuildingsResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetBuildingsResponse) FromModels(models []model.Building, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Buildings = make([]BuildingResponse, len(models))
	for i, mod := range models {
		r.Buildings[i].FromModel(mod)
	}
}
