package dto

import (
	"campusbook/internal/domains/cupboard/model"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateCupboardRequest struct {
	Name         string `json:"name"          validate:"required,max=100"`
	TotalShelves int    `json:"total_shelves" validate:"required,min=1"`
	ResourceID   int    `json:"resource_id"   validate:"required"`
}

func (c *CreateCupboardRequest) ToModel(user string) model.Cupboard {
	return model.Cupboard{
		Name:         c.Name,
		TotalShelves: c.TotalShelves,
		ResourceID:   c.ResourceID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCupboardRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	TotalShelves int    `db:"total_shelves" json:"total_shelves" validate:"omitempty,min=1"`
}

type CupboardResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TotalShelves int    `json:"total_shelves"`
	ResourceID   int    `json:"resource_id"`
	gDto.Metadata
}

func (r *CupboardResponse) FromModel(model model.Cupboard) {
	r.ID = model.ID
	r.Name = model.Name
	r.TotalShelves = model.TotalShelves
	r.ResourceID = model.ResourceID
	r.Metadata.FromModel(model.Metadata)
}

type GetCupboardsResponse struct {
	Cupboards []CupboardResponse `json:"cupboards"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCupboardsResponse) FromModels(models []model.Cupboard, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cupboards = make([]CupboardResponse, len(models))
	for i, mod := range models {
		r.Cupboards[i].FromModel(mod)
	}
}
