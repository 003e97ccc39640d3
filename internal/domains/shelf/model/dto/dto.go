package dto

import (
	"campusbook/internal/domains/shelf/model"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateShelfRequest struct {
	ShelfNumber int    `json:"shelf_number" validate:"required,min=1"`
	Capacity    int    `json:"capacity"     validate:"required,min=1"`
	Description string `json:"description"  validate:"omitempty"`
	CupboardID  int    `json:"cupboard_id"  validate:"required"`
}

func (c *CreateShelfRequest) ToModel(user string) model.Shelf {
	return model.Shelf{
		ShelfNumber: c.ShelfNumber,
		Capacity:    c.Capacity,
		Description: c.Description,
		CupboardID:  c.CupboardID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateShelfRequest struct {
	ShelfNumber int    `db:"shelf_number" json:"shelf_number" validate:"omitempty,min=1"`
	Capacity    int    `db:"capacity"     json:"capacity"     validate:"omitempty,min=1"`
	Description string `db:"description"  json:"description"  validate:"omitempty"`
}

type ShelfResponse struct {
	ID          int    `json:"id"`
	ShelfNumber int    `json:"shelf_number"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
	CupboardID  int    `json:"cupboard_id"`
	gDto.Metadata
}

func (r *ShelfResponse) FromModel(model model.Shelf) {
	r.ID = model.ID
	r.ShelfNumber = model.ShelfNumber
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.CupboardID = model.CupboardID
	r.Metadata.FromModel(model.Metadata)
}

type GetShelvesResponse struct {
	Shelves   []ShelfResponse `json:"shelves"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetShelvesResponse) FromModels(models []model.Shelf, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Shelves = make([]ShelfResponse, len(models))
	for i, mod := range models {
		r.Shelves[i].FromModel(mod)
	}
}
