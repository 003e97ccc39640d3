package dto

import (
	"campusbook/internal/domains/facility/model"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateFacilityRequest struct {
	ResourceID   int    `json:"resource_id"   validate:"required"`
	FacilityName string `json:"facility_name" validate:"required,max=100"`
	Details      string `json:"details"       validate:"omitempty"`
}

func (c *CreateFacilityRequest) ToModel(user string) model.Facility {
	return model.Facility{
		ResourceID:   c.ResourceID,
		FacilityName: c.FacilityName,
		Details:      c.Details,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFacilityRequest struct {
	FacilityName string `db:"facility_name" json:"facility_name" validate:"omitempty,max=100"`
	Details      string `db:"details"       json:"details"       validate:"omitempty"`
}

type FacilityResponse struct {
	ID           int    `json:"id"`
	ResourceID   int    `json:"resource_id"`
	FacilityName string `json:"facility_name"`
	Details      string `json:"details"`
	gDto.Metadata
}

func (r *FacilityResponse) FromModel(model model.Facility) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.FacilityName = model.FacilityName
	r.Details = model.Details
	r.Metadata.FromModel(model.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}
