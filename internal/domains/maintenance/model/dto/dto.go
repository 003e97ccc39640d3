package dto

import (
	"time"

	"campusbook/internal/domains/maintenance/model"
	"campusbook/shared"
	"campusbook/shared/datetime"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateMaintenanceRequest struct {
	ResourceID      int    `json:"resource_id"      validate:"required"`
	MaintenanceType string `json:"maintenance_type" validate:"required,max=100"`
	ScheduledDate   string `json:"scheduled_date"   validate:"required"`
	Notes           string `json:"notes"            validate:"omitempty"`
}

func (c *CreateMaintenanceRequest) ToModel(user string) (model.Maintenance, error) {
	scheduledDate, err := time.ParseInLocation(datetime.DateLayout, c.ScheduledDate, timezone.GetLocation())
	if err != nil {
		return model.Maintenance{}, err
	}

	return model.Maintenance{
		ResourceID:      c.ResourceID,
		MaintenanceType: c.MaintenanceType,
		ScheduledDate:   scheduledDate,
		Status:          model.StatusScheduled,
		Notes:           c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
	Notes  string `json:"notes"  validate:"omitempty"`
}

type MaintenanceResponse struct {
	ID              int    `json:"id"`
	ResourceID      int    `json:"resource_id"`
	MaintenanceType string `json:"maintenance_type"`
	ScheduledDate   string `json:"scheduled_date"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	gDto.Metadata
}

func (r *MaintenanceResponse) FromModel(model model.Maintenance) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.MaintenanceType = model.MaintenanceType
	r.ScheduledDate = model.ScheduledDate.Format(datetime.DateLayout)
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetMaintenancesResponse struct {
	Maintenances []MaintenanceResponse `json:"maintenances"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetMaintenancesResponse) FromModels(models []model.Maintenance, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Maintenances = make([]MaintenanceResponse, len(models))
	for i, mod := range models {
		r.Maintenances[i].FromModel(mod)
	}
}
