package model

import (
	"time"

	"campusbook/shared/model"
)

const (
	TableName  = "maintenances"
	EntityName = "maintenance"

	FieldID              = "id"
	FieldResourceID      = "resource_id"
	FieldMaintenanceType = "maintenance_type"
	FieldScheduledDate   = "scheduled_date"
	FieldStatus          = "status"
	FieldNotes           = "notes"

	StatusScheduled  = "SCHEDULED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

type Maintenance struct {
	ID              int       `db:"id"`
	ResourceID      int       `db:"resource_id"`
	MaintenanceType string    `db:"maintenance_type"`
	ScheduledDate   time.Time `db:"scheduled_date"`
	Status          string    `db:"status"`
	Notes           string    `db:"notes"`
	model.Metadata
}
