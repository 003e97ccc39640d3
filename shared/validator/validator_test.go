package validator_test

import (
	"strings"
	"testing"

	"campusbook/shared/failure"
	"campusbook/shared/validator"

	"github.com/stretchr/testify/assert"
)

type bookingPayload struct {
	UserID     int    `json:"user_id"        validate:"required"`
	ResourceID int    `json:"resource_id"    validate:"omitempty"`
	Start      string `json:"start_datetime" validate:"required"`
	Status     string `json:"status"         validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"user_id": 3, "resource_id": 1, "start_datetime": "2026-02-09T07:45:00"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"resource_id": 1}`,
			wantErr: true,
		},
		{
			name:    "status outside enumeration",
			body:    `{"user_id": 3, "start_datetime": "2026-02-09T07:45:00", "status": "CANCELLED"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"user_id": }`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bookingPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("APPROVED", "oneof=APPROVED REJECTED"))
	assert.Error(t, validator.ValidateVar("PENDING", "oneof=APPROVED REJECTED"))
}
