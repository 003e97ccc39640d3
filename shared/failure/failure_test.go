package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"campusbook/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("end time must be after start time"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "end time must be after start time",
		},
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("invalid payload")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid payload",
		},
		{
			name:     "not found",
			err:      failure.NotFound("booking not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "booking not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("resource is already booked for this time slot"),
			wantCode: http.StatusConflict,
			wantMsg:  "resource is already booked for this time slot",
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("missing authorization header"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "missing authorization header",
		},
		{
			name:     "forbidden",
			err:      failure.Forbidden("only admins may change booking status"),
			wantCode: http.StatusForbidden,
			wantMsg:  "only admins may change booking status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
}

func TestBadRequest_NilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
