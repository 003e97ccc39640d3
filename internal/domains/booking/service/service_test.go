package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	kafkaMocks "campusbook/infras/kafka/mocks"
	"campusbook/infras/otel/mocks"
	bookingMocks "campusbook/internal/domains/booking/mocks"
	"campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/booking/model/dto"
	"campusbook/internal/domains/booking/service"
	resourceMocks "campusbook/internal/domains/resource/mocks"
	shelfMocks "campusbook/internal/domains/shelf/mocks"
	userMocks "campusbook/internal/domains/user/mocks"
	"campusbook/shared/cache"
	cacheMocks "campusbook/shared/cache/mocks"
	"campusbook/shared/constant"
	"campusbook/shared/datetime"
	"campusbook/shared/failure"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	resource *resourceMocks.MockResource
	shelf    *shelfMocks.MockShelf
	user     *userMocks.MockUser
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		resource: resourceMocks.NewMockResource(ctrl),
		shelf:    shelfMocks.NewMockShelf(ctrl),
		user:     userMocks.NewMockUser(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	// Cache writes and invalidations run on detached goroutines.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(m.repo, m.resource, m.shelf, m.user, cfg, m.cache, m.kafka, mocks.NewOtel())

	return svc, m
}

func userContext(userID int, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func intPtr(v int) *int {
	return &v
}

func pendingBooking(id, userID int) model.Booking {
	start, _ := datetime.Parse("2099-03-02T07:45:00")
	end, _ := datetime.Parse("2099-03-02T09:35:00")

	return model.Booking{
		ID:            id,
		ResourceID:    intPtr(4),
		UserID:        userID,
		StartDatetime: start,
		EndDatetime:   end,
		Status:        model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "7",
			ModifiedBy: "7",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful resource booking",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ResourceID:    intPtr(4),
				StartDatetime: "2099-03-02T07:45:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {
				m.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.resource.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).Return(42, nil)
			},
		},
		{
			name: "successful shelf booking",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ShelfID:       intPtr(9),
				StartDatetime: "2099-03-02T09:50:00",
				EndDatetime:   "2099-03-02T11:30:00",
			},
			setupMock: func() {
				m.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.shelf.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).Return(43, nil)
			},
		},
		{
			name: "both resource and shelf set",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ResourceID:    intPtr(4),
				ShelfID:       intPtr(9),
				StartDatetime: "2099-03-02T07:45:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "neither resource nor shelf set",
			req: dto.CreateBookingRequest{
				UserID:        7,
				StartDatetime: "2099-03-02T07:45:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "start not before end",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ResourceID:    intPtr(4),
				StartDatetime: "2099-03-02T09:35:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "start in the past",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ResourceID:    intPtr(4),
				StartDatetime: "2020-03-02T07:45:00",
				EndDatetime:   "2020-03-02T09:35:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed datetime",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ResourceID:    intPtr(4),
				StartDatetime: "02-03-2099 07:45",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "user does not exist",
			req: dto.CreateBookingRequest{
				UserID:        99,
				ResourceID:    intPtr(4),
				StartDatetime: "2099-03-02T07:45:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {
				m.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "resource does not exist",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ResourceID:    intPtr(404),
				StartDatetime: "2099-03-02T07:45:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {
				m.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.resource.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "shelf does not exist",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ShelfID:       intPtr(404),
				StartDatetime: "2099-03-02T07:45:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {
				m.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.shelf.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "overlapping approved booking",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ResourceID:    intPtr(4),
				StartDatetime: "2099-03-02T07:45:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {
				m.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.resource.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert error",
			req: dto.CreateBookingRequest{
				UserID:        7,
				ResourceID:    intPtr(4),
				StartDatetime: "2099-03-02T07:45:00",
				EndDatetime:   "2099-03-02T09:35:00",
			},
			setupMock: func() {
				m.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.resource.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).Return(0, errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(userContext(tt.req.UserID, constant.RoleStudent), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, result.ID)
				assert.Equal(t, model.StatusPending, result.Status)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdateBookingStatusRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "admin approves pending booking",
			ctx:  userContext(1, constant.RoleAdmin),
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusApproved},
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(5, 7), nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "admin flips approved booking to rejected",
			ctx:  userContext(1, constant.RoleAdmin),
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusRejected},
			setupMock: func() {
				approved := pendingBooking(5, 7)
				approved.Status = model.StatusApproved
				approved.ApproverID = intPtr(1)

				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approved, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "student may not change status",
			ctx:       userContext(7, constant.RoleStudent),
			req:       dto.UpdateBookingStatusRequest{Status: model.StatusApproved},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "faculty may not change status",
			ctx:       userContext(8, constant.RoleFaculty),
			req:       dto.UpdateBookingStatusRequest{Status: model.StatusRejected},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name: "booking not found",
			ctx:  userContext(1, constant.RoleAdmin),
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusApproved},
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			ctx:  userContext(1, constant.RoleAdmin),
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusApproved},
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(5, 7), nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateStatus(tt.ctx, tt.req, 5)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner deletes own pending booking",
			ctx:  userContext(7, constant.RoleStudent),
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(5, 7), nil)
				m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "admin deletes approved booking of another user",
			ctx:  userContext(1, constant.RoleAdmin),
			setupMock: func() {
				approved := pendingBooking(5, 7)
				approved.Status = model.StatusApproved

				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approved, nil)
				m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "non-owner may not delete",
			ctx:  userContext(8, constant.RoleStudent),
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(5, 7), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "owner may not delete decided booking",
			ctx:  userContext(7, constant.RoleStudent),
			setupMock: func() {
				rejected := pendingBooking(5, 7)
				rejected.Status = model.StatusRejected

				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rejected, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "booking not found",
			ctx:  userContext(1, constant.RoleAdmin),
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(tt.ctx, 5)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	t.Run("returns booking on cache miss", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(5, 7), nil)

		result, err := svc.Get(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, 5, result.ID)
		assert.Equal(t, "2099-03-02T07:45:00", result.StartDatetime)
	})

	t.Run("not found", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), 404)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
