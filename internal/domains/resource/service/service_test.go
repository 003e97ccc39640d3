package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/otel/mocks"
	s3Mocks "campusbook/infras/s3/mocks"
	resourceMocks "campusbook/internal/domains/resource/mocks"
	"campusbook/internal/domains/resource/model"
	"campusbook/internal/domains/resource/service"
	"campusbook/shared/cache"
	cacheMocks "campusbook/shared/cache/mocks"
	"campusbook/shared/failure"
)

type resourceMockSet struct {
	repo  *resourceMocks.MockResource
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newResourceService(ctrl *gomock.Controller) (service.Resource, resourceMockSet) {
	m := resourceMockSet{
		repo:  resourceMocks.NewMockResource(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, &config.Config{}, m.cache, m.s3, mocks.NewOtel())

	return svc, m
}

func projectorInLab(id int) model.Resource {
	return model.Resource{
		ID:             id,
		Name:           "Projector A",
		ResourceTypeID: 2,
		BuildingID:     1,
		FloorNumber:    3,
		BuildingName:   "Science Wing",
		TypeName:       "PROJECTOR",
	}
}

func TestResourceService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newResourceService(ctrl)

	t.Run("first match in listing order wins", func(t *testing.T) {
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Resource{projectorInLab(4)}, nil)

		result, err := svc.Resolve(context.Background(), 1, 2)

		assert.NoError(t, err)
		assert.Equal(t, 4, result.ID)
		assert.Equal(t, 1, result.BuildingID)
		assert.Equal(t, 2, result.ResourceTypeID)
	})

	t.Run("no matching resource", func(t *testing.T) {
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Resource{}, nil)

		_, err := svc.Resolve(context.Background(), 1, 99)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.Resolve(context.Background(), 1, 2)

		assert.Error(t, err)
	})
}

func TestResourceService_UploadPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newResourceService(ctrl)

	fileHeader := &multipart.FileHeader{Filename: "projector.jpg"}

	t.Run("uploads and stores photo url", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(projectorInLab(4), nil)

		m.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), fileHeader, gomock.Any()).
			Return("https://bucket.example.com/resources/photo.jpg", nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := svc.UploadPhoto(context.Background(), 4, nil, fileHeader)

		assert.NoError(t, err)
		assert.Equal(t, "https://bucket.example.com/resources/photo.jpg", result.PhotoURL)
	})

	t.Run("resource not found", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Resource{}, nil)

		_, err := svc.UploadPhoto(context.Background(), 404, nil, fileHeader)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("upload error", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(projectorInLab(4), nil)

		m.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), fileHeader, gomock.Any()).
			Return("", errors.New("upload failed"))

		_, err := svc.UploadPhoto(context.Background(), 4, nil, fileHeader)

		assert.Error(t, err)
	})
}

func TestResourceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newResourceService(ctrl)

	t.Run("returns resource on cache miss", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(projectorInLab(4), nil)

		result, err := svc.Get(context.Background(), 4)

		assert.NoError(t, err)
		assert.Equal(t, 4, result.ID)
		assert.Equal(t, "Science Wing", result.BuildingName)
	})

	t.Run("not found", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Resource{}, nil)

		_, err := svc.Get(context.Background(), 404)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
