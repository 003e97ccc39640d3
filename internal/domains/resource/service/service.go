package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/infras/s3"
	"campusbook/internal/domains/resource/model"
	"campusbook/internal/domains/resource/model/dto"
	"campusbook/internal/domains/resource/repository"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetResource    = "resource:get"
	cacheGetAllResource = "resource:gets"
	cacheCountResource  = "resource:count"

	photoDirectory = "resources"
)

type Resource interface {
	Create(ctx context.Context, req dto.CreateResourceRequest) (int, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetResourcesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int) (dto.ResourceResponse, error)
	Update(ctx context.Context, req dto.UpdateResourceRequest, id int) error
	Delete(ctx context.Context, id int) error
	Resolve(ctx context.Context, buildingID, resourceTypeID int) (dto.ResourceResponse, error)
	UploadPhoto(ctx context.Context, id int, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadPhotoResponse, error)
}

type serviceImpl struct {
	repo  repository.Resource
	cfg   *config.Config
	cache cache.RedisCache
	s3    s3.S3
	otel  otel.Otel
}

func New(repo repository.Resource, cfg *config.Config, cache cache.RedisCache, s3Client s3.S3, otel otel.Otel) Resource {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		s3:    s3Client,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateResourceRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)

	id, err = s.repo.InsertReturning(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create resource")

		return 0, fmt.Errorf("failed to create resource: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
		shared.InvalidateCaches(c, s.cache, cacheCountResource)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetResourcesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllResource, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resources")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count resources: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resources")

		return res, fmt.Errorf("failed to get resources: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resources to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountResource, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count resources")

		return res, fmt.Errorf("failed to count resources: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resource count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetResource, fmt.Sprint(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	resource, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == 0 {
		return res, failure.NotFound("resource not found") // nolint:wrapcheck
	}

	res.FromModel(resource)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resource to cache")
		}
	}()

	return res, nil
}

// Resolve finds the first resource, in listing order, whose building and
// type both match. Availability is not inspected here; overlapping
// bookings surface later as booking conflicts.
func (s *serviceImpl) Resolve(ctx context.Context, buildingID, resourceTypeID int) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBuildingID,
				Value:    buildingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldResourceTypeID,
				Value:    resourceTypeID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  model.TableName + "." + model.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	matches, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve resource")

		return res, fmt.Errorf("failed to resolve resource: %w", err)
	}

	if len(matches) == 0 {
		return res, failure.BadRequestFromString("no matching resource for this building/type combination") // nolint:wrapcheck
	}

	res.FromModel(matches[0])

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateResourceRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateResourceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if resource exists")

		return fmt.Errorf("failed to check if resource exists: %w", err)
	}

	if !exist {
		return failure.NotFound("resource not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update resource")

		return fmt.Errorf("failed to update resource: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetResource, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete resource from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
		shared.InvalidateCaches(c, s.cache, cacheCountResource)
	}()

	return nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, id int, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	resource, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == 0 {
		return res, failure.NotFound("resource not found") // nolint:wrapcheck
	}

	fileName := uuid.NewString() + path.Ext(fileHeader.Filename)

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, photoDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload resource photo")

		return res, fmt.Errorf("failed to upload resource photo: %w", err)
	}

	updatedFields := shared.TransformFields(struct {
		PhotoURL string `db:"photo_url"`
	}{PhotoURL: url}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to save resource photo url")

		return res, fmt.Errorf("failed to save resource photo url: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if resource.PhotoURL != constant.Empty {
			oldObject := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, resource.PhotoURL)
			if oldObject != constant.Empty {
				if err := s.s3.DeleteFile(c, s.cfg.External.S3.BucketName, constant.Empty, oldObject); err != nil {
					log.Error().Err(err).Msg("failed to delete old resource photo")
				}
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetResource, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete resource from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
	}()

	res.PhotoURL = url

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	resource, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == 0 {
		return failure.NotFound("resource not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete resource")

		return fmt.Errorf("failed to delete resource: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if resource.PhotoURL != constant.Empty {
			object := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, resource.PhotoURL)
			if object != constant.Empty {
				if err := s.s3.DeleteFile(c, s.cfg.External.S3.BucketName, constant.Empty, object); err != nil {
					log.Error().Err(err).Msg("failed to delete resource photo")
				}
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetResource, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete resource from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
		shared.InvalidateCaches(c, s.cache, cacheCountResource)
	}()

	return nil
}
