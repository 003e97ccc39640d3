package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/facility/model"
	"campusbook/internal/domains/facility/model/dto"
	"campusbook/internal/domains/facility/repository"
	resourceModel "campusbook/internal/domains/resource/model"
	resourceRepo "campusbook/internal/domains/resource/repository"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFacility    = "facility:get"
	cacheGetAllFacility = "facility:gets"
	cacheCountFacility  = "facility:count"
)

type Facility interface {
	Create(ctx context.Context, req dto.CreateFacilityRequest) (int, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFacilitiesResponse, error)
	GetByResource(ctx context.Context, resourceID int) (dto.GetFacilitiesResponse, error)
	Get(ctx context.Context, id int) (dto.FacilityResponse, error)
	Update(ctx context.Context, req dto.UpdateFacilityRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo         repository.Facility
	resourceRepo resourceRepo.Resource
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Facility, resourceRepo resourceRepo.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Facility {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFacilityRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)

	resourceExists, err := s.resourceRepo.Exist(ctx, shared.FilterByID(req.ResourceID, resourceModel.FieldID, resourceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if resource exists")

		return 0, fmt.Errorf("failed to check if resource exists: %w", err)
	}

	if !resourceExists {
		return 0, failure.BadRequestFromString("resource does not exist") // nolint:wrapcheck
	}

	id, err = s.repo.InsertReturning(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create facility")

		return 0, fmt.Errorf("failed to create facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
		shared.InvalidateCaches(c, s.cache, cacheCountFacility)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFacilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFacility, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities")

		return res, fmt.Errorf("failed to get facilities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facilities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByResource(ctx context.Context, resourceID int) (res dto.GetFacilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByResource")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(resourceID, model.FieldResourceID, model.TableName)

	return s.GetAll(ctx, gDto.QueryParams{}, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFacility, fmt.Sprint(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	facility, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == 0 {
		return res, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	res.FromModel(facility)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFacilityRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateFacilityRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if facility exists")

		return fmt.Errorf("failed to check if facility exists: %w", err)
	}

	if !exist {
		return failure.NotFound("facility not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update facility")

		return fmt.Errorf("failed to update facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFacility, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete facility from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
		shared.InvalidateCaches(c, s.cache, cacheCountFacility)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if facility exists")

		return fmt.Errorf("failed to check if facility exists: %w", err)
	}

	if !exist {
		return failure.NotFound("facility not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete facility")

		return fmt.Errorf("failed to delete facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFacility, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete facility from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
		shared.InvalidateCaches(c, s.cache, cacheCountFacility)
	}()

	return nil
}
