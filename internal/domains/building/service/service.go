package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/building/model"
	"campusbook/internal/domains/building/model/dto"
	"campusbook/internal/domains/building/repository"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBuilding    = "building:get"
	cacheGetAllBuilding = "building:gets"
	cacheCountBuilding  = "building:count"
)

type Building interface {
	Create(ctx context.Context, req dto.CreateBuildingRequest) (int, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBuildingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int) (dto.BuildingResponse, error)
	Update(ctx context.Context, req dto.UpdateBuildingRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo  repository.Building
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Building, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Building {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBuildingRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)

	building := req.ToModel(user)

	id, err = s.repo.InsertReturning(ctx, building)
	if err != nil {
		log.Error().Err(err).Msg("failed to create building")

		return 0, fmt.Errorf("failed to create building: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBuilding)
		shared.InvalidateCaches(c, s.cache, cacheCountBuilding)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBuildingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBuilding, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for buildings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count buildings")

		return res, fmt.Errorf("failed to count buildings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get buildings")

		return res, fmt.Errorf("failed to get buildings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save buildings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBuilding, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count buildings")

		return res, fmt.Errorf("failed to count buildings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save building count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.BuildingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBuilding, fmt.Sprint(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	building, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get building")

		return res, fmt.Errorf("failed to get building: %w", err)
	}

	if building.ID == 0 {
		return res, failure.NotFound("building not found") // nolint:wrapcheck
	}

	res.FromModel(building)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save building to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBuildingRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBuildingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if building exists")

		return fmt.Errorf("failed to check if building exists: %w", err)
	}

	if !exist {
		return failure.NotFound("building not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update building")

		return fmt.Errorf("failed to update building: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBuilding, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete building from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBuilding)
		shared.InvalidateCaches(c, s.cache, cacheCountBuilding)
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
		log.Error().Err(err).Msg("failed to check if building exists")

		return fmt.Errorf("failed to check if building exists: %w", err)
	}

	if !exist {
		return failure.NotFound("building not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete building")

		return fmt.Errorf("failed to delete building: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBuilding, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete building from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBuilding)
		shared.InvalidateCaches(c, s.cache, cacheCountBuilding)
	}()

	return nil
}
