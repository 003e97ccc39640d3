package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/cupboard/model"
	"campusbook/internal/domains/cupboard/model/dto"
	"campusbook/internal/domains/cupboard/repository"
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
	cacheGetCupboard    = "cupboard:get"
	cacheGetAllCupboard = "cupboard:gets"
	cacheCountCupboard  = "cupboard:count"
)

type Cupboard interface {
	Create(ctx context.Context, req dto.CreateCupboardRequest) (int, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCupboardsResponse, error)
	GetByResource(ctx context.Context, resourceID int) (dto.GetCupboardsResponse, error)
	Get(ctx context.Context, id int) (dto.CupboardResponse, error)
	Update(ctx context.Context, req dto.UpdateCupboardRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo         repository.Cupboard
	resourceRepo resourceRepo.Resource
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Cupboard, resourceRepo resourceRepo.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Cupboard {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCupboardRequest) (id int, err error) {
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
		log.Error().Err(err).Msg("failed to create cupboard")

		return 0, fmt.Errorf("failed to create cupboard: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCupboard)
		shared.InvalidateCaches(c, s.cache, cacheCountCupboard)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCupboardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCupboard, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cupboards")

		return res, fmt.Errorf("failed to count cupboards: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cupboards")

		return res, fmt.Errorf("failed to get cupboards: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cupboards to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByResource(ctx context.Context, resourceID int) (res dto.GetCupboardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByResource")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(resourceID, model.FieldResourceID, model.TableName)

	return s.GetAll(ctx, gDto.QueryParams{}, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.CupboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCupboard, fmt.Sprint(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	cupboard, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cupboard")

		return res, fmt.Errorf("failed to get cupboard: %w", err)
	}

	if cupboard.ID == 0 {
		return res, failure.NotFound("cupboard not found") // nolint:wrapcheck
	}

	res.FromModel(cupboard)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cupboard to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCupboardRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCupboardRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cupboard exists")

		return fmt.Errorf("failed to check if cupboard exists: %w", err)
	}

	if !exist {
		return failure.NotFound("cupboard not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update cupboard")

		return fmt.Errorf("failed to update cupboard: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCupboard, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete cupboard from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCupboard)
		shared.InvalidateCaches(c, s.cache, cacheCountCupboard)
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
		log.Error().Err(err).Msg("failed to check if cupboard exists")

		return fmt.Errorf("failed to check if cupboard exists: %w", err)
	}

	if !exist {
		return failure.NotFound("cupboard not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete cupboard")

		return fmt.Errorf("failed to delete cupboard: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCupboard, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete cupboard from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCupboard)
		shared.InvalidateCaches(c, s.cache, cacheCountCupboard)
	}()

	return nil
}
