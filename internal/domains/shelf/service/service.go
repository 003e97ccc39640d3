package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	cupboardModel "campusbook/internal/domains/cupboard/model"
	cupboardRepo "campusbook/internal/domains/cupboard/repository"
	"campusbook/internal/domains/shelf/model"
	"campusbook/internal/domains/shelf/model/dto"
	"campusbook/internal/domains/shelf/repository"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetShelf    = "shelf:get"
	cacheGetAllShelf = "shelf:gets"
	cacheCountShelf  = "shelf:count"
)

type Shelf interface {
	Create(ctx context.Context, req dto.CreateShelfRequest) (int, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetShelvesResponse, error)
	GetByCupboard(ctx context.Context, cupboardID int) (dto.GetShelvesResponse, error)
	Get(ctx context.Context, id int) (dto.ShelfResponse, error)
	Update(ctx context.Context, req dto.UpdateShelfRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo         repository.Shelf
	cupboardRepo cupboardRepo.Cupboard
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Shelf, cupboardRepo cupboardRepo.Cupboard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Shelf {
	return &serviceImpl{
		repo:         repo,
		cupboardRepo: cupboardRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateShelfRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)

	cupboardExists, err := s.cupboardRepo.Exist(ctx, shared.FilterByID(req.CupboardID, cupboardModel.FieldID, cupboardModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cupboard exists")

		return 0, fmt.Errorf("failed to check if cupboard exists: %w", err)
	}

	if !cupboardExists {
		return 0, failure.BadRequestFromString("cupboard does not exist") // nolint:wrapcheck
	}

	id, err = s.repo.InsertReturning(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create shelf")

		return 0, fmt.Errorf("failed to create shelf: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllShelf)
		shared.InvalidateCaches(c, s.cache, cacheCountShelf)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetShelvesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllShelf, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count shelves")

		return res, fmt.Errorf("failed to count shelves: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shelves")

		return res, fmt.Errorf("failed to get shelves: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shelves to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByCupboard(ctx context.Context, cupboardID int) (res dto.GetShelvesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCupboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(cupboardID, model.FieldCupboardID, model.TableName)

	return s.GetAll(ctx, gDto.QueryParams{}, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ShelfResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetShelf, fmt.Sprint(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	shelf, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get shelf")

		return res, fmt.Errorf("failed to get shelf: %w", err)
	}

	if shelf.ID == 0 {
		return res, failure.NotFound("shelf not found") // nolint:wrapcheck
	}

	res.FromModel(shelf)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shelf to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateShelfRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateShelfRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if shelf exists")

		return fmt.Errorf("failed to check if shelf exists: %w", err)
	}

	if !exist {
		return failure.NotFound("shelf not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update shelf")

		return fmt.Errorf("failed to update shelf: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetShelf, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete shelf from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllShelf)
		shared.InvalidateCaches(c, s.cache, cacheCountShelf)
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
		log.Error().Err(err).Msg("failed to check if shelf exists")

		return fmt.Errorf("failed to check if shelf exists: %w", err)
	}

	if !exist {
		return failure.NotFound("shelf not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete shelf")

		return fmt.Errorf("failed to delete shelf: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetShelf, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete shelf from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllShelf)
		shared.InvalidateCaches(c, s.cache, cacheCountShelf)
	}()

	return nil
}
