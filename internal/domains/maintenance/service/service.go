package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/maintenance/model"
	"campusbook/internal/domains/maintenance/model/dto"
	"campusbook/internal/domains/maintenance/repository"
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
	cacheGetAllMaintenance = "maintenance:gets"
	cacheCountMaintenance  = "maintenance:count"
)

type Maintenance interface {
	Create(ctx context.Context, req dto.CreateMaintenanceRequest) (int, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMaintenancesResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateMaintenanceStatusRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo         repository.Maintenance
	resourceRepo resourceRepo.Resource
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Maintenance, resourceRepo resourceRepo.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Maintenance {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMaintenanceRequest) (id int, err error) {
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

	maintenance, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse maintenance request")

		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid scheduled date: %v", err)) // nolint:wrapcheck
	}

	id, err = s.repo.InsertReturning(ctx, maintenance)
	if err != nil {
		log.Error().Err(err).Msg("failed to create maintenance")

		return 0, fmt.Errorf("failed to create maintenance: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMaintenancesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMaintenance, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenances")

		return res, fmt.Errorf("failed to count maintenances: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenances")

		return res, fmt.Errorf("failed to get maintenances: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenances to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateMaintenanceStatusRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if maintenance exists")

		return fmt.Errorf("failed to check if maintenance exists: %w", err)
	}

	if !exist {
		return failure.NotFound("maintenance not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct {
		Status string `db:"status"`
		Notes  string `db:"notes"`
	}{Status: req.Status, Notes: req.Notes}, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update maintenance status")

		return fmt.Errorf("failed to update maintenance status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
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
		log.Error().Err(err).Msg("failed to check if maintenance exists")

		return fmt.Errorf("failed to check if maintenance exists: %w", err)
	}

	if !exist {
		return failure.NotFound("maintenance not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete maintenance")

		return fmt.Errorf("failed to delete maintenance: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()

	return nil
}
