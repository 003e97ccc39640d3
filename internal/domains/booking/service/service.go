package service

import (
	"context"
	"fmt"
	"strconv"

	"campusbook/config"
	"campusbook/infras/kafka"
	"campusbook/infras/otel"
	"campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/booking/model/dto"
	"campusbook/internal/domains/booking/repository"
	resourceModel "campusbook/internal/domains/resource/model"
	resourceRepo "campusbook/internal/domains/resource/repository"
	shelfModel "campusbook/internal/domains/shelf/model"
	shelfRepo "campusbook/internal/domains/shelf/repository"
	userModel "campusbook/internal/domains/user/model"
	userRepo "campusbook/internal/domains/user/repository"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	"campusbook/shared/datetime"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
	"campusbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int) (dto.BookingResponse, error)
	GetByUser(ctx context.Context, userID int) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo         repository.Booking
	resourceRepo resourceRepo.Resource
	shelfRepo    shelfRepo.Shelf
	userRepo     userRepo.User
	cfg          *config.Config
	cache        cache.RedisCache
	kafka        kafka.Client
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	resourceRepo resourceRepo.Resource,
	shelfRepo shelfRepo.Shelf,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		shelfRepo:    shelfRepo,
		userRepo:     userRepo,
		cfg:          cfg,
		cache:        cache,
		kafka:        kafkaClient,
		otel:         otel,
	}
}

// conflictFilter matches APPROVED bookings of the same subject whose
// [start, end) interval overlaps the requested one.
func conflictFilter(subjectField string, subjectID int, start, end datetime.Local) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    subjectField,
				Value:    subjectID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusApproved,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDatetime,
				ArgName:  "overlap_end",
				Value:    end,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDatetime,
				ArgName:  "overlap_start",
				Value:    start,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)

	if (req.ResourceID == nil) == (req.ShelfID == nil) {
		return res, failure.BadRequestFromString("exactly one of resource_id or shelf_id must be set") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if !booking.StartDatetime.Time.Before(booking.EndDatetime.Time) {
		return res, failure.BadRequestFromString("start datetime must be before end datetime") // nolint:wrapcheck
	}

	if booking.StartDatetime.Time.Before(timezone.Now()) {
		return res, failure.BadRequestFromString("cannot create a booking in the past") // nolint:wrapcheck
	}

	userExists, err := s.userRepo.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !userExists {
		return res, failure.BadRequestFromString("user does not exist") // nolint:wrapcheck
	}

	subjectField := model.FieldResourceID
	subjectID := 0

	if req.ResourceID != nil {
		subjectID = *req.ResourceID

		resourceExists, err := s.resourceRepo.Exist(ctx, shared.FilterByID(subjectID, resourceModel.FieldID, resourceModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if resource exists")

			return res, fmt.Errorf("failed to check if resource exists: %w", err)
		}

		if !resourceExists {
			return res, failure.BadRequestFromString("resource does not exist") // nolint:wrapcheck
		}
	} else {
		subjectField = model.FieldShelfID
		subjectID = *req.ShelfID

		shelfExists, err := s.shelfRepo.Exist(ctx, shared.FilterByID(subjectID, shelfModel.FieldID, shelfModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if shelf exists")

			return res, fmt.Errorf("failed to check if shelf exists: %w", err)
		}

		if !shelfExists {
			return res, failure.BadRequestFromString("shelf does not exist") // nolint:wrapcheck
		}
	}

	conflicting, err := s.repo.Exist(ctx, conflictFilter(subjectField, subjectID, booking.StartDatetime, booking.EndDatetime))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return res, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if conflicting {
		return res, failure.Conflict("resource is already booked for this time slot") // nolint:wrapcheck
	}

	id, err := s.repo.InsertReturning(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id
	res.FromModel(booking)

	s.publishEvent(ctx, dto.EventBookingCreated, res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.Itoa(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByUser(ctx context.Context, userID int) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, model.FieldUserID, model.TableName)

	return s.GetAll(ctx, gDto.QueryParams{}, filter)
}

// UpdateStatus approves or rejects a booking. Only admins may call it, and
// a decided booking may be flipped the other way by a later call.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if shared.RoleFromContext(ctx) != constant.RoleAdmin {
		return failure.Forbidden("only admins may change booking status") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	approverID := shared.UserIDFromContext(ctx)
	if req.ApproverID != nil {
		approverID = *req.ApproverID
	}

	updatedFields := shared.TransformFields(struct {
		Status     string `db:"status"`
		ApproverID int    `db:"approver_id"`
	}{Status: req.Status, ApproverID: approverID}, shared.UserFromContext(ctx))

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	booking.ApproverID = &approverID

	var res dto.BookingResponse
	res.FromModel(booking)

	s.publishEvent(ctx, dto.EventBookingStatusChanged, res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, strconv.Itoa(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return nil
}

// Delete removes a booking. Admins may delete any booking; the requester
// may delete their own only while it is still pending.
func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	role := shared.RoleFromContext(ctx)
	requester := shared.UserIDFromContext(ctx)

	if role != constant.RoleAdmin {
		if booking.UserID != requester {
			return failure.Forbidden("you may only delete your own bookings") // nolint:wrapcheck
		}

		if booking.Status != model.StatusPending {
			return failure.Forbidden("only pending bookings can be deleted") // nolint:wrapcheck
		}
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, strconv.Itoa(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// publishEvent emits a booking lifecycle event, fire and forget.
func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking dto.BookingResponse) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: strconv.Itoa(booking.ID),
			Value: dto.BookingEvent{
				Event:   event,
				Booking: booking,
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}
