package service

import (
	"context"
	"fmt"
	"time"

	"campusbook/config"
	"campusbook/infras/otel"
	bookingModel "campusbook/internal/domains/booking/model"
	bookingDto "campusbook/internal/domains/booking/model/dto"
	bookingRepo "campusbook/internal/domains/booking/repository"
	"campusbook/internal/domains/timetable/model"
	"campusbook/internal/domains/timetable/model/dto"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	"campusbook/shared/datetime"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
	"campusbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheGetTimetable = "timetable:get"

type Timetable interface {
	GetWeek(ctx context.Context, weekStart, building string) (dto.TimetableResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Timetable {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// weekFilter matches bookings whose start falls inside the Monday-Friday
// range, with an optional filter on the building the resource belongs to.
func weekFilter(weekStart time.Time, building string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    bookingModel.FieldStartDatetime,
			ArgName:  "week_start",
			Value:    datetime.Local{Time: weekStart},
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    bookingModel.TableName,
		},
		gDto.Filter{
			Field:    bookingModel.FieldStartDatetime,
			ArgName:  "week_end",
			Value:    datetime.Local{Time: weekStart.AddDate(0, 0, model.DaysPerWeek)},
			Operator: gDto.FilterOperatorLess,
			Table:    bookingModel.TableName,
		},
	}

	if building != "" {
		filters = append(filters, gDto.Filter{
			Field:    "name",
			ArgName:  "building_name",
			Value:    building,
			Operator: gDto.FilterOperatorEq,
			Table:    "buildings",
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

// GetWeek builds the Monday-Friday grid for the requested week. An empty
// weekStart means the current week, with weekends rolling forward to the
// next Monday; any other date is normalized back to its own Monday.
func (s *serviceImpl) GetWeek(ctx context.Context, weekStart, building string) (res dto.TimetableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeek")
	defer scope.End()
	defer scope.TraceIfError(err)

	var monday time.Time

	if weekStart == "" {
		monday = model.CurrentWeekStart(timezone.Now())
	} else {
		parsed, err := time.ParseInLocation(datetime.DateLayout, weekStart, timezone.GetLocation())
		if err != nil {
			return res, failure.BadRequestFromString("week_start must be a YYYY-MM-DD date") // nolint:wrapcheck
		}

		monday = model.NormalizeWeekStart(parsed)
	}

	cacheKey := shared.BuildCacheKey(cacheGetTimetable, monday.Format(datetime.DateLayout), building)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for timetable")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: "bookings.id", SortDir: gDto.SortDirAsc}

	bookings, err := s.bookingRepo.GetAll(ctx, params, weekFilter(monday, building))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for timetable")

		return res, fmt.Errorf("failed to get bookings for timetable: %w", err)
	}

	res = s.buildGrid(monday, building, bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save timetable to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) buildGrid(monday time.Time, building string, bookings []bookingModel.Booking) dto.TimetableResponse {
	res := dto.TimetableResponse{
		WeekStart:     monday.Format(datetime.DateLayout),
		PrevWeekStart: model.PrevWeekStart(monday).Format(datetime.DateLayout),
		NextWeekStart: model.NextWeekStart(monday).Format(datetime.DateLayout),
		Building:      building,
	}

	timeline := model.Timeline()
	now := timezone.Now()

	res.Days = make([]dto.Day, 0, model.DaysPerWeek)

	for _, date := range model.WeekDates(monday) {
		day := dto.Day{Date: date, Cells: make([]dto.Cell, 0, len(timeline))}

		for _, slot := range timeline {
			day.Cells = append(day.Cells, s.buildCell(date, slot, now, bookings))
		}

		res.Days = append(res.Days, day)
	}

	return res
}

// buildCell resolves one grid cell. A booking occupies the cell only when
// its start datetime equals the cell key character for character; the first
// matching booking wins. Breaks never hold bookings.
func (s *serviceImpl) buildCell(date string, slot model.Slot, now time.Time, bookings []bookingModel.Booking) dto.Cell {
	cell := dto.Cell{Slot: slot}

	if slot.Break {
		cell.State = model.CellStateBreak

		return cell
	}

	key := model.CellKey(date, slot)

	for _, booking := range bookings {
		if booking.StartDatetime.String() == key {
			cell.State = model.CellStateBooked
			cell.Booking = &bookingDto.BookingResponse{}
			cell.Booking.FromModel(booking)

			return cell
		}
	}

	slotEnd, err := datetime.FromSlot(date, slot.End)
	if err == nil && slotEnd.Time.Before(now) {
		cell.State = model.CellStatePast

		return cell
	}

	cell.State = model.CellStateAvailable

	return cell
}
