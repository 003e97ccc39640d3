package timetable

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/timetable/service"
	"campusbook/shared/constant"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Timetable
	otel    otel.Otel
}

func New(service service.Timetable, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/timetable", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWeek)
	})
}

// GetWeek renders the weekly booking grid.
// @Summary Get the weekly timetable
// @Description Retrieve the Monday-Friday timetable grid for a week, optionally filtered by building.
// @Tags Timetable
// @Accept json
// @Produce json
// @Param week_start query string false "Week start date (YYYY-MM-DD, normalized to Monday)"
// @Param building query string false "Filter by building name"
// @Success 200 {object} response.Data[dto.TimetableResponse] "Weekly timetable"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/timetable [get]
func (handler *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeek")
	defer scope.End()

	weekStart := r.URL.Query().Get(constant.RequestParamWeekStart)
	building := r.URL.Query().Get(constant.RequestParamBuilding)

	timetable, err := handler.service.GetWeek(ctx, weekStart, building)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get timetable")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Timetable retrieved successfully")

	response.WithJSON(w, http.StatusOK, timetable)
}
