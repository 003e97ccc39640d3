package facility

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/facility/model"
	"campusbook/internal/domains/facility/model/dto"
	"campusbook/internal/domains/facility/service"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
	"campusbook/shared/validator"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Facility
	otel    otel.Otel
}

func New(service service.Facility, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/facilities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFacility)
		routerGroup.Get("/", handler.GetFacilities)
		routerGroup.Get("/resource/{resourceId}", handler.GetFacilitiesByResource)
		routerGroup.Get("/{id}", handler.GetFacilityByID)
		routerGroup.Patch("/{id}", handler.UpdateFacility)
		routerGroup.Delete("/{id}", handler.DeleteFacility)
	})
}

// CreateFacility handles the creation of a new facility.
// @Summary Create a new facility
// @Description Create a new facility attached to a resource.
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.CreateFacilityRequest true "Create Facility Request"
// @Success 201 {object} response.Message "Facility created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities [post]
// @Security BearerAuth
func (handler *Handler) CreateFacility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFacility")
	defer scope.End()

	req := dto.CreateFacilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create facility")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facility created successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(writer, http.StatusCreated, "Facility created successfully")
}

// GetFacilities retrieves all facilities based on query parameters.
// @Summary Get all facilities
// @Description Retrieve all facilities with optional filtering and pagination.
// @Tags Facility
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param facility_name query string false "Filter by facility name"
// @Success 200 {object} response.Data[dto.GetFacilitiesResponse] "List of facilities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities [get]
func (handler *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if facilityName := r.URL.Query().Get(model.FieldFacilityName); facilityName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFacilityName,
			Operator: gDto.FilterOperatorLike,
			Value:    facilityName,
			Table:    model.TableName,
		})
	}

	facilities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facilities retrieved successfully")

	response.WithJSON(w, http.StatusOK, facilities)
}

// GetFacilitiesByResource retrieves the facilities of one resource.
// @Summary Get facilities by resource
// @Description Retrieve all facilities attached to the given resource.
// @Tags Facility
// @Accept json
// @Produce json
// @Param resourceId path integer true "Resource ID"
// @Success 200 {object} response.Data[dto.GetFacilitiesResponse] "List of facilities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/resource/{resourceId} [get]
func (handler *Handler) GetFacilitiesByResource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilitiesByResource")
	defer scope.End()

	resourceID, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamResourceID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("resourceId must be an integer"))

		return
	}

	facilities, err := handler.service.GetByResource(ctx, resourceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities by resource")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facilities retrieved successfully")

	response.WithJSON(w, http.StatusOK, facilities)
}

// GetFacilityByID retrieves a facility by its ID.
// @Summary Get a facility by ID
// @Description Retrieve a facility by its unique identifier.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path integer true "Facility ID"
// @Success 200 {object} response.Data[dto.FacilityResponse] "Facility details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [get]
func (handler *Handler) GetFacilityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	facility, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facility by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility retrieved successfully")

	response.WithJSON(w, http.StatusOK, facility)
}

// UpdateFacility updates an existing facility by its ID.
// @Summary Update a facility by ID
// @Description Update the details of an existing facility.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path integer true "Facility ID"
// @Param request body dto.UpdateFacilityRequest true "Update Facility Request"
// @Success 200 {object} response.Message "Facility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFacility")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateFacilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility updated successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Facility updated successfully")
}

// DeleteFacility deletes a facility by its ID.
// @Summary Delete a facility by ID
// @Description Delete a facility using its unique identifier.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path integer true "Facility ID"
// @Success 200 {object} response.Message "Facility deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFacility")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility deleted successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Facility deleted successfully")
}
