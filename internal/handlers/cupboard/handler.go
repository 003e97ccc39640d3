package cupboard

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/cupboard/model"
	"campusbook/internal/domains/cupboard/model/dto"
	"campusbook/internal/domains/cupboard/service"
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
	service service.Cupboard
	otel    otel.Otel
}

func New(service service.Cupboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cupboards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCupboard)
		routerGroup.Get("/", handler.GetCupboards)
		routerGroup.Get("/resource/{resourceId}", handler.GetCupboardsByResource)
		routerGroup.Get("/{id}", handler.GetCupboardByID)
		routerGroup.Patch("/{id}", handler.UpdateCupboard)
		routerGroup.Delete("/{id}", handler.DeleteCupboard)
	})
}

// CreateCupboard handles the creation of a new cupboard.
// @Summary Create a new cupboard
// @Description Create a new cupboard attached to a resource.
// @Tags Cupboard
// @Accept json
// @Produce json
// @Param request body dto.CreateCupboardRequest true "Create Cupboard Request"
// @Success 201 {object} response.Message "Cupboard created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cupboards [post]
// @Security BearerAuth
func (handler *Handler) CreateCupboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCupboard")
	defer scope.End()

	req := dto.CreateCupboardRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create cupboard")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Cupboard created successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(writer, http.StatusCreated, "Cupboard created successfully")
}

// GetCupboards retrieves all cupboards based on query parameters.
// @Summary Get all cupboards
// @Description Retrieve all cupboards with optional filtering and pagination.
// @Tags Cupboard
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetCupboardsResponse] "List of cupboards"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cupboards [get]
func (handler *Handler) GetCupboards(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCupboards")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	cupboards, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cupboards")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cupboards retrieved successfully")

	response.WithJSON(w, http.StatusOK, cupboards)
}

// GetCupboardsByResource retrieves the cupboards belonging to one resource.
// @Summary Get cupboards by resource
// @Description Retrieve all cupboards attached to the given resource.
// @Tags Cupboard
// @Accept json
// @Produce json
// @Param resourceId path integer true "Resource ID"
// @Success 200 {object} response.Data[dto.GetCupboardsResponse] "List of cupboards"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cupboards/resource/{resourceId} [get]
func (handler *Handler) GetCupboardsByResource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCupboardsByResource")
	defer scope.End()

	resourceID, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamResourceID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("resourceId must be an integer"))

		return
	}

	cupboards, err := handler.service.GetByResource(ctx, resourceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cupboards by resource")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cupboards retrieved successfully")

	response.WithJSON(w, http.StatusOK, cupboards)
}

// GetCupboardByID retrieves a cupboard by its ID.
// @Summary Get a cupboard by ID
// @Description Retrieve a cupboard by its unique identifier.
// @Tags Cupboard
// @Accept json
// @Produce json
// @Param id path integer true "Cupboard ID"
// @Success 200 {object} response.Data[dto.CupboardResponse] "Cupboard details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cupboards/{id} [get]
func (handler *Handler) GetCupboardByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCupboardByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	cupboard, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cupboard by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cupboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, cupboard)
}

// UpdateCupboard updates an existing cupboard by its ID.
// @Summary Update a cupboard by ID
// @Description Update the details of an existing cupboard.
// @Tags Cupboard
// @Accept json
// @Produce json
// @Param id path integer true "Cupboard ID"
// @Param request body dto.UpdateCupboardRequest true "Update Cupboard Request"
// @Success 200 {object} response.Message "Cupboard updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cupboards/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCupboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCupboard")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateCupboardRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cupboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cupboard updated successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Cupboard updated successfully")
}

// DeleteCupboard deletes a cupboard by its ID.
// @Summary Delete a cupboard by ID
// @Description Delete a cupboard using its unique identifier.
// @Tags Cupboard
// @Accept json
// @Produce json
// @Param id path integer true "Cupboard ID"
// @Success 200 {object} response.Message "Cupboard deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cupboards/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCupboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCupboard")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete cupboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cupboard deleted successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Cupboard deleted successfully")
}
