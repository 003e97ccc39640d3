package resourcetype

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/resourcetype/model"
	"campusbook/internal/domains/resourcetype/model/dto"
	"campusbook/internal/domains/resourcetype/service"
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
	service service.ResourceType
	otel    otel.Otel
}

func New(service service.ResourceType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/resource-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateResourceType)
		routerGroup.Get("/", handler.GetResourceTypes)
		routerGroup.Get("/{id}", handler.GetResourceTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateResourceType)
		routerGroup.Delete("/{id}", handler.DeleteResourceType)
	})
}

// CreateResourceType handles the creation of a new resource type.
// @Summary Create a new resource type
// @Description Create a new resource type with the provided name.
// @Tags ResourceType
// @Accept json
// @Produce json
// @Param request body dto.CreateResourceTypeRequest true "Create Resource Type Request"
// @Success 201 {object} response.Message "Resource type created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-types [post]
// @Security BearerAuth
func (handler *Handler) CreateResourceType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateResourceType")
	defer scope.End()

	req := dto.CreateResourceTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create resource type")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Resource type created successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(writer, http.StatusCreated, "Resource type created successfully")
}

// GetResourceTypes retrieves all resource types based on query parameters.
// @Summary Get all resource types
// @Description Retrieve all resource types with optional filtering and pagination.
// @Tags ResourceType
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type_name query string false "Filter by type name"
// @Success 200 {object} response.Data[dto.GetResourceTypesResponse] "List of resource types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-types [get]
func (handler *Handler) GetResourceTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if typeName := r.URL.Query().Get(model.FieldTypeName); typeName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTypeName,
			Operator: gDto.FilterOperatorLike,
			Value:    typeName,
			Table:    model.TableName,
		})
	}

	resourceTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resource types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource types retrieved successfully")

	response.WithJSON(w, http.StatusOK, resourceTypes)
}

// GetResourceTypeByID retrieves a resource type by its ID.
// @Summary Get a resource type by ID
// @Description Retrieve a resource type by its unique identifier.
// @Tags ResourceType
// @Accept json
// @Produce json
// @Param id path integer true "Resource type ID"
// @Success 200 {object} response.Data[dto.ResourceTypeResponse] "Resource type details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-types/{id} [get]
func (handler *Handler) GetResourceTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceTypeByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	resourceType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resource type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource type retrieved successfully")

	response.WithJSON(w, http.StatusOK, resourceType)
}

// UpdateResourceType updates an existing resource type by its ID.
// @Summary Update a resource type by ID
// @Description Update the details of an existing resource type.
// @Tags ResourceType
// @Accept json
// @Produce json
// @Param id path integer true "Resource type ID"
// @Param request body dto.UpdateResourceTypeRequest true "Update Resource Type Request"
// @Success 200 {object} response.Message "Resource type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateResourceType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateResourceType")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateResourceTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update resource type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource type updated successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Resource type updated successfully")
}

// DeleteResourceType deletes a resource type by its ID.
// @Summary Delete a resource type by ID
// @Description Delete a resource type using its unique identifier.
// @Tags ResourceType
// @Accept json
// @Produce json
// @Param id path integer true "Resource type ID"
// @Success 200 {object} response.Message "Resource type deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resource-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteResourceType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteResourceType")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete resource type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource type deleted successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Resource type deleted successfully")
}
