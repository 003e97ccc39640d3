package resource

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/resource/model"
	"campusbook/internal/domains/resource/model/dto"
	"campusbook/internal/domains/resource/service"
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
	service service.Resource
	otel    otel.Otel
}

func New(service service.Resource, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/resources", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateResource)
		routerGroup.Get("/", handler.GetResources)
		routerGroup.Get("/resolve", handler.ResolveResource)
		routerGroup.Get("/{id}", handler.GetResourceByID)
		routerGroup.Patch("/{id}", handler.UpdateResource)
		routerGroup.Post("/{id}/photo", handler.UploadResourcePhoto)
		routerGroup.Delete("/{id}", handler.DeleteResource)
	})
}

// CreateResource handles the creation of a new resource.
// @Summary Create a new resource
// @Description Create a new resource in a building with a resource type.
// @Tags Resource
// @Accept json
// @Produce json
// @Param request body dto.CreateResourceRequest true "Create Resource Request"
// @Success 201 {object} response.Message "Resource created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources [post]
// @Security BearerAuth
func (handler *Handler) CreateResource(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateResource")
	defer scope.End()

	req := dto.CreateResourceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create resource")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Resource created successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(writer, http.StatusCreated, "Resource created successfully")
}

// GetResources retrieves all resources based on query parameters.
// @Summary Get all resources
// @Description Retrieve all resources with optional filtering and pagination.
// @Tags Resource
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param building_id query integer false "Filter by building ID"
// @Param resource_type_id query integer false "Filter by resource type ID"
// @Success 200 {object} response.Data[dto.GetResourcesResponse] "List of resources"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources [get]
func (handler *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResources")
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

	for _, field := range []string{model.FieldBuildingID, model.FieldResourceTypeID} {
		value := r.URL.Query().Get(field)
		if value == "" {
			continue
		}

		id, err := shared.ConvertStringToInt(value)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString(field+" must be an integer"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    id,
			Table:    model.TableName,
		})
	}

	resources, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resources")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resources retrieved successfully")

	response.WithJSON(w, http.StatusOK, resources)
}

// ResolveResource picks the resource serving a building and resource type.
// @Summary Resolve a resource
// @Description Resolve the first resource matching a building and resource type combination.
// @Tags Resource
// @Accept json
// @Produce json
// @Param building_id query integer true "Building ID"
// @Param resource_type_id query integer true "Resource type ID"
// @Success 200 {object} response.Data[dto.ResourceResponse] "Resolved resource"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/resolve [get]
func (handler *Handler) ResolveResource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveResource")
	defer scope.End()

	buildingID, err := shared.ConvertStringToInt(r.URL.Query().Get(model.FieldBuildingID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("building_id must be an integer"))

		return
	}

	resourceTypeID, err := shared.ConvertStringToInt(r.URL.Query().Get(model.FieldResourceTypeID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("resource_type_id must be an integer"))

		return
	}

	resource, err := handler.service.Resolve(ctx, buildingID, resourceTypeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve resource")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource resolved successfully")

	response.WithJSON(w, http.StatusOK, resource)
}

// GetResourceByID retrieves a resource by its ID.
// @Summary Get a resource by ID
// @Description Retrieve a resource by its unique identifier.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path integer true "Resource ID"
// @Success 200 {object} response.Data[dto.ResourceResponse] "Resource details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/{id} [get]
func (handler *Handler) GetResourceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	resource, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resource by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource retrieved successfully")

	response.WithJSON(w, http.StatusOK, resource)
}

// UpdateResource updates an existing resource by its ID.
// @Summary Update a resource by ID
// @Description Update the details of an existing resource.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path integer true "Resource ID"
// @Param request body dto.UpdateResourceRequest true "Update Resource Request"
// @Success 200 {object} response.Message "Resource updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateResource")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateResourceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update resource")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource updated successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Resource updated successfully")
}

// UploadResourcePhoto uploads a photo for a resource.
// @Summary Upload a resource photo
// @Description Upload a photo for a resource; the previous photo is replaced.
// @Tags Resource
// @Accept multipart/form-data
// @Produce json
// @Param id path integer true "Resource ID"
// @Param file formData file true "Photo file"
// @Success 200 {object} response.Data[dto.UploadPhotoResponse] "Photo uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/{id}/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadResourcePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadResourcePhoto")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("photo file is required"))

		return
	}
	defer file.Close()

	res, err := handler.service.UploadPhoto(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload resource photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource photo uploaded successfully by user " + shared.UserFromContext(ctx))

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteResource deletes a resource by its ID.
// @Summary Delete a resource by ID
// @Description Delete a resource using its unique identifier.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path integer true "Resource ID"
// @Success 200 {object} response.Message "Resource deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteResource")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete resource")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource deleted successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Resource deleted successfully")
}
