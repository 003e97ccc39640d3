package shelf

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/shelf/model"
	"campusbook/internal/domains/shelf/model/dto"
	"campusbook/internal/domains/shelf/service"
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
	service service.Shelf
	otel    otel.Otel
}

func New(service service.Shelf, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/shelves", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateShelf)
		routerGroup.Get("/", handler.GetShelves)
		routerGroup.Get("/cupboard/{cupboardId}", handler.GetShelvesByCupboard)
		routerGroup.Get("/{id}", handler.GetShelfByID)
		routerGroup.Patch("/{id}", handler.UpdateShelf)
		routerGroup.Delete("/{id}", handler.DeleteShelf)
	})
}

// CreateShelf handles the creation of a new shelf.
// @Summary Create a new shelf
// @Description Create a new shelf inside a cupboard.
// @Tags Shelf
// @Accept json
// @Produce json
// @Param request body dto.CreateShelfRequest true "Create Shelf Request"
// @Success 201 {object} response.Message "Shelf created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shelves [post]
// @Security BearerAuth
func (handler *Handler) CreateShelf(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateShelf")
	defer scope.End()

	req := dto.CreateShelfRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create shelf")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Shelf created successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(writer, http.StatusCreated, "Shelf created successfully")
}

// GetShelves retrieves all shelves based on query parameters.
// @Summary Get all shelves
// @Description Retrieve all shelves with optional filtering and pagination.
// @Tags Shelf
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param cupboard_id query integer false "Filter by cupboard ID"
// @Success 200 {object} response.Data[dto.GetShelvesResponse] "List of shelves"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shelves [get]
func (handler *Handler) GetShelves(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShelves")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if value := r.URL.Query().Get(model.FieldCupboardID); value != "" {
		cupboardID, err := shared.ConvertStringToInt(value)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("cupboard_id must be an integer"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCupboardID,
			Operator: gDto.FilterOperatorEq,
			Value:    cupboardID,
			Table:    model.TableName,
		})
	}

	shelves, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shelves")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shelves retrieved successfully")

	response.WithJSON(w, http.StatusOK, shelves)
}

// GetShelvesByCupboard retrieves the shelves inside one cupboard.
// @Summary Get shelves by cupboard
// @Description Retrieve all shelves belonging to the given cupboard.
// @Tags Shelf
// @Accept json
// @Produce json
// @Param cupboardId path integer true "Cupboard ID"
// @Success 200 {object} response.Data[dto.GetShelvesResponse] "List of shelves"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shelves/cupboard/{cupboardId} [get]
func (handler *Handler) GetShelvesByCupboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShelvesByCupboard")
	defer scope.End()

	cupboardID, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamCupboardID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("cupboardId must be an integer"))

		return
	}

	shelves, err := handler.service.GetByCupboard(ctx, cupboardID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shelves by cupboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shelves retrieved successfully")

	response.WithJSON(w, http.StatusOK, shelves)
}

// GetShelfByID retrieves a shelf by its ID.
// @Summary Get a shelf by ID
// @Description Retrieve a shelf by its unique identifier.
// @Tags Shelf
// @Accept json
// @Produce json
// @Param id path integer true "Shelf ID"
// @Success 200 {object} response.Data[dto.ShelfResponse] "Shelf details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shelves/{id} [get]
func (handler *Handler) GetShelfByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShelfByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	shelf, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shelf by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shelf retrieved successfully")

	response.WithJSON(w, http.StatusOK, shelf)
}

// UpdateShelf updates an existing shelf by its ID.
// @Summary Update a shelf by ID
// @Description Update the details of an existing shelf.
// @Tags Shelf
// @Accept json
// @Produce json
// @Param id path integer true "Shelf ID"
// @Param request body dto.UpdateShelfRequest true "Update Shelf Request"
// @Success 200 {object} response.Message "Shelf updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shelves/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateShelf(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateShelf")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateShelfRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update shelf")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shelf updated successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Shelf updated successfully")
}

// DeleteShelf deletes a shelf by its ID.
// @Summary Delete a shelf by ID
// @Description Delete a shelf using its unique identifier.
// @Tags Shelf
// @Accept json
// @Produce json
// @Param id path integer true "Shelf ID"
// @Success 200 {object} response.Message "Shelf deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shelves/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteShelf(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteShelf")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete shelf")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shelf deleted successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Shelf deleted successfully")
}
