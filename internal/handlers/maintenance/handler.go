package maintenance

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/maintenance/model"
	"campusbook/internal/domains/maintenance/model/dto"
	"campusbook/internal/domains/maintenance/service"
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
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenances", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMaintenance)
		routerGroup.Get("/", handler.GetMaintenances)
		routerGroup.Put("/{id}/status", handler.UpdateMaintenanceStatus)
		routerGroup.Delete("/{id}", handler.DeleteMaintenance)
	})
}

// CreateMaintenance schedules maintenance for a resource.
// @Summary Schedule maintenance
// @Description Schedule a maintenance task for a resource.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Create Maintenance Request"
// @Success 201 {object} response.Message "Maintenance scheduled successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances [post]
// @Security BearerAuth
func (handler *Handler) CreateMaintenance(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaintenance")
	defer scope.End()

	req := dto.CreateMaintenanceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to schedule maintenance")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Maintenance scheduled successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(writer, http.StatusCreated, "Maintenance scheduled successfully")
}

// GetMaintenances retrieves all maintenance tasks based on query parameters.
// @Summary Get all maintenance tasks
// @Description Retrieve all maintenance tasks with optional filtering and pagination.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param resource_id query integer false "Filter by resource ID"
// @Param status query string false "Filter by status (SCHEDULED, IN_PROGRESS, COMPLETED, CANCELLED)"
// @Success 200 {object} response.Data[dto.GetMaintenancesResponse] "List of maintenance tasks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances [get]
// @Security BearerAuth
func (handler *Handler) GetMaintenances(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenances")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if value := r.URL.Query().Get(model.FieldResourceID); value != "" {
		resourceID, err := shared.ConvertStringToInt(value)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("resource_id must be an integer"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldResourceID,
			Operator: gDto.FilterOperatorEq,
			Value:    resourceID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	maintenances, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance tasks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance tasks retrieved successfully")

	response.WithJSON(w, http.StatusOK, maintenances)
}

// UpdateMaintenanceStatus moves a maintenance task through its lifecycle.
// @Summary Update maintenance status
// @Description Update the status of a maintenance task.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path integer true "Maintenance ID"
// @Param request body dto.UpdateMaintenanceStatusRequest true "Update Maintenance Status Request"
// @Success 200 {object} response.Message "Maintenance status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateMaintenanceStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMaintenanceStatus")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateMaintenanceStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance status updated successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Maintenance status updated successfully")
}

// DeleteMaintenance deletes a maintenance task by its ID.
// @Summary Delete a maintenance task by ID
// @Description Delete a maintenance task using its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path integer true "Maintenance ID"
// @Success 200 {object} response.Message "Maintenance deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMaintenance")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete maintenance")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance deleted successfully by user " + shared.UserFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Maintenance deleted successfully")
}
