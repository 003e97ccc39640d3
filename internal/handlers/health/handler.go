package health

import (
	"net/http"

	"campusbook/infras/postgres"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{db: db}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Health)
	})
}

// Health reports whether the service and its database are reachable.
// @Summary Health check
// @Description Report service and database health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "OK"
// @Failure 503 {object} response.Message
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
