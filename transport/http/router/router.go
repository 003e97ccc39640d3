package router

import (
	"campusbook/internal/handlers/auth"
	"campusbook/internal/handlers/booking"
	"campusbook/internal/handlers/building"
	"campusbook/internal/handlers/cupboard"
	"campusbook/internal/handlers/facility"
	"campusbook/internal/handlers/health"
	"campusbook/internal/handlers/maintenance"
	"campusbook/internal/handlers/resource"
	"campusbook/internal/handlers/resourcetype"
	"campusbook/internal/handlers/shelf"
	"campusbook/internal/handlers/timetable"
	"campusbook/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Building     building.Handler
	ResourceType resourcetype.Handler
	Resource     resource.Handler
	Cupboard     cupboard.Handler
	Shelf        shelf.Handler
	Facility     facility.Handler
	Maintenance  maintenance.Handler
	Booking      booking.Handler
	Timetable    timetable.Handler
	Health       health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Building.Router(routerGroup)
		r.DomainHandlers.ResourceType.Router(routerGroup)
		r.DomainHandlers.Resource.Router(routerGroup)
		r.DomainHandlers.Cupboard.Router(routerGroup)
		r.DomainHandlers.Shelf.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Timetable.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
