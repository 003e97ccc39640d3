//go:build wireinject
// +build wireinject

package di

import (
	"campusbook/config"
	"campusbook/infras/jwt"
	"campusbook/infras/kafka"
	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/infras/redis"
	"campusbook/infras/s3"
	"campusbook/permissions"
	"campusbook/shared/cache"
	"campusbook/transport/http"
	"campusbook/transport/http/middleware"
	"campusbook/transport/http/router"

	"github.com/google/wire"

	authService "campusbook/internal/domains/auth/service"
	bookingRepository "campusbook/internal/domains/booking/repository"
	bookingService "campusbook/internal/domains/booking/service"
	buildingRepository "campusbook/internal/domains/building/repository"
	buildingService "campusbook/internal/domains/building/service"
	cupboardRepository "campusbook/internal/domains/cupboard/repository"
	cupboardService "campusbook/internal/domains/cupboard/service"
	facilityRepository "campusbook/internal/domains/facility/repository"
	facilityService "campusbook/internal/domains/facility/service"
	maintenanceRepository "campusbook/internal/domains/maintenance/repository"
	maintenanceService "campusbook/internal/domains/maintenance/service"
	resourceRepository "campusbook/internal/domains/resource/repository"
	resourceService "campusbook/internal/domains/resource/service"
	resourcetypeRepository "campusbook/internal/domains/resourcetype/repository"
	resourcetypeService "campusbook/internal/domains/resourcetype/service"
	shelfRepository "campusbook/internal/domains/shelf/repository"
	shelfService "campusbook/internal/domains/shelf/service"
	timetableService "campusbook/internal/domains/timetable/service"
	userRepository "campusbook/internal/domains/user/repository"
	userService "campusbook/internal/domains/user/service"

	authHandler "campusbook/internal/handlers/auth"
	bookingHandler "campusbook/internal/handlers/booking"
	buildingHandler "campusbook/internal/handlers/building"
	cupboardHandler "campusbook/internal/handlers/cupboard"
	facilityHandler "campusbook/internal/handlers/facility"
	healthHandler "campusbook/internal/handlers/health"
	maintenanceHandler "campusbook/internal/handlers/maintenance"
	resourceHandler "campusbook/internal/handlers/resource"
	resourcetypeHandler "campusbook/internal/handlers/resourcetype"
	shelfHandler "campusbook/internal/handlers/shelf"
	timetableHandler "campusbook/internal/handlers/timetable"
	userHandler "campusbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var domains = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
	buildingRepository.New,
	buildingService.New,
	resourcetypeRepository.New,
	resourcetypeService.New,
	resourceRepository.New,
	resourceService.New,
	cupboardRepository.New,
	cupboardService.New,
	shelfRepository.New,
	shelfService.New,
	facilityRepository.New,
	facilityService.New,
	maintenanceRepository.New,
	maintenanceService.New,
	bookingRepository.New,
	bookingService.New,
	timetableService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	buildingHandler.New,
	resourcetypeHandler.New,
	resourceHandler.New,
	cupboardHandler.New,
	shelfHandler.New,
	facilityHandler.New,
	maintenanceHandler.New,
	bookingHandler.New,
	timetableHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
