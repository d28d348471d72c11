//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"stay/config"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/infras/redis"
	"stay/infras/s3"
	"stay/shared/cache"
	"stay/transport/http"
	"stay/transport/http/middleware"
	"stay/transport/http/router"

	amenityRepository "stay/internal/domains/amenity/repository"
	amenityService "stay/internal/domains/amenity/service"
	bookingRepository "stay/internal/domains/booking/repository"
	bookingService "stay/internal/domains/booking/service"
	roomRepository "stay/internal/domains/room/repository"
	roomService "stay/internal/domains/room/service"
	userRepository "stay/internal/domains/user/repository"
	userService "stay/internal/domains/user/service"

	amenityHandler "stay/internal/handlers/amenity"
	bookingHandler "stay/internal/handlers/booking"
	healthHandler "stay/internal/handlers/health"
	roomHandler "stay/internal/handlers/room"
	userHandler "stay/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	newRoomLocks,
)

var stores = wire.NewSet(
	newRoomStore,
	newBookingStore,
	newUserStore,
	newAmenityStore,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	userDomain,
	amenityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	roomHandler.New,
	bookingHandler.New,
	userHandler.New,
	amenityHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		stores,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
