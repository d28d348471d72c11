// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"stay/config"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/infras/redis"
	"stay/infras/s3"
	repository4 "stay/internal/domains/amenity/repository"
	service4 "stay/internal/domains/amenity/service"
	repository2 "stay/internal/domains/booking/repository"
	service2 "stay/internal/domains/booking/service"
	"stay/internal/domains/room/repository"
	"stay/internal/domains/room/service"
	repository3 "stay/internal/domains/user/repository"
	service3 "stay/internal/domains/user/service"
	"stay/internal/handlers/amenity"
	"stay/internal/handlers/booking"
	"stay/internal/handlers/health"
	"stay/internal/handlers/room"
	"stay/internal/handlers/user"
	"stay/shared/cache"
	"stay/transport/http"
	"stay/transport/http/middleware"
	"stay/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	handler := health.New()
	store := newRoomStore()
	otelOtel := otel.New(configConfig)
	repositoryRoom := repository.New(store, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceRoom := service.New(repositoryRoom, configConfig, redisCache, otelOtel, s3S3)
	roomHandler := room.New(serviceRoom, otelOtel)
	memstoreStore := newBookingStore()
	repositoryBooking := repository2.New(memstoreStore, otelOtel)
	store2 := newUserStore()
	repositoryUser := repository3.New(store2, otelOtel)
	keyedLock := newRoomLocks()
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service2.New(repositoryBooking, repositoryRoom, repositoryUser, keyedLock, kafkaClient, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	serviceUser := service3.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	store3 := newAmenityStore()
	repositoryAmenity := repository4.New(store3, otelOtel)
	serviceAmenity := service4.New(repositoryAmenity, configConfig, redisCache, otelOtel)
	amenityHandler := amenity.New(serviceAmenity, otelOtel)
	domainHandlers := router.DomainHandlers{
		Health:  handler,
		Room:    roomHandler,
		Booking: bookingHandler,
		User:    userHandler,
		Amenity: amenityHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(otel.New, redis.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, newRoomLocks)

var stores = wire.NewSet(
	newRoomStore,
	newBookingStore,
	newUserStore,
	newAmenityStore,
)

var roomDomain = wire.NewSet(repository.New, service.New)

var bookingDomain = wire.NewSet(repository2.New, service2.New)

var userDomain = wire.NewSet(repository3.New, service3.New)

var amenityDomain = wire.NewSet(repository4.New, service4.New)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	userDomain,
	amenityDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), health.New, room.New, booking.New, user.New, amenity.New, router.New)
