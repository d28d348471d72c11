package router

import (
	"github.com/go-chi/chi/v5"

	"stay/internal/handlers/amenity"
	"stay/internal/handlers/booking"
	"stay/internal/handlers/health"
	"stay/internal/handlers/room"
	"stay/internal/handlers/user"
)

type DomainHandlers struct {
	Health  health.Handler
	Room    room.Handler
	Booking booking.Handler
	User    user.Handler
	Amenity amenity.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
