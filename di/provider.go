package di

import (
	"stay/infras/memstore"
	amenityModel "stay/internal/domains/amenity/model"
	bookingModel "stay/internal/domains/booking/model"
	roomModel "stay/internal/domains/room/model"
	userModel "stay/internal/domains/user/model"
	"stay/internal/seed"
	"stay/shared/keylock"
)

func newRoomStore() *memstore.Store[roomModel.Room] {
	store := memstore.New(func(room roomModel.Room) string { return room.ID })
	store.Seed(seed.Rooms()...)

	return store
}

func newBookingStore() *memstore.Store[bookingModel.Booking] {
	return memstore.New(func(booking bookingModel.Booking) string { return booking.ID })
}

func newUserStore() *memstore.Store[userModel.User] {
	store := memstore.New(func(user userModel.User) string { return user.ID })
	store.Seed(seed.Users()...)

	return store
}

func newAmenityStore() *memstore.Store[amenityModel.Amenity] {
	store := memstore.New(func(amenity amenityModel.Amenity) string { return amenity.ID })
	store.Seed(seed.Amenities()...)

	return store
}

func newRoomLocks() *keylock.KeyedLock {
	return keylock.New()
}
