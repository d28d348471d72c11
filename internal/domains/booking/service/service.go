package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"stay/config"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	roomRepo "stay/internal/domains/room/repository"
	userRepo "stay/internal/domains/user/repository"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/daterange"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/keylock"
	"stay/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	lockKeyPrefix = "room"
)

// Booking coordinates the reservation lifecycle. Creation and cancellation
// serialize on a per-room lock so the availability check and the range
// mutation commit as one step; rooms never contend with each other.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.BookingFilter) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, filter dto.BookingFilter) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	userRepo userRepo.User
	locks    *keylock.KeyedLock
	kafka    kafka.Client
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	userRepo userRepo.User,
	locks *keylock.KeyedLock,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		userRepo: userRepo,
		locks:    locks,
		kafka:    kafka,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	stay, err := daterange.Parse(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	userExists, err := s.userRepo.Exist(ctx, req.UserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !userExists {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	release, err := s.lockRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}
	defer release()

	room, err := s.roomRepo.Get(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, err
	}

	if !room.Available {
		return res, failure.Conflict("room is not open for booking") //nolint:wrapcheck
	}

	if req.Guests > room.Capacity {
		return res, failure.CapacityExceeded(fmt.Sprintf("room sleeps %d guests, requested %d", room.Capacity, req.Guests)) //nolint:wrapcheck
	}

	if err = s.roomRepo.ReserveRange(ctx, room.ID, stay); err != nil {
		return res, err
	}

	totalPrice := float64(stay.Nights()) * room.Price
	booking := req.ToModel(actor, stay, totalPrice)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		// Give the dates back; the ledger stayed unchanged.
		if releaseErr := s.roomRepo.ReleaseRange(ctx, room.ID, stay); releaseErr != nil {
			log.Error().Err(releaseErr).Msg("failed to release range after insert failure")
		}

		return res, err
	}

	if err := s.userRepo.AppendBooking(ctx, booking.UserID, booking.ID); err != nil {
		log.Error().Err(err).Str("userID", booking.UserID).Msg("failed to append booking to user")
	}

	s.publish(ctx, "booking.created", booking)
	s.invalidateBooking(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.BookingFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter.Matches)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter dto.BookingFilter) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter.Matches)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Confirm is checkout: the guest pays and the booking locks in. Payment moves
// to paid in the same transition.
func (s *serviceImpl) Confirm(ctx context.Context, id string, req dto.ConfirmBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.transition(ctx, id, model.EventConfirm, func(b model.Booking) model.Booking {
		b.PaymentStatus = model.PaymentPaid

		if req.SpecialRequests != constant.Empty {
			b.SpecialRequests = req.SpecialRequests
		}

		return b
	})
	if err != nil {
		return res, err
	}

	s.publish(ctx, "booking.confirmed", booking)

	res.FromModel(booking)

	return res, nil
}

// Cancel releases the booking's dates back to the room and refunds the guest
// if payment had been taken.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.transition(ctx, id, model.EventCancel, func(b model.Booking) model.Booking {
		if b.PaymentStatus == model.PaymentPaid {
			b.PaymentStatus = model.PaymentRefunded
		}

		return b
	})
	if err != nil {
		return res, err
	}

	s.publish(ctx, "booking.cancelled", booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.transition(ctx, id, model.EventComplete, nil)
	if err != nil {
		return res, err
	}

	s.publish(ctx, "booking.completed", booking)

	res.FromModel(booking)

	return res, nil
}

// transition applies a lifecycle event. Legality is validated against the
// transition table inside the ledger update, so a concurrent transition on the
// same booking cannot slip through. Cancellation takes the room lock because
// it hands the stay's dates back to the catalog.
func (s *serviceImpl) transition(ctx context.Context, id string, event model.Event, mutate func(model.Booking) model.Booking) (updated model.Booking, err error) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return updated, err
	}

	if event == model.EventCancel {
		release, lockErr := s.lockRoom(ctx, current.RoomID)
		if lockErr != nil {
			return updated, lockErr
		}
		defer release()
	}

	err = s.repo.Update(ctx, id, func(b model.Booking) (model.Booking, error) {
		next, transitionErr := model.NextStatus(b.Status, event)
		if transitionErr != nil {
			return b, transitionErr
		}

		b.Status = next

		if mutate != nil {
			b = mutate(b)
		}

		b.ModifiedAt = timezone.Now()
		b.ModifiedBy = actor

		updated = b

		return b, nil
	})
	if err != nil {
		log.Error().Err(err).Str("event", string(event)).Msg("failed to transition booking")

		return updated, err
	}

	if event == model.EventCancel {
		if releaseErr := s.roomRepo.ReleaseRange(ctx, updated.RoomID, updated.Stay); releaseErr != nil {
			log.Error().Err(releaseErr).Str("roomID", updated.RoomID).Msg("failed to release cancelled range")
		}
	}

	s.invalidateBooking(ctx, id)

	return updated, nil
}

// lockRoom bounds the wait for a room's lock; a timeout surfaces as Busy so
// clients know to retry rather than treat the dates as taken.
func (s *serviceImpl) lockRoom(ctx context.Context, roomID string) (func(), error) {
	wait := time.Duration(s.cfg.Reservation.LockWaitMillis) * time.Millisecond

	release, err := s.locks.Acquire(ctx, shared.BuildCacheKey(lockKeyPrefix, roomID), wait)
	if err != nil {
		if errors.Is(err, keylock.ErrWaitTimeout) {
			return nil, failure.Busy("room is busy handling another reservation, retry shortly") //nolint:wrapcheck
		}

		return nil, fmt.Errorf("failed to acquire room lock: %w", err)
	}

	return release, nil
}

// publish emits a lifecycle event to the booking stream. Delivery failures are
// logged, never surfaced; the reservation already committed.
func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: dto.NewLifecycleEvent(event, booking),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
