package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/config"
	"stay/infras/kafka"
	"stay/infras/memstore"
	otelMocks "stay/infras/otel/mocks"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	"stay/internal/domains/booking/service"
	roomModel "stay/internal/domains/room/model"
	roomRepository "stay/internal/domains/room/repository"
	userModel "stay/internal/domains/user/model"
	userRepository "stay/internal/domains/user/repository"
	"stay/shared/cache"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/keylock"
)

func queryParams(page, limit int) gDto.QueryParams {
	return gDto.QueryParams{Page: page, Limit: limit, SortDir: gDto.SortDirAsc}
}

const (
	testRoomID = "8c7f1d2e-5b7a-4f3c-9e1d-2a6b8c4f0d11"
	testUserID = "7a1e4c9b-2d6f-4a3e-9b8c-4f7d2e0a5c66"
)

type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (stubCache) Delete(_ context.Context, _ string) error            { return nil }
func (stubCache) Clear(_ context.Context, _ string) error             { return nil }

type stubKafka struct {
	mu       sync.Mutex
	messages []kafka.Message
}

func (s *stubKafka) SendMessages(_ context.Context, _ string, messages ...kafka.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, messages...)

	return nil
}

func (s *stubKafka) Consume(_ context.Context, _, _ string, _ func(message kafkaGo.Message)) {}

func (s *stubKafka) Reader(_, _ string) *kafkaGo.Reader { return nil }

func (s *stubKafka) sent() []kafka.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]kafka.Message{}, s.messages...)
}

type fixture struct {
	svc      service.Booking
	repo     repository.Booking
	roomRepo roomRepository.Room
	userRepo userRepository.User
	locks    *keylock.KeyedLock
	events   *stubKafka
	cfg      *config.Config
}

func newFixture(kafkaEnabled bool) *fixture {
	cfg := &config.Config{}
	cfg.Reservation.LockWaitMillis = 200
	cfg.Cache.TTL = 60
	cfg.Kafka.Enable = kafkaEnabled
	cfg.Kafka.BookingTopic = "booking-events"

	ot := otelMocks.NewOtel()

	roomStore := memstore.New(func(room roomModel.Room) string { return room.ID })
	roomStore.Seed(roomModel.Room{
		ID:        testRoomID,
		Name:      "Deluxe Double",
		Category:  roomModel.CategoryDeluxe,
		Price:     150,
		Capacity:  2,
		Available: true,
	})

	userStore := memstore.New(func(user userModel.User) string { return user.ID })
	userStore.Seed(userModel.User{ID: testUserID, Name: "John Doe"})

	bookingStore := memstore.New(func(booking model.Booking) string { return booking.ID })

	f := &fixture{
		repo:     repository.New(bookingStore, ot),
		roomRepo: roomRepository.New(roomStore, ot),
		userRepo: userRepository.New(userStore, ot),
		locks:    keylock.New(),
		events:   &stubKafka{},
		cfg:      cfg,
	}

	f.svc = service.New(f.repo, f.roomRepo, f.userRepo, f.locks, f.events, cfg, stubCache{}, ot)

	return f
}

func createRequest(start, end string, guests int) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:    testRoomID,
		UserID:    testUserID,
		StartDate: start,
		EndDate:   end,
		Guests:    guests,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending booking priced per night", func(t *testing.T) {
		f := newFixture(false)

		res, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-13", 2))
		require.NoError(t, err)

		assert.Equal(t, string(model.StatusPending), res.Status)
		assert.Equal(t, string(model.PaymentPending), res.PaymentStatus)
		assert.Equal(t, 3, res.Nights)
		assert.InDelta(t, 450.0, res.TotalPrice, 0.001)

		room, err := f.roomRepo.Get(ctx, testRoomID)
		require.NoError(t, err)
		assert.Len(t, room.Reserved, 1)

		user, err := f.userRepo.Get(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, []string{res.ID}, user.Bookings)
	})

	t.Run("identical range conflicts", func(t *testing.T) {
		f := newFixture(false)

		_, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-13", 2))
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-13", 1))
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("back-to-back stays both succeed", func(t *testing.T) {
		f := newFixture(false)

		_, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, createRequest("2026-09-12", "2026-09-14", 2))
		require.NoError(t, err)
	})

	t.Run("guest count above capacity is rejected", func(t *testing.T) {
		f := newFixture(false)

		_, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 3))
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindCapacityExceeded))
	})

	t.Run("guest count equal to capacity is accepted", func(t *testing.T) {
		f := newFixture(false)

		_, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		f := newFixture(false)

		_, err := f.svc.Create(ctx, createRequest("2026-09-13", "2026-09-10", 2))
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidRange))
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		f := newFixture(false)

		req := createRequest("2026-09-10", "2026-09-12", 2)
		req.UserID = "2c8f5a3d-7b1e-4d9c-8a6f-0e3b7d1c4f77"

		_, err := f.svc.Create(ctx, req)
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("unknown room is rejected", func(t *testing.T) {
		f := newFixture(false)

		req := createRequest("2026-09-10", "2026-09-12", 2)
		req.RoomID = "3e9a6b1c-7d2f-4a8e-b5c3-1f0d9e7a2b22"

		_, err := f.svc.Create(ctx, req)
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("unavailable room conflicts", func(t *testing.T) {
		f := newFixture(false)

		err := f.roomRepo.Update(ctx, testRoomID, func(room roomModel.Room) (roomModel.Room, error) {
			room.Available = false

			return room, nil
		})
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("publishes a created event when the stream is enabled", func(t *testing.T) {
		f := newFixture(true)

		res, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)

		sent := f.events.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, res.ID, sent[0].Key)
	})
}

func TestCreateBookingRace(t *testing.T) {
	f := newFixture(false)

	var wg sync.WaitGroup

	errs := make([]error, 2)
	requests := []dto.CreateBookingRequest{
		createRequest("2026-09-10", "2026-09-14", 2),
		createRequest("2026-09-12", "2026-09-16", 2),
	}

	for i := range requests {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			_, errs[i] = f.svc.Create(context.Background(), requests[i])
		}(i)
	}

	wg.Wait()

	successes := 0

	for _, err := range errs {
		if err == nil {
			successes++

			continue
		}

		kind := failure.GetKind(err)
		assert.Contains(t, []failure.Kind{failure.KindConflict, failure.KindBusy}, kind)
	}

	assert.Equal(t, 1, successes, "exactly one overlapping create must win")

	room, err := f.roomRepo.Get(context.Background(), testRoomID)
	require.NoError(t, err)
	assert.Len(t, room.Reserved, 1)
}

func TestCreateBookingBusy(t *testing.T) {
	f := newFixture(false)

	release, err := f.locks.Acquire(context.Background(), "room:"+testRoomID, time.Second)
	require.NoError(t, err)
	defer release()

	_, err = f.svc.Create(context.Background(), createRequest("2026-09-10", "2026-09-12", 2))
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindBusy))
	assert.True(t, failure.IsRetryable(err))
}

func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm takes payment and keeps special requests", func(t *testing.T) {
		f := newFixture(false)

		created, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)

		confirmed, err := f.svc.Confirm(ctx, created.ID, dto.ConfirmBookingRequest{
			PaymentMethod:   "card",
			SpecialRequests: "late check-in",
		})
		require.NoError(t, err)

		assert.Equal(t, string(model.StatusConfirmed), confirmed.Status)
		assert.Equal(t, string(model.PaymentPaid), confirmed.PaymentStatus)
		assert.Equal(t, "late check-in", confirmed.SpecialRequests)
	})

	t.Run("pending booking cannot complete", func(t *testing.T) {
		f := newFixture(false)

		created, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)

		_, err = f.svc.Complete(ctx, created.ID)
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})

	t.Run("completed booking is terminal", func(t *testing.T) {
		f := newFixture(false)

		created, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)

		_, err = f.svc.Confirm(ctx, created.ID, dto.ConfirmBookingRequest{})
		require.NoError(t, err)

		_, err = f.svc.Complete(ctx, created.ID)
		require.NoError(t, err)

		_, err = f.svc.Cancel(ctx, created.ID)
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})

	t.Run("cancel refunds a paid booking and frees the dates", func(t *testing.T) {
		f := newFixture(false)

		created, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)

		_, err = f.svc.Confirm(ctx, created.ID, dto.ConfirmBookingRequest{})
		require.NoError(t, err)

		cancelled, err := f.svc.Cancel(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, string(model.StatusCancelled), cancelled.Status)
		assert.Equal(t, string(model.PaymentRefunded), cancelled.PaymentStatus)

		room, err := f.roomRepo.Get(ctx, testRoomID)
		require.NoError(t, err)
		assert.Empty(t, room.Reserved)
	})

	t.Run("cancelled dates can be rebooked", func(t *testing.T) {
		f := newFixture(false)

		created, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)

		_, err = f.svc.Cancel(ctx, created.ID)
		require.NoError(t, err)

		rebooked, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 1))
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, rebooked.ID)
	})

	t.Run("cancelled booking stays in the ledger", func(t *testing.T) {
		f := newFixture(false)

		created, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
		require.NoError(t, err)

		_, err = f.svc.Cancel(ctx, created.ID)
		require.NoError(t, err)

		got, err := f.svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusCancelled), got.Status)
	})

	t.Run("unknown booking returns not found", func(t *testing.T) {
		f := newFixture(false)

		_, err := f.svc.Cancel(ctx, "missing")
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestGetAllBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	first, err := f.svc.Create(ctx, createRequest("2026-09-10", "2026-09-12", 2))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, createRequest("2026-09-12", "2026-09-14", 2))
	require.NoError(t, err)

	_, err = f.svc.Cancel(ctx, first.ID)
	require.NoError(t, err)

	all, err := f.svc.GetAll(ctx, queryParams(1, 10), dto.BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalData)

	pending, err := f.svc.GetAll(ctx, queryParams(1, 10), dto.BookingFilter{Status: string(model.StatusPending)})
	require.NoError(t, err)
	assert.Equal(t, 1, pending.TotalData)

	byRoom, err := f.svc.GetAll(ctx, queryParams(1, 10), dto.BookingFilter{RoomID: testRoomID})
	require.NoError(t, err)
	assert.Equal(t, 2, byRoom.TotalData)
}
