package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/memstore"
	otelMocks "stay/infras/otel/mocks"
	"stay/internal/domains/room/model"
	"stay/internal/domains/room/model/dto"
	"stay/internal/domains/room/repository"
	"stay/internal/domains/room/service"
	"stay/shared/cache"
	cacheMocks "stay/shared/cache/mocks"
	"stay/shared/daterange"
	gDto "stay/shared/dto"
	"stay/shared/failure"
)

func queryParams(page, limit int) gDto.QueryParams {
	return gDto.QueryParams{Page: page, Limit: limit, SortDir: gDto.SortDirAsc}
}

type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (stubCache) Delete(_ context.Context, _ string) error            { return nil }
func (stubCache) Clear(_ context.Context, _ string) error             { return nil }

func newService(redisCache cache.RedisCache, rooms ...model.Room) service.Room {
	store := memstore.New(func(room model.Room) string { return room.ID })
	store.Seed(rooms...)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	ot := otelMocks.NewOtel()

	return service.New(repository.New(store, ot), cfg, redisCache, ot, nil)
}

func testRoom() model.Room {
	return model.Room{
		ID:        "room-1",
		Name:      "Deluxe Double",
		Category:  model.CategoryDeluxe,
		Price:     150,
		Capacity:  2,
		Available: true,
	}
}

func TestGetRoomCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().
		Get(gomock.Any(), "room:get:room-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.RoomResponse)
			require.True(t, ok)

			res.ID = "room-1"
			res.Name = "Deluxe Double"

			return nil
		})

	svc := newService(mockCache)

	res, err := svc.Get(context.Background(), "room-1")
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Double", res.Name)
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()

	reserved, err := daterange.Parse("2026-09-10", "2026-09-14")
	require.NoError(t, err)

	room := testRoom()
	room.Reserved = []daterange.Range{reserved}

	svc := newService(stubCache{}, room)

	t.Run("free range is available", func(t *testing.T) {
		res, err := svc.CheckAvailability(ctx, "room-1", "2026-09-20", "2026-09-22")
		require.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("overlapping range is unavailable", func(t *testing.T) {
		res, err := svc.CheckAvailability(ctx, "room-1", "2026-09-12", "2026-09-16")
		require.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("checkout day is bookable by the next guest", func(t *testing.T) {
		res, err := svc.CheckAvailability(ctx, "room-1", "2026-09-14", "2026-09-16")
		require.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, "room-1", "2026-09-16", "2026-09-14")
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidRange))
	})

	t.Run("unknown room returns not found", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, "missing", "2026-09-20", "2026-09-22")
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("unavailable room is never free", func(t *testing.T) {
		closed := testRoom()
		closed.ID = "room-2"
		closed.Available = false

		svc := newService(stubCache{}, closed)

		res, err := svc.CheckAvailability(ctx, "room-2", "2026-09-20", "2026-09-22")
		require.NoError(t, err)
		assert.False(t, res.Available)
	})
}

func TestGetAllRoomsFilter(t *testing.T) {
	ctx := context.Background()

	standard := testRoom()
	standard.ID = "room-2"
	standard.Category = model.CategoryStandard
	standard.Price = 99.99
	standard.Capacity = 1

	svc := newService(stubCache{}, testRoom(), standard)

	maxPrice := 100.0

	res, err := svc.GetAll(ctx, queryParams(1, 10), dto.RoomFilter{MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalData)
	assert.Equal(t, "room-2", res.Rooms[0].ID)
}
