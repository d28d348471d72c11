package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/infras/memstore"
	otelMocks "stay/infras/otel/mocks"
	"stay/internal/domains/room/model"
	"stay/internal/domains/room/repository"
	"stay/shared/daterange"
	gDto "stay/shared/dto"
	"stay/shared/failure"
)

func queryParams(page, limit int) gDto.QueryParams {
	return gDto.QueryParams{Page: page, Limit: limit, SortDir: gDto.SortDirAsc}
}

func newRepository(rooms ...model.Room) repository.Room {
	store := memstore.New(func(room model.Room) string { return room.ID })
	store.Seed(rooms...)

	return repository.New(store, otelMocks.NewOtel())
}

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()

	stay, err := daterange.Parse(start, end)
	require.NoError(t, err)

	return stay
}

func TestReserveRange(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves a free range", func(t *testing.T) {
		repo := newRepository(model.Room{ID: "room-1", Available: true})

		err := repo.ReserveRange(ctx, "room-1", mustRange(t, "2026-09-10", "2026-09-12"))
		require.NoError(t, err)

		room, err := repo.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.Len(t, room.Reserved, 1)
	})

	t.Run("rejects an overlapping range with conflict", func(t *testing.T) {
		repo := newRepository(model.Room{ID: "room-1", Available: true})

		require.NoError(t, repo.ReserveRange(ctx, "room-1", mustRange(t, "2026-09-10", "2026-09-14")))

		err := repo.ReserveRange(ctx, "room-1", mustRange(t, "2026-09-12", "2026-09-16"))
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindConflict))

		room, err := repo.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.Len(t, room.Reserved, 1)
	})

	t.Run("accepts a back-to-back range", func(t *testing.T) {
		repo := newRepository(model.Room{ID: "room-1", Available: true})

		require.NoError(t, repo.ReserveRange(ctx, "room-1", mustRange(t, "2026-09-10", "2026-09-12")))
		require.NoError(t, repo.ReserveRange(ctx, "room-1", mustRange(t, "2026-09-12", "2026-09-14")))

		room, err := repo.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.Len(t, room.Reserved, 2)
	})

	t.Run("unknown room returns not found", func(t *testing.T) {
		repo := newRepository()

		err := repo.ReserveRange(ctx, "missing", mustRange(t, "2026-09-10", "2026-09-12"))
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestReleaseRange(t *testing.T) {
	ctx := context.Background()

	t.Run("releases a reserved range", func(t *testing.T) {
		repo := newRepository(model.Room{ID: "room-1", Available: true})
		stay := mustRange(t, "2026-09-10", "2026-09-12")

		require.NoError(t, repo.ReserveRange(ctx, "room-1", stay))
		require.NoError(t, repo.ReleaseRange(ctx, "room-1", stay))

		room, err := repo.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.Empty(t, room.Reserved)
	})

	t.Run("releasing an unreserved range is a no-op", func(t *testing.T) {
		repo := newRepository(model.Room{ID: "room-1", Available: true})

		require.NoError(t, repo.ReserveRange(ctx, "room-1", mustRange(t, "2026-09-10", "2026-09-12")))
		require.NoError(t, repo.ReleaseRange(ctx, "room-1", mustRange(t, "2026-10-01", "2026-10-02")))

		room, err := repo.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.Len(t, room.Reserved, 1)
	})
}

func TestGetAll(t *testing.T) {
	ctx := context.Background()

	repo := newRepository(
		model.Room{ID: "room-1", Category: model.CategoryStandard, Price: 99.99, Capacity: 1, Available: true},
		model.Room{ID: "room-2", Category: model.CategoryDeluxe, Price: 149.99, Capacity: 2, Available: true},
		model.Room{ID: "room-3", Category: model.CategoryDeluxe, Price: 199.99, Capacity: 4, Available: false},
	)

	deluxe := func(room model.Room) bool { return room.Category == model.CategoryDeluxe }

	rooms, err := repo.GetAll(ctx, queryParams(1, 10), deluxe)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "room-2", rooms[0].ID)

	count, err := repo.Count(ctx, deluxe)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
