package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"stay/infras/memstore"
	"stay/infras/otel"
	"stay/internal/domains/room/model"
	"stay/shared/constant"
	"stay/shared/daterange"
	gDto "stay/shared/dto"
	"stay/shared/failure"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) error
	Get(ctx context.Context, id string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, match func(model.Room) bool) ([]model.Room, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, match func(model.Room) bool) (int, error)
	Update(ctx context.Context, id string, apply func(model.Room) (model.Room, error)) error
	Delete(ctx context.Context, id string) error
	ReserveRange(ctx context.Context, id string, stay daterange.Range) error
	ReleaseRange(ctx context.Context, id string, stay daterange.Range) error
}

type repositoryImpl struct {
	store *memstore.Store[model.Room]
	otel  otel.Otel
}

func New(store *memstore.Store[model.Room], otel otel.Otel) Room {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Insert(room); err != nil {
		if errors.Is(err, memstore.ErrDuplicateKey) {
			return failure.Conflict("room already exists") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to insert room: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Room, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetRoom")
	defer scope.End()

	room, ok := r.store.Get(id)
	if !ok {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	return room, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, match func(model.Room) bool) ([]model.Room, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllRooms")
	defer scope.End()

	rooms := r.store.List(match)

	if params.SortDir == gDto.SortDirDesc {
		rooms = memstore.Reverse(rooms)
	}

	return memstore.Paginate(rooms, params.Page, params.Limit), nil
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ExistRoom")
	defer scope.End()

	return r.store.Exists(id), nil
}

func (r *repositoryImpl) Count(ctx context.Context, match func(model.Room) bool) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountRooms")
	defer scope.End()

	return r.store.Count(match), nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, apply func(model.Room) (model.Room, error)) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Update(id, apply); err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}

		return err
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Delete(id); err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// ReserveRange adds the stay to the room's reserved set. The overlap check and
// the write happen inside one store update, so the no-pairwise-overlap
// invariant holds even without the caller's room lock.
func (r *repositoryImpl) ReserveRange(ctx context.Context, id string, stay daterange.Range) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ReserveRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.store.Update(id, func(room model.Room) (model.Room, error) {
		if stay.OverlapsAny(room.Reserved) {
			return room, failure.Conflict("room is already booked for the requested dates")
		}

		// Copy before appending; room copies handed out by Get share the
		// backing array.
		reserved := make([]daterange.Range, 0, len(room.Reserved)+1)
		reserved = append(reserved, room.Reserved...)
		room.Reserved = append(reserved, stay)

		return room, nil
	})

	if errors.Is(err, memstore.ErrNotFound) {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	return err
}

// ReleaseRange removes the first reserved entry equal to the stay. Releasing a
// range that is not reserved is a no-op.
func (r *repositoryImpl) ReleaseRange(ctx context.Context, id string, stay daterange.Range) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ReleaseRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.store.Update(id, func(room model.Room) (model.Room, error) {
		kept := make([]daterange.Range, 0, len(room.Reserved))
		removed := false

		for _, reserved := range room.Reserved {
			if !removed && reserved.Equal(stay) {
				removed = true

				continue
			}

			kept = append(kept, reserved)
		}

		room.Reserved = kept

		return room, nil
	})

	if errors.Is(err, memstore.ErrNotFound) {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	return err
}
