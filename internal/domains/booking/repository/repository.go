package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"stay/infras/memstore"
	"stay/infras/otel"
	"stay/internal/domains/booking/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
)

// Booking is the reservation ledger. Entries are never deleted; lifecycle
// transitions mutate them through Update.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, match func(model.Booking) bool) ([]model.Booking, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, match func(model.Booking) bool) (int, error)
	Update(ctx context.Context, id string, apply func(model.Booking) (model.Booking, error)) error
}

type repositoryImpl struct {
	store *memstore.Store[model.Booking]
	otel  otel.Otel
}

func New(store *memstore.Store[model.Booking], otel otel.Otel) Booking {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Insert(booking); err != nil {
		if errors.Is(err, memstore.ErrDuplicateKey) {
			return failure.Conflict("booking already exists") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetBooking")
	defer scope.End()

	booking, ok := r.store.Get(id)
	if !ok {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, match func(model.Booking) bool) ([]model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllBookings")
	defer scope.End()

	bookings := r.store.List(match)

	if params.SortDir == gDto.SortDirDesc {
		bookings = memstore.Reverse(bookings)
	}

	return memstore.Paginate(bookings, params.Page, params.Limit), nil
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ExistBooking")
	defer scope.End()

	return r.store.Exists(id), nil
}

func (r *repositoryImpl) Count(ctx context.Context, match func(model.Booking) bool) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountBookings")
	defer scope.End()

	return r.store.Count(match), nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, apply func(model.Booking) (model.Booking, error)) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Update(id, apply); err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		return err
	}

	return nil
}
