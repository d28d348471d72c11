package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"stay/infras/memstore"
	"stay/infras/otel"
	"stay/internal/domains/user/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/timezone"
)

type User interface {
	Insert(ctx context.Context, user model.User) error
	Get(ctx context.Context, id string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]model.User, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id string, apply func(model.User) (model.User, error)) error
	Delete(ctx context.Context, id string) error
	AppendBooking(ctx context.Context, id, bookingID string) error
}

type repositoryImpl struct {
	store *memstore.Store[model.User]
	otel  otel.Otel
}

func New(store *memstore.Store[model.User], otel otel.Otel) User {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, user model.User) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Insert(user); err != nil {
		if errors.Is(err, memstore.ErrDuplicateKey) {
			return failure.Conflict("user already exists") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.User, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetUser")
	defer scope.End()

	user, ok := r.store.Get(id)
	if !ok {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	return user, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams) ([]model.User, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllUsers")
	defer scope.End()

	users := r.store.List(nil)

	if params.SortDir == gDto.SortDirDesc {
		users = memstore.Reverse(users)
	}

	return memstore.Paginate(users, params.Page, params.Limit), nil
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ExistUser")
	defer scope.End()

	return r.store.Exists(id), nil
}

func (r *repositoryImpl) Count(ctx context.Context) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountUsers")
	defer scope.End()

	return r.store.Count(nil), nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, apply func(model.User) (model.User, error)) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Update(id, apply); err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			return failure.NotFound("user not found") //nolint:wrapcheck
		}

		return err
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Delete(id); err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			return failure.NotFound("user not found") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (r *repositoryImpl) AppendBooking(ctx context.Context, id, bookingID string) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".AppendBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.store.Update(id, func(user model.User) (model.User, error) {
		bookings := make([]string, 0, len(user.Bookings)+1)
		bookings = append(bookings, user.Bookings...)

		user.Bookings = append(bookings, bookingID)
		user.ModifiedAt = timezone.Now()

		return user, nil
	})

	if errors.Is(err, memstore.ErrNotFound) {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	return err
}
