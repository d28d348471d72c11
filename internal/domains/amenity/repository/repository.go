package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"stay/infras/memstore"
	"stay/infras/otel"
	"stay/internal/domains/amenity/model"
	"stay/shared/constant"
	"stay/shared/failure"
)

type Amenity interface {
	Get(ctx context.Context, id string) (model.Amenity, error)
	GetAll(ctx context.Context) ([]model.Amenity, error)
	Exist(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	store *memstore.Store[model.Amenity]
	otel  otel.Otel
}

func New(store *memstore.Store[model.Amenity], otel otel.Otel) Amenity {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Amenity, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAmenity")
	defer scope.End()

	amenity, ok := r.store.Get(id)
	if !ok {
		return res, failure.NotFound("amenity not found") //nolint:wrapcheck
	}

	return amenity, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Amenity, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllAmenities")
	defer scope.End()

	return r.store.List(nil), nil
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ExistAmenity")
	defer scope.End()

	return r.store.Exists(id), nil
}
