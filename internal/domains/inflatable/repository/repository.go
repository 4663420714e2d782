package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"jumpy/infras/otel"
	"jumpy/infras/postgres"
	"jumpy/internal/domains/inflatable/model"
	gDto "jumpy/shared/dto"
	gRepo "jumpy/shared/repository"
)

type Inflatable interface {
	Insert(ctx context.Context, model model.Inflatable) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Inflatable, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inflatable, error)
	GetAllCounted(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inflatable, int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ToggleFlag(ctx context.Context, field, user string, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Inflatable]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inflatable {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inflatable](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
