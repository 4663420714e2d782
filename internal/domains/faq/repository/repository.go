package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"jumpy/infras/otel"
	"jumpy/infras/postgres"
	"jumpy/internal/domains/faq/model"
	gDto "jumpy/shared/dto"
	gRepo "jumpy/shared/repository"
)

type FAQ interface {
	Insert(ctx context.Context, model model.FAQ) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.FAQ, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FAQ, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ToggleFlag(ctx context.Context, field, user string, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.FAQ]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) FAQ {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FAQ](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
