package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"jumpy/infras/otel"
	"jumpy/infras/postgres"
	"jumpy/internal/domains/adminuser/model"
	gDto "jumpy/shared/dto"
	gRepo "jumpy/shared/repository"
)

type AdminUser interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AdminUser, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AdminUser]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AdminUser {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AdminUser](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
