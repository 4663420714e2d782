package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"jumpy/infras/otel"
	"jumpy/infras/postgres"
	"jumpy/internal/domains/inquiry/model"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	gRepo "jumpy/shared/repository"

	"github.com/rs/zerolog/log"
)

type Inquiry interface {
	Insert(ctx context.Context, model model.Inquiry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Inquiry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inquiry, error)
	GetAllCounted(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inquiry, int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Inquiry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inquiry {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inquiry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountByStatus returns how many inquiries sit in each status, for the
// back-office listing header.
func (repo *repositoryImpl) CountByStatus(ctx context.Context) (counts []model.StatusCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inquiry.CountByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT status, COUNT(*) AS total FROM %s GROUP BY status", model.TableName)

	scope.SetAttributes(map[string]any{constant.OtelQueryAttributeKey: query})

	if err = repo.db.Read.SelectContext(ctx, &counts, query); err != nil {
		log.Error().Err(err).Msg("failed to count inquiries by status")

		return nil, fmt.Errorf("failed to count inquiries by status: %w", err)
	}

	return counts, nil
}
