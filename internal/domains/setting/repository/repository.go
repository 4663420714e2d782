package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"jumpy/infras/otel"
	"jumpy/infras/postgres"
	"jumpy/internal/domains/setting/model"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	gRepo "jumpy/shared/repository"

	"github.com/rs/zerolog/log"
)

type Setting interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Setting, error)
	UpsertBatch(ctx context.Context, settings []model.Setting) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Setting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Setting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Setting](model.EntityName, model.TableName, model.FieldKey, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpsertBatch applies the whole key/value batch in one transaction, so a
// failed write never leaves the settings screen half-saved.
func (repo *repositoryImpl) UpsertBatch(ctx context.Context, settings []model.Setting) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".setting.UpsertBatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(settings) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (key, value, created_at, created_by, modified_at, modified_by)
		VALUES (:key, :value, :created_at, :created_by, :modified_at, :modified_by)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`, model.TableName)

	scope.SetAttributes(map[string]any{constant.OtelQueryAttributeKey: query})

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin settings transaction")

		return fmt.Errorf("failed to begin settings transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback settings transaction")
			}
		}
	}()

	for _, setting := range settings {
		if _, err = tx.NamedExecContext(ctx, query, setting); err != nil {
			log.Error().Err(err).Str("key", setting.Key).Msg("failed to upsert setting")

			return fmt.Errorf("failed to upsert setting %q: %w", setting.Key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit settings transaction")

		return fmt.Errorf("failed to commit settings transaction: %w", err)
	}

	return nil
}
