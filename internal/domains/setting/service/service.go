package service

import (
	"context"
	"jumpy/config"
	"jumpy/infras/otel"
	"jumpy/internal/domains/setting/model"
	"jumpy/internal/domains/setting/model/dto"
	"jumpy/internal/domains/setting/repository"
	"jumpy/shared"
	"jumpy/shared/cache"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSetting = "setting:get_all"
)

type Setting interface {
	GetAll(ctx context.Context) (dto.GetSettingsResponse, error)
	Save(ctx context.Context, req dto.SaveSettingsRequest) error
}

type serviceImpl struct {
	repo  repository.Setting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Setting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllSetting, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllSetting).Msg("cache hit for settings")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.DefaultSortBy, SortDir: model.DefaultSortDir}

	settings, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, err
	}

	res.FromModels(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllSetting, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	settings := make([]model.Setting, 0, len(req.Settings))
	for key, value := range req.Settings {
		settings = append(settings, model.Setting{
			Key:   key,
			Value: value,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	if err = s.repo.UpsertBatch(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to save settings")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSetting)
	}()

	return nil
}
