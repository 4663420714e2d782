package service

import (
	"context"
	"jumpy/config"
	"jumpy/infras/otel"
	"jumpy/internal/domains/category/model"
	"jumpy/internal/domains/category/model/dto"
	"jumpy/internal/domains/category/repository"
	"jumpy/shared"
	"jumpy/shared/cache"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCategory = "category:get_all"
)

type Category interface {
	GetAll(ctx context.Context) (dto.GetCategoriesResponse, error)
}

type serviceImpl struct {
	repo  repository.Category
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Category {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllCategory)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for categories")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.DefaultSortBy, SortDir: model.DefaultSortDir}

	categories, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, err
	}

	res.FromModels(categories)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save categories to cache")
		}
	}()

	return res, nil
}
