package service

import (
	"context"
	"fmt"
	"jumpy/config"
	"jumpy/infras/otel"
	"jumpy/internal/domains/faq/model"
	"jumpy/internal/domains/faq/model/dto"
	"jumpy/internal/domains/faq/repository"
	"jumpy/shared"
	"jumpy/shared/cache"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/failure"
	"jumpy/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFAQ    = "faq:get"
	cacheGetAllFAQ = "faq:get_all"
	cachePublicFAQ = "faq:public"
	faqNotFound    = "faq not found"
)

type FAQ interface {
	Create(ctx context.Context, req dto.CreateFAQRequest) (string, error)
	GetAll(ctx context.Context) (dto.GetFAQsResponse, error)
	GetAllPublic(ctx context.Context) (dto.GetFAQsResponse, error)
	Get(ctx context.Context, id string) (dto.FAQResponse, error)
	Update(ctx context.Context, req dto.UpdateFAQRequest, id string) error
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type serviceImpl struct {
	repo  repository.FAQ
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.FAQ, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) FAQ {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFAQRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	m := req.ToModel(user)

	if err = s.repo.Insert(ctx, m); err != nil {
		return constant.Empty, err
	}

	s.invalidate(ctx, constant.Empty)

	return m.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetFAQsResponse, err error) {
	return s.getAll(ctx, cacheGetAllFAQ, gDto.FilterGroup{})
}

func (s *serviceImpl) GetAllPublic(ctx context.Context) (res dto.GetFAQsResponse, err error) {
	return s.getAll(ctx, cachePublicFAQ, dto.ActiveOnlyFilter())
}

func (s *serviceImpl) getAll(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (res dto.GetFAQsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.getAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for faqs")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.DefaultSortBy, SortDir: model.DefaultSortDir}

	faqs, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get faqs")

		return res, err
	}

	res.FromModels(faqs)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save faqs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FAQResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFAQ, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for faq")

		return res, nil
	}

	faq, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get faq")

		return res, fmt.Errorf("failed to get faq: %w", err)
	}

	if faq.ID == constant.Empty {
		return res, failure.NotFound(faqNotFound)
	}

	res.FromModel(faq)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save faq to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFAQRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check faq existence")

		return err
	}

	if !exist {
		return failure.NotFound(faqNotFound)
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update faq")

		return fmt.Errorf("failed to update faq: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete faq")

		return fmt.Errorf("failed to delete faq: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check faq existence")

		return err
	}

	if !exist {
		return failure.NotFound(faqNotFound)
	}

	if err = s.repo.ToggleFlag(ctx, model.FieldIsActive, user, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle faq")

		return fmt.Errorf("failed to toggle faq: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) SetActive(ctx context.Context, id string, active bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.SetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check faq existence")

		return err
	}

	if !exist {
		return failure.NotFound(faqNotFound)
	}

	updatedFields := map[string]any{
		model.FieldIsActive:      active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to set faq active state")

		return fmt.Errorf("failed to set faq active state: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFAQ, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete faq cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFAQ)
		shared.InvalidateCaches(c, s.cache, cachePublicFAQ)
	}()
}
