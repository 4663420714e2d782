package service

import (
	"context"
	"fmt"
	"jumpy/config"
	"jumpy/infras/otel"
	"jumpy/internal/domains/testimonial/model"
	"jumpy/internal/domains/testimonial/model/dto"
	"jumpy/internal/domains/testimonial/repository"
	"jumpy/shared"
	"jumpy/shared/cache"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/failure"
	"jumpy/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTestimonial    = "testimonial:get"
	cacheGetAllTestimonial = "testimonial:get_all"
	cachePublicTestimonial = "testimonial:public"
	testimonialNotFound    = "testimonial not found"
)

type Testimonial interface {
	Create(ctx context.Context, req dto.CreateTestimonialRequest) (string, error)
	GetAll(ctx context.Context) (dto.GetTestimonialsResponse, error)
	GetAllPublic(ctx context.Context) (dto.GetTestimonialsResponse, error)
	Get(ctx context.Context, id string) (dto.TestimonialResponse, error)
	Update(ctx context.Context, req dto.UpdateTestimonialRequest, id string) error
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type serviceImpl struct {
	repo  repository.Testimonial
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Testimonial, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Testimonial {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTestimonialRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Create")
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

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTestimonialsResponse, err error) {
	return s.getAll(ctx, cacheGetAllTestimonial, gDto.FilterGroup{})
}

func (s *serviceImpl) GetAllPublic(ctx context.Context) (res dto.GetTestimonialsResponse, err error) {
	return s.getAll(ctx, cachePublicTestimonial, dto.ActiveOnlyFilter())
}

func (s *serviceImpl) getAll(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (res dto.GetTestimonialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.getAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for testimonials")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.DefaultSortBy, SortDir: model.DefaultSortDir}

	testimonials, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return res, err
	}

	res.FromModels(testimonials)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save testimonials to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTestimonial, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for testimonial")

		return res, nil
	}

	testimonial, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonial")

		return res, fmt.Errorf("failed to get testimonial: %w", err)
	}

	if testimonial.ID == constant.Empty {
		return res, failure.NotFound(testimonialNotFound)
	}

	res.FromModel(testimonial)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save testimonial to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTestimonialRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check testimonial existence")

		return err
	}

	if !exist {
		return failure.NotFound(testimonialNotFound)
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update testimonial")

		return fmt.Errorf("failed to update testimonial: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete testimonial")

		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check testimonial existence")

		return err
	}

	if !exist {
		return failure.NotFound(testimonialNotFound)
	}

	if err = s.repo.ToggleFlag(ctx, model.FieldIsActive, user, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle testimonial")

		return fmt.Errorf("failed to toggle testimonial: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) SetActive(ctx context.Context, id string, active bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.SetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check testimonial existence")

		return err
	}

	if !exist {
		return failure.NotFound(testimonialNotFound)
	}

	updatedFields := map[string]any{
		model.FieldIsActive:      active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to set testimonial active state")

		return fmt.Errorf("failed to set testimonial active state: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTestimonial, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete testimonial cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTestimonial)
		shared.InvalidateCaches(c, s.cache, cachePublicTestimonial)
	}()
}
