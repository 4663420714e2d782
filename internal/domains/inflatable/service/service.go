package service

import (
	"context"
	"errors"
	"fmt"
	"jumpy/config"
	"jumpy/infras/otel"
	"jumpy/infras/s3"
	"jumpy/internal/domains/inflatable/model"
	"jumpy/internal/domains/inflatable/model/dto"
	"jumpy/internal/domains/inflatable/repository"
	"jumpy/shared"
	"jumpy/shared/cache"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/failure"
	"jumpy/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetInflatable     = "inflatable:get"
	cacheGetAllInflatable  = "inflatable:get_all"
	cachePublicInflatable  = "inflatable:public"
	cacheGetBySlug         = "inflatable:slug"
	mediaDirectoryGallery  = "images"
	inflatableNotFoundText = "inflatable not found"
)

var (
	ErrDeleteImagesFromS3 = errors.New("failed to delete images from S3")
)

type Inflatable interface {
	Create(ctx context.Context, req dto.CreateInflatableRequest) (string, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInflatablesResponse, error)
	GetAllPublic(ctx context.Context, category string) (dto.GetInflatablesResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.InflatableResponse, error)
	Get(ctx context.Context, id string) (dto.InflatableResponse, error)
	Update(ctx context.Context, req dto.UpdateInflatableRequest, id string) error
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type serviceImpl struct {
	repo  repository.Inflatable
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Inflatable, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Inflatable {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInflatableRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	m := req.ToModel(user)

	if err = s.repo.Insert(ctx, m); err != nil {
		return constant.Empty, err
	}

	s.invalidateListings(ctx)

	return m.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInflatablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.SortBy = model.DefaultSortBy
	params.SortDir = model.DefaultSortDir

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInflatable, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inflatables")

		return res, nil
	}

	inflatables, total, err := s.repo.GetAllCounted(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inflatables")

		return res, err
	}

	res.FromModels(inflatables, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inflatables to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAllPublic(ctx context.Context, category string) (res dto.GetInflatablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.GetAllPublic")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePublicInflatable, category)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for public inflatables")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.DefaultSortBy, SortDir: model.DefaultSortDir}

	inflatables, err := s.repo.GetAll(ctx, params, dto.PublicListFilter(category))
	if err != nil {
		log.Error().Err(err).Msg("failed to get public inflatables")

		return res, err
	}

	res.FromModels(inflatables, len(inflatables), 0)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save public inflatables to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.InflatableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBySlug, slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inflatable by slug")

		return res, nil
	}

	// Hidden rows 404 on the storefront, the slug filter pins is_active.
	inflatable, err := s.repo.Get(ctx, dto.PublicSlugFilter(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inflatable by slug")

		return res, fmt.Errorf("failed to get inflatable: %w", err)
	}

	if inflatable.ID == constant.Empty {
		return res, failure.NotFound(inflatableNotFoundText)
	}

	res.FromModel(inflatable)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inflatable to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InflatableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInflatable, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inflatable")

		return res, nil
	}

	inflatable, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inflatable")

		return res, fmt.Errorf("failed to get inflatable: %w", err)
	}

	if inflatable.ID == constant.Empty {
		return res, failure.NotFound(inflatableNotFoundText)
	}

	res.FromModel(inflatable)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inflatable to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInflatableRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inflatable existence")

		return err
	}

	if !exist {
		return failure.NotFound(inflatableNotFoundText)
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update inflatable")

		return fmt.Errorf("failed to update inflatable: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	inflatable, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inflatable for deletion")

		return fmt.Errorf("failed to get inflatable: %w", err)
	}

	if inflatable.ID == constant.Empty {
		return failure.NotFound(inflatableNotFoundText)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inflatable")

		return fmt.Errorf("failed to delete inflatable: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInflatable, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inflatable cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInflatable)
		shared.InvalidateCaches(c, s.cache, cachePublicInflatable)
		shared.InvalidateCaches(c, s.cache, cacheGetBySlug)

		if len(inflatable.GalleryImageURLs) > 0 {
			if err := s.deleteImagesFromS3(c, inflatable.GalleryImageURLs); err != nil {
				log.Error().Err(err).Msg("failed to delete gallery images from S3")
			}
		}
	}()

	return nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inflatable existence")

		return err
	}

	if !exist {
		return failure.NotFound(inflatableNotFoundText)
	}

	if err = s.repo.ToggleFlag(ctx, model.FieldIsActive, user, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle inflatable")

		return fmt.Errorf("failed to toggle inflatable: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) SetActive(ctx context.Context, id string, active bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.SetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inflatable existence")

		return err
	}

	if !exist {
		return failure.NotFound(inflatableNotFoundText)
	}

	updatedFields := map[string]any{
		model.FieldIsActive:      active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to set inflatable active state")

		return fmt.Errorf("failed to set inflatable active state: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateListings(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInflatable)
		shared.InvalidateCaches(c, s.cache, cachePublicInflatable)
		shared.InvalidateCaches(c, s.cache, cacheGetBySlug)
	}()
}

func (s *serviceImpl) invalidateItem(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInflatable, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inflatable cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInflatable)
		shared.InvalidateCaches(c, s.cache, cachePublicInflatable)
		shared.InvalidateCaches(c, s.cache, cacheGetBySlug)
	}()
}

func (s *serviceImpl) deleteImagesFromS3(ctx context.Context, urls []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inflatable.deleteImagesFromS3")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	var deleteErrors []error

	for _, imageURL := range urls {
		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

			continue
		}

		objectName = strings.TrimPrefix(objectName, mediaDirectoryGallery+"/")

		if err := s.s3.DeleteFile(ctx, bucketName, mediaDirectoryGallery, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImagesFromS3, len(deleteErrors))
	}

	return nil
}
