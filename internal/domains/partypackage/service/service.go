package service

import (
	"context"
	"fmt"
	"jumpy/config"
	"jumpy/infras/otel"
	"jumpy/internal/domains/partypackage/model"
	"jumpy/internal/domains/partypackage/model/dto"
	"jumpy/internal/domains/partypackage/repository"
	"jumpy/shared"
	"jumpy/shared/cache"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/failure"
	"jumpy/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPartyPackage    = "party_package:get"
	cacheGetAllPartyPackage = "party_package:get_all"
	cachePublicPartyPackage = "party_package:public"
	partyPackageNotFound    = "party package not found"
)

type PartyPackage interface {
	Create(ctx context.Context, req dto.CreatePartyPackageRequest) (string, error)
	GetAll(ctx context.Context) (dto.GetPartyPackagesResponse, error)
	GetAllPublic(ctx context.Context) (dto.GetPartyPackagesResponse, error)
	Get(ctx context.Context, id string) (dto.PartyPackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePartyPackageRequest, id string) error
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type serviceImpl struct {
	repo  repository.PartyPackage
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PartyPackage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PartyPackage {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePartyPackageRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".party_package.Create")
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

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetPartyPackagesResponse, err error) {
	return s.getAll(ctx, cacheGetAllPartyPackage, gDto.FilterGroup{})
}

func (s *serviceImpl) GetAllPublic(ctx context.Context) (res dto.GetPartyPackagesResponse, err error) {
	return s.getAll(ctx, cachePublicPartyPackage, dto.ActiveOnlyFilter())
}

func (s *serviceImpl) getAll(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (res dto.GetPartyPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".party_package.getAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for party packages")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.DefaultSortBy, SortDir: model.DefaultSortDir}

	packages, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get party packages")

		return res, err
	}

	res.FromModels(packages)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save party packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PartyPackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".party_package.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPartyPackage, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for party package")

		return res, nil
	}

	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get party package")

		return res, fmt.Errorf("failed to get party package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound(partyPackageNotFound)
	}

	res.FromModel(pkg)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save party package to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePartyPackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".party_package.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check party package existence")

		return err
	}

	if !exist {
		return failure.NotFound(partyPackageNotFound)
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update party package")

		return fmt.Errorf("failed to update party package: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".party_package.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete party package")

		return fmt.Errorf("failed to delete party package: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".party_package.Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check party package existence")

		return err
	}

	if !exist {
		return failure.NotFound(partyPackageNotFound)
	}

	if err = s.repo.ToggleFlag(ctx, model.FieldIsActive, user, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle party package")

		return fmt.Errorf("failed to toggle party package: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) SetActive(ctx context.Context, id string, active bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".party_package.SetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check party package existence")

		return err
	}

	if !exist {
		return failure.NotFound(partyPackageNotFound)
	}

	updatedFields := map[string]any{
		model.FieldIsActive:      active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to set party package active state")

		return fmt.Errorf("failed to set party package active state: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPartyPackage, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete party package cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPartyPackage)
		shared.InvalidateCaches(c, s.cache, cachePublicPartyPackage)
	}()
}
