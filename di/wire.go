//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"jumpy/config"
	"jumpy/infras/email"
	"jumpy/infras/jwt"
	"jumpy/infras/kafka"
	"jumpy/infras/otel"
	"jumpy/infras/postgres"
	"jumpy/infras/redis"
	"jumpy/infras/s3"
	"jumpy/shared/cache"
	"jumpy/transport/http"
	"jumpy/transport/http/middleware"
	"jumpy/transport/http/router"

	adminuserRepository "jumpy/internal/domains/adminuser/repository"
	adminuserService "jumpy/internal/domains/adminuser/service"
	categoryRepository "jumpy/internal/domains/category/repository"
	categoryService "jumpy/internal/domains/category/service"
	faqRepository "jumpy/internal/domains/faq/repository"
	faqService "jumpy/internal/domains/faq/service"
	inflatableRepository "jumpy/internal/domains/inflatable/repository"
	inflatableService "jumpy/internal/domains/inflatable/service"
	inquiryRepository "jumpy/internal/domains/inquiry/repository"
	inquiryService "jumpy/internal/domains/inquiry/service"
	mediaService "jumpy/internal/domains/media/service"
	partypackageRepository "jumpy/internal/domains/partypackage/repository"
	partypackageService "jumpy/internal/domains/partypackage/service"
	settingRepository "jumpy/internal/domains/setting/repository"
	settingService "jumpy/internal/domains/setting/service"
	testimonialRepository "jumpy/internal/domains/testimonial/repository"
	testimonialService "jumpy/internal/domains/testimonial/service"

	authHandler "jumpy/internal/handlers/auth"
	categoryHandler "jumpy/internal/handlers/category"
	faqHandler "jumpy/internal/handlers/faq"
	inflatableHandler "jumpy/internal/handlers/inflatable"
	inquiryHandler "jumpy/internal/handlers/inquiry"
	mediaHandler "jumpy/internal/handlers/media"
	partypackageHandler "jumpy/internal/handlers/partypackage"
	settingHandler "jumpy/internal/handlers/setting"
	testimonialHandler "jumpy/internal/handlers/testimonial"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	email.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	inflatableRepository.New,
	inflatableService.New,
	categoryRepository.New,
	categoryService.New,
	partypackageRepository.New,
	partypackageService.New,
	testimonialRepository.New,
	testimonialService.New,
	faqRepository.New,
	faqService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingService.New,
)

var authDomain = wire.NewSet(
	adminuserRepository.New,
	adminuserService.New,
)

var mediaDomain = wire.NewSet(
	mediaService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	inquiryDomain,
	settingDomain,
	authDomain,
	mediaDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	categoryHandler.New,
	faqHandler.New,
	inflatableHandler.New,
	inquiryHandler.New,
	mediaHandler.New,
	partypackageHandler.New,
	settingHandler.New,
	testimonialHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
