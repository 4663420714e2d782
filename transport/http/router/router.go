package router

import (
	"github.com/go-chi/chi/v5"

	"jumpy/internal/handlers/auth"
	"jumpy/internal/handlers/category"
	"jumpy/internal/handlers/faq"
	"jumpy/internal/handlers/inflatable"
	"jumpy/internal/handlers/inquiry"
	"jumpy/internal/handlers/media"
	"jumpy/internal/handlers/partypackage"
	"jumpy/internal/handlers/setting"
	"jumpy/internal/handlers/testimonial"
	"jumpy/transport/http/middleware"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Category     category.Handler
	FAQ          faq.Handler
	Inflatable   inflatable.Handler
	Inquiry      inquiry.Handler
	Media        media.Handler
	PartyPackage partypackage.Handler
	Setting      setting.Handler
	Testimonial  testimonial.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.Auth
}

// SetupRoutes mounts the storefront surface on /v1 and the back office on
// /v1/admin behind authentication and the admin role gate.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.CORS())
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Inflatable.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.PartyPackage.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.FAQ.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(authenticated chi.Router) {
			authenticated.Use(r.AuthMiddleware.Authenticate)

			r.DomainHandlers.Auth.AuthenticatedRouter(authenticated)
		})

		routerGroup.Route("/admin", func(admin chi.Router) {
			admin.Use(r.AuthMiddleware.Authenticate)
			admin.Use(r.AuthMiddleware.AdminOnly)

			r.DomainHandlers.Inflatable.AdminRouter(admin)
			r.DomainHandlers.PartyPackage.AdminRouter(admin)
			r.DomainHandlers.Testimonial.AdminRouter(admin)
			r.DomainHandlers.FAQ.AdminRouter(admin)
			r.DomainHandlers.Inquiry.AdminRouter(admin)
			r.DomainHandlers.Setting.AdminRouter(admin)
			r.DomainHandlers.Media.AdminRouter(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
