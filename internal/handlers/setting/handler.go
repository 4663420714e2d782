package setting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jumpy/infras/otel"
	"jumpy/internal/domains/setting/model/dto"
	"jumpy/internal/domains/setting/service"
	"jumpy/shared/constant"
	"jumpy/shared/validator"
	"jumpy/transport/http/response"
)

type Handler struct {
	service service.Setting
	otel    otel.Otel
}

func New(service service.Setting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public storefront route.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/settings", handler.GetSettings)
}

// AdminRouter registers the back-office routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Post("/", handler.SaveSettings)
	})
}

// GetSettings returns the site settings as a key/value map.
// @Summary Get site settings
// @Description Retrieve all site settings as a key/value map.
// @Tags Setting
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetSettingsResponse "Site settings"
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// SaveSettings upserts a batch of settings in one transaction.
// @Summary Save site settings
// @Description Upsert the given settings atomically.
// @Tags Setting
// @Accept json
// @Produce json
// @Param request body dto.SaveSettingsRequest true "Save Settings Request"
// @Success 200 {object} response.Message "Settings saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings [post]
// @Security BearerAuth
func (handler *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveSettings")
	defer scope.End()

	req := dto.SaveSettingsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Save(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Settings saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Settings saved successfully")
}
