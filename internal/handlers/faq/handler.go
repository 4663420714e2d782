package faq

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jumpy/infras/otel"
	"jumpy/internal/domains/faq/model/dto"
	"jumpy/internal/domains/faq/service"
	"jumpy/shared/constant"
	"jumpy/shared/validator"
	"jumpy/transport/http/response"
)

type Handler struct {
	service service.FAQ
	otel    otel.Otel
}

func New(service service.FAQ, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public storefront routes.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/faqs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFAQs)
	})
}

// AdminRouter registers the back-office routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/faqs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFAQ)
		routerGroup.Get("/", handler.GetFAQsAdmin)
		routerGroup.Get("/{id}", handler.GetFAQByID)
		routerGroup.Put("/{id}", handler.UpdateFAQ)
		routerGroup.Delete("/{id}", handler.DeleteFAQ)
		routerGroup.Post("/{id}/toggle", handler.ToggleFAQ)
		routerGroup.Patch("/{id}/active", handler.SetFAQActive)
	})
}

// GetFAQs lists the active FAQs for the storefront.
// @Summary List active FAQs
// @Description Retrieve the active FAQs in display order.
// @Tags FAQ
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetFAQsResponse "List of FAQs"
// @Failure 500 {object} response.Error
// @Router /v1/faqs [get]
func (handler *Handler) GetFAQs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFAQs")
	defer scope.End()

	faqs, err := handler.service.GetAllPublic(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get FAQs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("FAQs retrieved successfully")

	response.WithJSON(w, http.StatusOK, faqs)
}

// CreateFAQ handles the creation of a new FAQ.
// @Summary Create a new FAQ
// @Description Create a new FAQ with the provided details.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param request body dto.CreateFAQRequest true "Create FAQ Request"
// @Success 201 {object} response.Message "FAQ created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/faqs [post]
// @Security BearerAuth
func (handler *Handler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFAQ")
	defer scope.End()

	req := dto.CreateFAQRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create FAQ")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("FAQ created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "FAQ created successfully")
}

// GetFAQsAdmin lists every FAQ for the back office.
// @Summary List FAQs for the back office
// @Description Retrieve all FAQs, hidden ones included.
// @Tags FAQ
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetFAQsResponse "List of FAQs"
// @Failure 500 {object} response.Error
// @Router /v1/admin/faqs [get]
// @Security BearerAuth
func (handler *Handler) GetFAQsAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFAQsAdmin")
	defer scope.End()

	faqs, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get FAQs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("FAQs retrieved successfully")

	response.WithJSON(w, http.StatusOK, faqs)
}

// GetFAQByID retrieves a FAQ by its ID.
// @Summary Get a FAQ by ID
// @Description Retrieve a FAQ by its unique identifier.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} dto.FAQResponse "FAQ details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/faqs/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetFAQByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFAQByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	faq, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get FAQ by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("FAQ retrieved successfully")

	response.WithJSON(w, http.StatusOK, faq)
}

// UpdateFAQ updates an existing FAQ by its ID.
// @Summary Update a FAQ by ID
// @Description Update the details of an existing FAQ.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param request body dto.UpdateFAQRequest true "Update FAQ Request"
// @Success 200 {object} response.Message "FAQ updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/faqs/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFAQ")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFAQRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update FAQ")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("FAQ updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "FAQ updated successfully")
}

// DeleteFAQ deletes a FAQ by its ID.
// @Summary Delete a FAQ by ID
// @Description Delete a FAQ using its unique identifier.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} response.Message "FAQ deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/faqs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFAQ")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete FAQ")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("FAQ deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "FAQ deleted successfully")
}

// ToggleFAQ flips the visibility of a FAQ.
// @Summary Toggle FAQ visibility
// @Description Flip the is_active flag of a FAQ.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} response.Message "FAQ toggled successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/faqs/{id}/toggle [post]
// @Security BearerAuth
func (handler *Handler) ToggleFAQ(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleFAQ")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Toggle(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle FAQ")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("FAQ toggled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "FAQ toggled successfully")
}

// SetFAQActive sets the visibility of a FAQ to an explicit value.
// @Summary Set FAQ visibility
// @Description Set the is_active flag of a FAQ to the requested value.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param request body dto.SetActiveRequest true "Set Active Request"
// @Success 200 {object} response.Message "FAQ visibility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/faqs/{id}/active [patch]
// @Security BearerAuth
func (handler *Handler) SetFAQActive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetFAQActive")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetActiveRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetActive(ctx, id, *req.IsActive); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set FAQ visibility")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("FAQ visibility updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "FAQ visibility updated successfully")
}
