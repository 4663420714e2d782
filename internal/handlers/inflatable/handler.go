package inflatable

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jumpy/infras/otel"
	"jumpy/internal/domains/inflatable/model/dto"
	"jumpy/internal/domains/inflatable/service"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/validator"
	"jumpy/transport/http/response"
)

type Handler struct {
	service service.Inflatable
	otel    otel.Otel
}

func New(service service.Inflatable, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public storefront routes.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/inflatables", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetInflatables)
		routerGroup.Get("/{slug}", handler.GetInflatableBySlug)
	})
}

// AdminRouter registers the back-office routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/inflatables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInflatable)
		routerGroup.Get("/", handler.GetInflatablesAdmin)
		routerGroup.Get("/{id}", handler.GetInflatableByID)
		routerGroup.Put("/{id}", handler.UpdateInflatable)
		routerGroup.Delete("/{id}", handler.DeleteInflatable)
		routerGroup.Post("/{id}/toggle", handler.ToggleInflatable)
		routerGroup.Patch("/{id}/active", handler.SetInflatableActive)
	})
}

// GetInflatables lists the active catalog for the storefront.
// @Summary List active inflatables
// @Description Retrieve the active inflatables, optionally filtered by category.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param category query string false "Filter by category slug"
// @Success 200 {object} dto.GetInflatablesResponse "List of inflatables"
// @Failure 500 {object} response.Error
// @Router /v1/inflatables [get]
func (handler *Handler) GetInflatables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInflatables")
	defer scope.End()

	category := r.URL.Query().Get(constant.RequestParamCategory)

	inflatables, err := handler.service.GetAllPublic(ctx, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inflatables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inflatables retrieved successfully")

	response.WithJSON(w, http.StatusOK, inflatables)
}

// GetInflatableBySlug retrieves one active inflatable by its slug.
// @Summary Get an inflatable by slug
// @Description Retrieve an active inflatable by its URL slug.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param slug path string true "Inflatable slug"
// @Success 200 {object} dto.InflatableResponse "Inflatable details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inflatables/{slug} [get]
func (handler *Handler) GetInflatableBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInflatableBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	inflatable, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inflatable by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inflatable retrieved successfully")

	response.WithJSON(w, http.StatusOK, inflatable)
}

// CreateInflatable handles the creation of a new inflatable.
// @Summary Create a new inflatable
// @Description Create a new inflatable with the provided details.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param request body dto.CreateInflatableRequest true "Create Inflatable Request"
// @Success 201 {object} response.Message "Inflatable created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inflatables [post]
// @Security BearerAuth
func (handler *Handler) CreateInflatable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInflatable")
	defer scope.End()

	req := dto.CreateInflatableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inflatable")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inflatable created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Inflatable created successfully")
}

// GetInflatablesAdmin lists inflatables for the back-office with paging and filters.
// @Summary List inflatables for the back office
// @Description Retrieve inflatables with search, category and status filters, 10 per page.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param q query string false "Search in name and description"
// @Param category query string false "Filter by category slug"
// @Param status query string false "active or hidden"
// @Param page query int false "Page number"
// @Success 200 {object} dto.GetInflatablesResponse "List of inflatables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inflatables [get]
// @Security BearerAuth
func (handler *Handler) GetInflatablesAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInflatablesAdmin")
	defer scope.End()

	queryParams := gDto.ForListing(r, constant.InflatablePageSize)

	filter := dto.AdminListFilter{
		Search:   r.URL.Query().Get(constant.RequestParamSearch),
		Category: r.URL.Query().Get(constant.RequestParamCategory),
		Status:   r.URL.Query().Get(constant.RequestParamStatus),
	}

	inflatables, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inflatables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inflatables retrieved successfully")

	response.WithJSON(w, http.StatusOK, inflatables)
}

// GetInflatableByID retrieves an inflatable by its ID.
// @Summary Get an inflatable by ID
// @Description Retrieve an inflatable by its unique identifier, hidden rows included.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param id path string true "Inflatable ID"
// @Success 200 {object} dto.InflatableResponse "Inflatable details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inflatables/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInflatableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInflatableByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	inflatable, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inflatable by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inflatable retrieved successfully")

	response.WithJSON(w, http.StatusOK, inflatable)
}

// UpdateInflatable updates an existing inflatable by its ID.
// @Summary Update an inflatable by ID
// @Description Update the details of an existing inflatable.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param id path string true "Inflatable ID"
// @Param request body dto.UpdateInflatableRequest true "Update Inflatable Request"
// @Success 200 {object} response.Message "Inflatable updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inflatables/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateInflatable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInflatable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInflatableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inflatable")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inflatable updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inflatable updated successfully")
}

// DeleteInflatable deletes an inflatable by its ID.
// @Summary Delete an inflatable by ID
// @Description Delete an inflatable and clean up its stored gallery images.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param id path string true "Inflatable ID"
// @Success 200 {object} response.Message "Inflatable deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inflatables/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInflatable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInflatable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inflatable")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inflatable deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inflatable deleted successfully")
}

// ToggleInflatable flips the visibility of an inflatable.
// @Summary Toggle inflatable visibility
// @Description Flip the is_active flag of an inflatable.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param id path string true "Inflatable ID"
// @Success 200 {object} response.Message "Inflatable toggled successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inflatables/{id}/toggle [post]
// @Security BearerAuth
func (handler *Handler) ToggleInflatable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleInflatable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Toggle(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle inflatable")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inflatable toggled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inflatable toggled successfully")
}

// SetInflatableActive sets the visibility of an inflatable to an explicit value.
// @Summary Set inflatable visibility
// @Description Set the is_active flag of an inflatable to the requested value.
// @Tags Inflatable
// @Accept json
// @Produce json
// @Param id path string true "Inflatable ID"
// @Param request body dto.SetActiveRequest true "Set Active Request"
// @Success 200 {object} response.Message "Inflatable visibility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inflatables/{id}/active [patch]
// @Security BearerAuth
func (handler *Handler) SetInflatableActive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetInflatableActive")
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
		log.Error().Err(err).Msg("failed to set inflatable visibility")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inflatable visibility updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inflatable visibility updated successfully")
}
