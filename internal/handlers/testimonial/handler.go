package testimonial

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jumpy/infras/otel"
	"jumpy/internal/domains/testimonial/model/dto"
	"jumpy/internal/domains/testimonial/service"
	"jumpy/shared/constant"
	"jumpy/shared/validator"
	"jumpy/transport/http/response"
)

type Handler struct {
	service service.Testimonial
	otel    otel.Otel
}

func New(service service.Testimonial, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public storefront routes.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/testimonials", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTestimonials)
	})
}

// AdminRouter registers the back-office routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/testimonials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTestimonial)
		routerGroup.Get("/", handler.GetTestimonialsAdmin)
		routerGroup.Get("/{id}", handler.GetTestimonialByID)
		routerGroup.Put("/{id}", handler.UpdateTestimonial)
		routerGroup.Delete("/{id}", handler.DeleteTestimonial)
		routerGroup.Post("/{id}/toggle", handler.ToggleTestimonial)
		routerGroup.Patch("/{id}/active", handler.SetTestimonialActive)
	})
}

// GetTestimonials lists the active testimonials for the storefront.
// @Summary List active testimonials
// @Description Retrieve the active testimonials, featured ones first.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetTestimonialsResponse "List of testimonials"
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [get]
func (handler *Handler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonials")
	defer scope.End()

	testimonials, err := handler.service.GetAllPublic(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonials retrieved successfully")

	response.WithJSON(w, http.StatusOK, testimonials)
}

// CreateTestimonial handles the creation of a new testimonial.
// @Summary Create a new testimonial
// @Description Create a new testimonial with the provided details.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param request body dto.CreateTestimonialRequest true "Create Testimonial Request"
// @Success 201 {object} response.Message "Testimonial created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/testimonials [post]
// @Security BearerAuth
func (handler *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTestimonial")
	defer scope.End()

	req := dto.CreateTestimonialRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create testimonial")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Testimonial created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Testimonial created successfully")
}

// GetTestimonialsAdmin lists every testimonial for the back office.
// @Summary List testimonials for the back office
// @Description Retrieve all testimonials, hidden ones included.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetTestimonialsResponse "List of testimonials"
// @Failure 500 {object} response.Error
// @Router /v1/admin/testimonials [get]
// @Security BearerAuth
func (handler *Handler) GetTestimonialsAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonialsAdmin")
	defer scope.End()

	testimonials, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonials retrieved successfully")

	response.WithJSON(w, http.StatusOK, testimonials)
}

// GetTestimonialByID retrieves a testimonial by its ID.
// @Summary Get a testimonial by ID
// @Description Retrieve a testimonial by its unique identifier.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} dto.TestimonialResponse "Testimonial details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/testimonials/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTestimonialByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonialByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	testimonial, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonial by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonial retrieved successfully")

	response.WithJSON(w, http.StatusOK, testimonial)
}

// UpdateTestimonial updates an existing testimonial by its ID.
// @Summary Update a testimonial by ID
// @Description Update the details of an existing testimonial.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body dto.UpdateTestimonialRequest true "Update Testimonial Request"
// @Success 200 {object} response.Message "Testimonial updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/testimonials/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTestimonial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTestimonialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update testimonial")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Testimonial updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Testimonial updated successfully")
}

// DeleteTestimonial deletes a testimonial by its ID.
// @Summary Delete a testimonial by ID
// @Description Delete a testimonial using its unique identifier.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Message "Testimonial deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/testimonials/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTestimonial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete testimonial")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Testimonial deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Testimonial deleted successfully")
}

// ToggleTestimonial flips the visibility of a testimonial.
// @Summary Toggle testimonial visibility
// @Description Flip the is_active flag of a testimonial.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Message "Testimonial toggled successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/testimonials/{id}/toggle [post]
// @Security BearerAuth
func (handler *Handler) ToggleTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleTestimonial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Toggle(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle testimonial")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Testimonial toggled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Testimonial toggled successfully")
}

// SetTestimonialActive sets the visibility of a testimonial to an explicit value.
// @Summary Set testimonial visibility
// @Description Set the is_active flag of a testimonial to the requested value.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body dto.SetActiveRequest true "Set Active Request"
// @Success 200 {object} response.Message "Testimonial visibility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/testimonials/{id}/active [patch]
// @Security BearerAuth
func (handler *Handler) SetTestimonialActive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetTestimonialActive")
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
		log.Error().Err(err).Msg("failed to set testimonial visibility")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Testimonial visibility updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Testimonial visibility updated successfully")
}
