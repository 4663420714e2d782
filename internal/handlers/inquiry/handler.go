package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jumpy/infras/otel"
	"jumpy/internal/domains/inquiry/model/dto"
	"jumpy/internal/domains/inquiry/service"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/failure"
	"jumpy/shared/validator"
	"jumpy/transport/http/response"
)

const missingFieldsText = "Missing required fields"

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public contact route.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.SubmitContact)
}

// AdminRouter registers the back-office routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Get("/export", handler.ExportInquiries)
		routerGroup.Get("/{id}", handler.GetInquiryByID)
		routerGroup.Put("/{id}", handler.UpdateInquiry)
		routerGroup.Delete("/{id}", handler.DeleteInquiry)
	})
}

// SubmitContact records a rental inquiry from the storefront contact form.
// @Summary Submit a rental inquiry
// @Description Record a rental inquiry and notify the business by email.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact Request"
// @Success 201 {object} dto.ContactResponse "Inquiry recorded"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.ContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate contact request")

		// The storefront form shows one generic message, field detail stays in the logs.
		response.WithError(w, failure.BadRequestFromString(missingFieldsText))

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry submitted successfully")

	response.WithJSON(w, http.StatusCreated, dto.ContactResponse{Success: true})
}

// GetInquiries lists inquiries for the back office with paging, search and stats.
// @Summary List inquiries
// @Description Retrieve inquiries with search and status filters, 15 per page, plus per-status counts.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param q query string false "Search in name, email, phone, city and requested inflatable"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Success 200 {object} dto.GetInquiriesResponse "List of inquiries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.ForListing(r, constant.InquiryPageSize)

	filter := dto.AdminListFilter{
		Search: r.URL.Query().Get(constant.RequestParamSearch),
		Status: r.URL.Query().Get(constant.RequestParamStatus),
	}

	inquiries, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiries retrieved successfully")

	response.WithJSON(w, http.StatusOK, inquiries)
}

// ExportInquiries downloads every inquiry as a CSV attachment.
// @Summary Export inquiries as CSV
// @Description Download all inquiries as a CSV file, newest first.
// @Tags Inquiry
// @Accept json
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries/export [get]
// @Security BearerAuth
func (handler *Handler) ExportInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportInquiries")
	defer scope.End()

	payload, fileName, err := handler.service.ExportCSV(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export inquiries")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inquiries exported successfully by user " + user)

	response.WithCSV(w, fileName, payload)
}

// GetInquiryByID retrieves an inquiry by its ID.
// @Summary Get an inquiry by ID
// @Description Retrieve an inquiry by its unique identifier.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} dto.InquiryResponse "Inquiry details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInquiryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	inquiry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiry by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry retrieved successfully")

	response.WithJSON(w, http.StatusOK, inquiry)
}

// UpdateInquiry updates the status and notes of an inquiry.
// @Summary Update an inquiry by ID
// @Description Move an inquiry through its workflow and attach notes.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body dto.UpdateInquiryRequest true "Update Inquiry Request"
// @Success 200 {object} response.Message "Inquiry updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInquiry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInquiryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inquiry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inquiry updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inquiry updated successfully")
}

// DeleteInquiry deletes an inquiry by its ID.
// @Summary Delete an inquiry by ID
// @Description Delete an inquiry using its unique identifier.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Message "Inquiry deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/inquiries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInquiry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inquiry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inquiry deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inquiry deleted successfully")
}
