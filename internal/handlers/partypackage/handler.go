package partypackage

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jumpy/infras/otel"
	"jumpy/internal/domains/partypackage/model/dto"
	"jumpy/internal/domains/partypackage/service"
	"jumpy/shared/constant"
	"jumpy/shared/validator"
	"jumpy/transport/http/response"
)

type Handler struct {
	service service.PartyPackage
	otel    otel.Otel
}

func New(service service.PartyPackage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public storefront routes.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/party-packages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPartyPackages)
	})
}

// AdminRouter registers the back-office routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/party-packages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePartyPackage)
		routerGroup.Get("/", handler.GetPartyPackagesAdmin)
		routerGroup.Get("/{id}", handler.GetPartyPackageByID)
		routerGroup.Put("/{id}", handler.UpdatePartyPackage)
		routerGroup.Delete("/{id}", handler.DeletePartyPackage)
		routerGroup.Post("/{id}/toggle", handler.TogglePartyPackage)
		routerGroup.Patch("/{id}/active", handler.SetPartyPackageActive)
	})
}

// GetPartyPackages lists the active party packages for the storefront.
// @Summary List active party packages
// @Description Retrieve the active party packages in display order.
// @Tags PartyPackage
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetPartyPackagesResponse "List of party packages"
// @Failure 500 {object} response.Error
// @Router /v1/party-packages [get]
func (handler *Handler) GetPartyPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartyPackages")
	defer scope.End()

	packages, err := handler.service.GetAllPublic(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get party packages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Party packages retrieved successfully")

	response.WithJSON(w, http.StatusOK, packages)
}

// CreatePartyPackage handles the creation of a new party package.
// @Summary Create a new party package
// @Description Create a new party package with the provided details.
// @Tags PartyPackage
// @Accept json
// @Produce json
// @Param request body dto.CreatePartyPackageRequest true "Create Party Package Request"
// @Success 201 {object} response.Message "Party package created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/party-packages [post]
// @Security BearerAuth
func (handler *Handler) CreatePartyPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePartyPackage")
	defer scope.End()

	req := dto.CreatePartyPackageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create party package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Party package created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Party package created successfully")
}

// GetPartyPackagesAdmin lists every party package for the back office.
// @Summary List party packages for the back office
// @Description Retrieve all party packages, hidden ones included.
// @Tags PartyPackage
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetPartyPackagesResponse "List of party packages"
// @Failure 500 {object} response.Error
// @Router /v1/admin/party-packages [get]
// @Security BearerAuth
func (handler *Handler) GetPartyPackagesAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartyPackagesAdmin")
	defer scope.End()

	packages, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get party packages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Party packages retrieved successfully")

	response.WithJSON(w, http.StatusOK, packages)
}

// GetPartyPackageByID retrieves a party package by its ID.
// @Summary Get a party package by ID
// @Description Retrieve a party package by its unique identifier.
// @Tags PartyPackage
// @Accept json
// @Produce json
// @Param id path string true "Party Package ID"
// @Success 200 {object} dto.PartyPackageResponse "Party package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/party-packages/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPartyPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartyPackageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	partyPackage, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get party package by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Party package retrieved successfully")

	response.WithJSON(w, http.StatusOK, partyPackage)
}

// UpdatePartyPackage updates an existing party package by its ID.
// @Summary Update a party package by ID
// @Description Update the details of an existing party package.
// @Tags PartyPackage
// @Accept json
// @Produce json
// @Param id path string true "Party Package ID"
// @Param request body dto.UpdatePartyPackageRequest true "Update Party Package Request"
// @Success 200 {object} response.Message "Party package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/party-packages/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePartyPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePartyPackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePartyPackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update party package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Party package updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Party package updated successfully")
}

// DeletePartyPackage deletes a party package by its ID.
// @Summary Delete a party package by ID
// @Description Delete a party package using its unique identifier.
// @Tags PartyPackage
// @Accept json
// @Produce json
// @Param id path string true "Party Package ID"
// @Success 200 {object} response.Message "Party package deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/party-packages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePartyPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePartyPackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete party package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Party package deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Party package deleted successfully")
}

// TogglePartyPackage flips the visibility of a party package.
// @Summary Toggle party package visibility
// @Description Flip the is_active flag of a party package.
// @Tags PartyPackage
// @Accept json
// @Produce json
// @Param id path string true "Party Package ID"
// @Success 200 {object} response.Message "Party package toggled successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/party-packages/{id}/toggle [post]
// @Security BearerAuth
func (handler *Handler) TogglePartyPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TogglePartyPackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Toggle(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle party package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Party package toggled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Party package toggled successfully")
}

// SetPartyPackageActive sets the visibility of a party package to an explicit value.
// @Summary Set party package visibility
// @Description Set the is_active flag of a party package to the requested value.
// @Tags PartyPackage
// @Accept json
// @Produce json
// @Param id path string true "Party Package ID"
// @Param request body dto.SetActiveRequest true "Set Active Request"
// @Success 200 {object} response.Message "Party package visibility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/party-packages/{id}/active [patch]
// @Security BearerAuth
func (handler *Handler) SetPartyPackageActive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPartyPackageActive")
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
		log.Error().Err(err).Msg("failed to set party package visibility")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Party package visibility updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Party package visibility updated successfully")
}
