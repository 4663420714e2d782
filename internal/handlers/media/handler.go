package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jumpy/infras/otel"
	"jumpy/internal/domains/media/model/dto"
	"jumpy/internal/domains/media/service"
	"jumpy/shared/constant"
	"jumpy/shared/validator"
	"jumpy/transport/http/response"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AdminRouter registers the back-office upload routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/upload", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadMedia)
		routerGroup.Delete("/", handler.DeleteMedia)
	})
}

// UploadMedia validates and stores a media file, returning its public URL.
// @Summary Upload a media file
// @Description Upload an image or video to blob storage and return the URL.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file to upload"
// @Param type formData string true "Media class: image, video or media"
// @Success 200 {object} dto.UploadMediaResponse "Media uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadMedia")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	mediaClass := r.FormValue(constant.FormMediaType)

	url, err := handler.service.Upload(ctx, file, fileHeader, mediaClass)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload media file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Media uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, dto.UploadMediaResponse{URL: url})
}

// DeleteMedia removes a stored media file by its public URL.
// @Summary Delete a media file
// @Description Delete a media file from blob storage by its URL.
// @Tags Media
// @Accept json
// @Produce json
// @Param request body dto.DeleteMediaRequest true "Delete Media Request"
// @Success 200 {object} response.Message "Media deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/upload [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMedia")
	defer scope.End()

	req := dto.DeleteMediaRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req.URL); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete media file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Media deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Media deleted successfully")
}
