package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/services"
)

// uploadHandler turns an image upload into the inline data URL that
// projects and the profile store in their image fields
type uploadHandler struct {
	responder      Responder
	logger         zerolog.Logger
	maxUploadBytes int64
}

func newUploadHandler(maxUploadBytes int64) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// @Summary Encode upload
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image or document"
// @Success 200 {object} UploadResponse
// @Failure 413 {object} ErrorResponse "Upload larger than MAX_UPLOAD_MB"
// @Router /upload [post]
func (h uploadHandler) encodeUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, data, err := readUpload(w, r, h.maxUploadBytes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		dataURL, mimeType := services.EncodeDataURL(name, data)
		h.logger.Debug().Str("name", name).Str("type", mimeType).Int("bytes", len(data)).Msg("Upload encoded")
		h.responder.WriteJSON(w, UploadResponse{Name: name, Type: mimeType, DataURL: dataURL})
	}
}
