package api

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type cvHandler struct {
	responder      Responder
	logger         zerolog.Logger
	cvRepo         *database.CVRepo
	maxUploadBytes int64
}

func newCVHandler(cvRepo *database.CVRepo, maxUploadBytes int64) cvHandler {
	logger := log.With().Str("handlerName", "cvHandler").Logger()

	return cvHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		cvRepo:         cvRepo,
		maxUploadBytes: maxUploadBytes,
	}
}

// getCV returns the stored CV record including its data URL
// @Summary Get CV
// @Tags CV
// @Produce json
// @Success 200 {object} models.CVData
// @Failure 404 {object} ErrorResponse "Not Found - No CV uploaded"
// @Router /cv [get]
func (h cvHandler) getCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cv, err := h.cvRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("read", "cv", err))
			return
		}
		if cv == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("no cv uploaded"))
			return
		}
		h.responder.WriteJSON(w, cv)
	}
}

// downloadCV serves the decoded CV as an attachment under its stored name
// @Summary Download CV
// @Tags CV
// @Produce octet-stream
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Not Found - No CV uploaded"
// @Router /cv/download [get]
func (h cvHandler) downloadCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cv, err := h.cvRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("read", "cv", err))
			return
		}
		if cv == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("no cv uploaded"))
			return
		}

		mimeType, data, err := services.DecodeDataURL(cv.Base64)
		if err != nil {
			if errs.IsDataURLError(err) {
				h.logger.Error().Err(err).Str("name", cv.Name).Msg("Stored CV is not a data URL")
			} else {
				h.logger.Error().Err(err).Str("name", cv.Name).Msg("Stored CV payload does not decode")
			}
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("decode stored cv", err))
			return
		}
		if cv.Type != "" {
			mimeType = cv.Type
		}

		w.Header().Set("Content-Type", mimeType)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": cv.Name}))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			h.logger.Error().Err(err).Msg("error writing cv download")
		}
	}
}

// saveCV replaces the CV. It takes either a multipart upload in field "file"
// or a JSON CVData body whose base64 field is already a data URL.
// @Summary Upload CV
// @Tags CV
// @Accept multipart/form-data,json
// @Produce json
// @Param file formData file false "CV document"
// @Success 200 {object} models.CVData
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse "Upload larger than MAX_UPLOAD_MB"
// @Router /cv [put]
func (h cvHandler) saveCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cv models.CVData

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			name, data, err := readUpload(w, r, h.maxUploadBytes)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			dataURL, mimeType := services.EncodeDataURL(name, data)
			cv = models.CVData{Name: name, Base64: dataURL, Type: mimeType}
		} else {
			if err := decodeJSON(w, r, contentBodyLimit(h.maxUploadBytes), "cv", &cv); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			mimeType, _, err := services.DecodeDataURL(cv.Base64)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if cv.Type == "" {
				cv.Type = mimeType
			}
		}

		if err := h.cvRepo.Save(cv); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "cv", err))
			return
		}
		h.logger.Info().Str("name", cv.Name).Str("type", cv.Type).Msg("CV replaced")
		h.responder.WriteJSON(w, cv)
	}
}

// @Summary Remove CV
// @Tags CV
// @Success 200 {object} StatusResponse
// @Router /cv [delete]
func (h cvHandler) clearCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.cvRepo.Clear(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("clear", "cv", err))
			return
		}
		h.responder.WriteJSON(w, StatusResponse{Status: "success", Message: "cv removed"})
	}
}
