package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type profileHandler struct {
	responder    Responder
	logger       zerolog.Logger
	metadataRepo *database.MetadataRepo
	maxJSONBytes int64 // heroImageUrl may hold an uploaded image
}

func newProfileHandler(metadataRepo *database.MetadataRepo, maxJSONBytes int64) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		metadataRepo: metadataRepo,
		maxJSONBytes: maxJSONBytes,
	}
}

// getProfile returns the owner profile, falling back to the defaults
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.PortfolioMetadata
// @Router /profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta, err := h.metadataRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("read", "profile", err))
			return
		}
		h.responder.WriteJSON(w, meta)
	}
}

// updateProfile replaces the whole profile
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body models.PortfolioMetadata true "Profile"
// @Success 200 {object} models.PortfolioMetadata
// @Failure 400 {object} ErrorResponse "Bad Request - Missing name"
// @Router /profile [put]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var meta models.PortfolioMetadata
		if err := decodeJSON(w, r, h.maxJSONBytes, "profile", &meta); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.metadataRepo.Update(meta); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "profile", err))
			return
		}
		h.logger.Info().Str("name", meta.Name).Msg("Profile updated")
		h.responder.WriteJSON(w, meta)
	}
}
