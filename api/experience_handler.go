package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

// @Summary Get all experiences
// @Tags Experiences
// @Produce json
// @Success 200 {array} models.Experience
// @Router /experiences [get]
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}
		h.responder.WriteJSON(w, experiences)
	}
}

// @Summary Create experience
// @Tags Experiences
// @Accept json
// @Produce json
// @Param experience body models.Experience true "Experience data"
// @Success 201 {object} models.Experience
// @Failure 400 {object} ErrorResponse "Missing company or unknown role"
// @Router /experience [post]
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var experience models.Experience
		if err := decodeJSON(w, r, maxJSONBody, "experience", &experience); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.experienceRepo.Add(experience)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		h.logger.Info().Int64("experienceId", created.ID).Str("company", created.Company).Msg("Experience created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// @Summary Update experience
// @Tags Experiences
// @Accept json
// @Produce json
// @Param experienceID path integer true "Experience ID"
// @Success 200 {object} models.Experience
// @Failure 404 {object} ErrorResponse
// @Router /experience/{experienceID} [put]
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var experience models.Experience
		if err := decodeJSON(w, r, maxJSONBody, "experience", &experience); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		experience.ID = experienceID

		found, err := h.experienceRepo.Update(experience)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}
		if !found {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}
		h.responder.WriteJSON(w, experience)
	}
}

// @Summary Delete experience
// @Tags Experiences
// @Param experienceID path integer true "Experience ID"
// @Success 200 {object} StatusResponse
// @Router /experience/{experienceID} [delete]
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}
		h.responder.WriteJSON(w, StatusResponse{Status: "success", Message: "experience deleted successfully"})
	}
}
