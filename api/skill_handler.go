package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}
		h.responder.WriteJSON(w, skills)
	}
}

// createSkill appends a skill; unlike projects, new skills go to the end
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var skill models.Skill
		if err := decodeJSON(w, r, maxJSONBody, "skill", &skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.skillRepo.Add(skill)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := idParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var skill models.Skill
		if err := decodeJSON(w, r, maxJSONBody, "skill", &skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		skill.ID = skillID

		found, err := h.skillRepo.Update(skill)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}
		if !found {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}
		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := idParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}
		h.responder.WriteJSON(w, StatusResponse{Status: "success", Message: "skill deleted successfully"})
	}
}
