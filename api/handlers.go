package api

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type handlerDeps struct {
	auth           *services.AdminAuth
	alerter        *services.InquiryAlerter
	maxUploadBytes int64
	keepAlive      time.Duration
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, deps handlerDeps) *routeHandlers {
	return &routeHandlers{
		projectHandler:    newProjectHandler(db.ProjectRepo(), contentBodyLimit(deps.maxUploadBytes)),
		experienceHandler: newExperienceHandler(db.ExperienceRepo()),
		skillHandler:      newSkillHandler(db.SkillRepo()),
		messageHandler:    newMessageHandler(db.MessageRepo(), deps.alerter),
		profileHandler:    newProfileHandler(db.MetadataRepo(), contentBodyLimit(deps.maxUploadBytes)),
		cvHandler:         newCVHandler(db.CVRepo(), deps.maxUploadBytes),
		uploadHandler:     newUploadHandler(deps.maxUploadBytes),
		adminHandler:      newAdminHandler(deps.auth, db),
		eventsHandler:     newEventsHandler(db.Notifier(), deps.keepAlive),
	}
}

// ownerEmail reads the profile e-mail for inquiry alerts without an
// explicit ALERT_EMAIL_TO
func ownerEmail(metadataRepo *database.MetadataRepo) func() string {
	return func() string {
		meta, err := metadataRepo.Get()
		if err != nil {
			log.Warn().Err(err).Msg("Could not read profile e-mail for inquiry alert")
			return ""
		}
		return meta.Email
	}
}
