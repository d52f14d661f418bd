package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes serves what every visitor's browser reads, plus the
// contact form and admin login
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/projects", handlers.projectHandler.getAllProjects())
	r.Get("/project/{projectID}", handlers.projectHandler.getProject())
	r.Get("/experiences", handlers.experienceHandler.getAllExperiences())
	r.Get("/skills", handlers.skillHandler.getAllSkills())
	r.Get("/profile", handlers.profileHandler.getProfile())
	r.Get("/cv", handlers.cvHandler.getCV())
	r.Get("/cv/download", handlers.cvHandler.downloadCV())
	r.Post("/message", handlers.messageHandler.submitMessage())
	r.Get("/events", handlers.eventsHandler.streamChanges())
	r.Post("/admin/login", handlers.adminHandler.login())
}

// setupAdminRoutes sets up all routes behind authentication
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/experience", handlers.experienceHandler.createExperience())
		r.Put("/experience/{experienceID}", handlers.experienceHandler.updateExperience())
		r.Delete("/experience/{experienceID}", handlers.experienceHandler.deleteExperience())

		r.Post("/skill", handlers.skillHandler.createSkill())
		r.Put("/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

		r.Get("/messages", handlers.messageHandler.getAllMessages())
		r.Delete("/message/{messageID}", handlers.messageHandler.deleteMessage())

		r.Put("/profile", handlers.profileHandler.updateProfile())

		r.Put("/cv", handlers.cvHandler.saveCV())
		r.Delete("/cv", handlers.cvHandler.clearCV())

		r.Post("/upload", handlers.uploadHandler.encodeUpload())

		r.Get("/admin/dashboard", handlers.adminHandler.dashboard())
		r.Get("/admin/session", handlers.adminHandler.session())
		r.Post("/admin/logout", handlers.adminHandler.logout())
	})
}
