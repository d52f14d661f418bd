package api

import "github.com/rpupo63/portfolio-site-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler    projectHandler
	experienceHandler experienceHandler
	skillHandler      skillHandler
	messageHandler    messageHandler
	profileHandler    profileHandler
	cvHandler         cvHandler
	uploadHandler     uploadHandler
	adminHandler      adminHandler
	eventsHandler     eventsHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type SessionResponse struct {
	IsAdmin bool   `json:"isAdmin"`
	TokenID string `json:"tokenId,omitempty"`
}

type UploadResponse struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	DataURL string `json:"dataUrl"`
}

// DashboardResponse is everything the admin UI renders. CV is null when no
// CV has been uploaded.
type DashboardResponse struct {
	Projects    []models.Project           `json:"projects"`
	Experiences []models.Experience        `json:"experiences"`
	Skills      []models.Skill             `json:"skills"`
	Messages    []models.ContactSubmission `json:"messages"`
	Profile     models.PortfolioMetadata   `json:"profile"`
	CV          *models.CVData             `json:"cv"`
}
