package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      *services.AdminAuth
	database  database.Database
}

func newAdminHandler(auth *services.AdminAuth, db database.Database) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
		database:  db,
	}
}

// login exchanges the admin password for a bearer token and opens the session
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin password"
// @Success 200 {object} services.AdminToken
// @Failure 401 {object} ErrorResponse "Unauthorized - Wrong password"
// @Failure 503 {object} ErrorResponse "Admin login is not configured"
// @Router /admin/login [post]
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(w, r, maxJSONBody, "login", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.auth.Login(req.Password)
		if err != nil {
			if errs.IsWrongPasswordError(err) {
				h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("Failed admin login")
			}
			h.responder.WriteError(w, err)
			return
		}

		if err := h.database.SessionRepo().Grant(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("grant", "admin session", err))
			return
		}
		h.responder.WriteJSON(w, token)
	}
}

// logout closes the admin session, which invalidates every issued token
// @Summary Admin logout
// @Tags Admin
// @Success 200 {object} StatusResponse
// @Router /admin/logout [post]
func (h adminHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.database.SessionRepo().Revoke(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("revoke", "admin session", err))
			return
		}
		h.logger.Info().Str("tokenId", ctxGetTokenID(r.Context())).Msg("Admin logged out")
		h.responder.WriteJSON(w, StatusResponse{Status: "success", Message: "logged out"})
	}
}

// session lets the admin UI check that its stored token still works
// @Summary Admin session
// @Tags Admin
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /admin/session [get]
func (h adminHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, SessionResponse{IsAdmin: true, TokenID: ctxGetTokenID(r.Context())})
	}
}

// dashboard loads every collection and singleton for the admin UI at once
// @Summary Admin dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /admin/dashboard [get]
func (h adminHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp DashboardResponse
		var g errgroup.Group

		g.Go(func() (err error) {
			resp.Projects, err = h.database.ProjectRepo().FindAll()
			return err
		})
		g.Go(func() (err error) {
			resp.Experiences, err = h.database.ExperienceRepo().FindAll()
			return err
		})
		g.Go(func() (err error) {
			resp.Skills, err = h.database.SkillRepo().FindAll()
			return err
		})
		g.Go(func() (err error) {
			resp.Messages, err = h.database.MessageRepo().FindAll()
			return err
		})
		g.Go(func() (err error) {
			resp.Profile, err = h.database.MetadataRepo().Get()
			return err
		})
		g.Go(func() (err error) {
			resp.CV, err = h.database.CVRepo().Get()
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "dashboard", err))
			return
		}
		h.responder.WriteJSON(w, resp)
	}
}
