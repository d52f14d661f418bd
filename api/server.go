package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
	alerter     *services.InquiryAlerter
}

func NewServer(c map[string]string, db database.Database) (Server, error) {
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	alerter := services.NewInquiryAlerter(c, ownerEmail(db.MetadataRepo()))
	router, err := newRouter(db, withConfig(c), withAlerter(alerter))
	if err != nil {
		return Server{}, err
	}

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	// request contexts end when shutdown starts, so open event streams let go
	baseCtx, cancelBase := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancelBase)

	return Server{server, startupTime, alerter}, nil
}

type router struct {
	config  map[string]string
	alerter *services.InquiryAlerter
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withAlerter(alerter *services.InquiryAlerter) func(*router) {
	return func(r *router) {
		r.alerter = alerter
	}
}

func newRouter(db database.Database, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.alerter == nil {
		router.alerter = services.NewInquiryAlerter(router.config, ownerEmail(db.MetadataRepo()))
	}

	auth, err := services.NewAdminAuth(router.config)
	if err != nil {
		return nil, err
	}

	handlers := initializeHandlers(db, handlerDeps{
		auth:           auth,
		alerter:        router.alerter,
		maxUploadBytes: int64(config.GetInt(router.config, "MAX_UPLOAD_MB", 10)) << 20,
		keepAlive:      time.Duration(config.GetInt(router.config, "SSE_KEEPALIVE_SECONDS", 25)) * time.Second,
	})
	authMiddleware := newAuthMiddleware(auth, db.SessionRepo())

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	if len(acceptedOrigins) == 0 {
		log.Warn().Msg("ACCEPTED_ORIGINS is empty, allowing every origin")
		acceptedOrigins = []string{"*"}
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(HTTPLoggingMiddleware(config.GetBool(router.config, "LOG_PRETTY", false)))
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	setupPublicRoutes(chiRouter, handlers)
	setupAdminRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Time("startedAt", s.startupTime).Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

// ShutdownGracefully stops accepting requests, drains the in-flight ones and
// waits for inquiry alerts still being delivered
func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}

	done := make(chan struct{})
	go func() {
		s.alerter.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-gracefullCtx.Done():
		log.Warn().Msg("Inquiry alerts still pending at shutdown")
	}
}
