package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/api"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/notifier"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogging(c)
	log.Info().Msg("Initializing app...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := config.LoadSSM(ctx, c); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Error loading SSM parameters")
	}
	cancel()

	backend, closeBackend, err := database.Open(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening storage backend")
	}
	defer func() {
		if err := closeBackend(); err != nil {
			log.Error().Err(err).Msg("Error closing storage backend")
		}
	}()

	var opts []database.Option
	if prefix := config.GetString(c, "STORE_KEY_PREFIX", ""); prefix != "" {
		opts = append(opts, database.WithKeyPrefix(prefix))
	}
	currentDB := database.New(backend, notifier.New(), opts...)

	if _, err := currentDB.Init(); err != nil {
		log.Fatal().Err(err).Msg("Error seeding default content")
	}

	// room for both the server and the signal listener to report
	errChannel := make(chan error, 2)

	server, err := api.NewServer(c, currentDB)
	if err != nil {
		if errs.IsConfigError(err) {
			log.Fatal().Err(err).Msg("Admin credentials are misconfigured, check ADMIN_PASSWORD_HASH and BACKEND_PASSWORD")
		}
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// setupLogging applies LOG_LEVEL and switches to console output when LOG_PRETTY is set
func setupLogging(c map[string]string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	level, err := zerolog.ParseLevel(config.GetString(c, "LOG_LEVEL", "info"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetBool(c, "LOG_PRETTY", false) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
