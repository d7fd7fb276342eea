package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	ctx := context.Background()
	c, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	setLogLevel(config.GetString(c, "LOG_LEVEL", "info"))

	opts := database.OptionsFromConfig(c)
	log.Info().Str("dbType", opts.Type).Bool("replica", opts.ReplicaDSN != "").Msg("Connecting to database...")
	db, err := database.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		models.GenerateColumnMismatchReport(db)
		return
	}

	currentDB := database.New(db)

	if config.GetBool(c, "AUTO_MIGRATE", true) {
		if err := currentDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Error migrating database")
		}
	}

	if config.GetBool(c, "CREATE_ADMIN", false) {
		created, err := services.EnsureAdmin(ctx, currentDB.UserRepo(), services.AdminAccount{
			Email:    config.GetString(c, "ADMIN_EMAIL", ""),
			Password: config.GetString(c, "ADMIN_PASSWORD", ""),
			Name:     config.GetString(c, "ADMIN_NAME", ""),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating admin user")
		}
		log.Info().Bool("created", created).Msg("Admin bootstrap finished")
		return
	}

	deps, err := buildDependencies(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing dependencies")
	}

	// Start and listenToInterrupt each send once; the buffer lets the
	// loser finish after shutdown without a reader.
	errChannel := make(chan error, 2)

	server, err := api.NewServer(c, currentDB, deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// buildDependencies wires the session issuer, contact notifiers and upload
// storage. Missing notifier or storage settings disable those features.
func buildDependencies(ctx context.Context, c map[string]string) (api.Dependencies, error) {
	ttl := time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 24*7)) * time.Hour
	issuer, err := auth.NewIssuer(config.GetString(c, "JWT_SECRET", ""), ttl)
	if err != nil {
		return api.Dependencies{}, err
	}

	deps := api.Dependencies{
		Issuer:   issuer,
		Notifier: services.NotifiersFromConfig(c),
	}

	uploader, err := services.NewS3UploaderFromConfig(ctx, c)
	switch {
	case errors.Is(err, services.ErrStorageNotConfigured):
		log.Warn().Msg("S3_BUCKET not set, uploads are disabled")
	case err != nil:
		return api.Dependencies{}, err
	default:
		deps.Uploader = uploader
	}

	return deps, nil
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
