package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// Dependencies are the collaborators built outside the api package.
// Notifier and Uploader may be nil.
type Dependencies struct {
	Issuer   *auth.Issuer
	Notifier services.ContactNotifier
	Uploader services.Uploader
}

func NewServer(c map[string]string, database database.Database, deps Dependencies) (Server, error) {
	if deps.Issuer == nil {
		return Server{}, auth.ErrMissingSecret
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(database, deps, withConfig(c), withStartupTime(startupTime))

	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadTimeout:       config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 180),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeout:       config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, deps Dependencies, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	cookie := cookieSettings{
		Name:   config.GetString(router.config, "SESSION_COOKIE", DefaultSessionCookie),
		Secure: config.GetBool(router.config, "COOKIE_SECURE", true),
	}
	handlers := initializeHandlers(database, deps, cookie)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	chiRouter.Use(handlers.session.resolve)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	setupAPIRoutes(chiRouter, handlers)
	setupPageRoutes(chiRouter, handlers, config.GetString(router.config, "ADMIN_STATIC_DIR", ""))

	if !router.startupTime.IsZero() {
		log.Debug().Time("startupTime", router.startupTime).Msg("router ready")
	}

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
