package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
)

// publicHandler serves the contact page's price list and social links.
type publicHandler struct {
	responder       Responder
	serviceRepo     *database.ServiceRepo
	socialMediaRepo *database.SocialMediaRepo
}

func newPublicHandler(serviceRepo *database.ServiceRepo, socialMediaRepo *database.SocialMediaRepo) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()
	return publicHandler{
		responder:       NewResponder(logger),
		serviceRepo:     serviceRepo,
		socialMediaRepo: socialMediaRepo,
	}
}

func (h publicHandler) activeServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.serviceRepo.FindActive(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "services", err))
			return
		}
		h.responder.WriteJSON(w, services)
	}
}

func (h publicHandler) activeSocialMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.socialMediaRepo.FindActive(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social media", err))
			return
		}
		h.responder.WriteJSON(w, links)
	}
}

type healthHandler struct {
	responder Responder
	db        database.Database
}

func newHealthHandler(db database.Database) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{responder: NewResponder(logger), db: db}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// healthz reports 503 while the database is unreachable
func (h healthHandler) healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Ping(r.Context()); err != nil {
			h.responder.logger.Warn().Err(err).Msg("database ping failed")
			h.responder.WriteJSONStatus(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
			return
		}
		h.responder.WriteJSON(w, HealthResponse{Status: "ok", Database: "ok"})
	}
}
