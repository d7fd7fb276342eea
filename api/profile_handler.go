package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	validator   *requestValidator
}

func newProfileHandler(profileRepo *database.ProfileRepo, validator *requestValidator) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		validator:   validator,
	}
}

// getProfile answers null until a profile has been saved
func (h profileHandler) getProfile() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
		profile, err := h.profileRepo.First(r.Context())
		if errs.IsNotFound(err) {
			h.responder.WriteJSON(w, nil)
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Profile", err))
			return
		}
		h.responder.WriteJSON(w, profile)
	}
}

// saveProfile replaces the single profile, creating it the first time
func (h profileHandler) saveProfile() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, actor auth.Identity) {
		var in profileInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.validator.Validate(in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var profile models.Profile
		if err := in.apply(&profile); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.profileRepo.Upsert(r.Context(), &profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "Profile", err))
			return
		}

		h.logger.Info().Str("actor", actor.Email).Msg("profile saved")
		h.responder.WriteJSON(w, profile)
	}
}
