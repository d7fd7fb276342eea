package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
)

const DefaultSessionCookie = "portfolio_session"

var errBadCredentials = errs.NewApiErr(http.StatusUnauthorized, "Invalid email or password")

// cookieSettings shapes the session cookie login sets and logout clears.
type cookieSettings struct {
	Name   string
	Secure bool
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	issuer    *auth.Issuer
	cookie    cookieSettings
	validator *requestValidator
}

func newAuthHandler(userRepo *database.UserRepo, issuer *auth.Issuer, cookie cookieSettings, validator *requestValidator) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		issuer:    issuer,
		cookie:    cookie,
		validator: validator,
	}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      auth.Identity `json:"user"`
}

func (h authHandler) sessionCookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// login checks the credentials and starts a session. Unknown emails and
// wrong passwords get the same answer.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in loginInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.validator.Validate(in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByEmail(r.Context(), in.Email)
		if errs.IsNotFound(err) {
			h.logger.Info().Str("email", in.Email).Msg("login for unknown email")
			h.responder.WriteError(w, errBadCredentials)
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "User", err))
			return
		}
		if !auth.CheckPassword(user.Password, in.Password) {
			h.logger.Info().Str("email", in.Email).Msg("login with wrong password")
			h.responder.WriteError(w, errBadCredentials)
			return
		}

		identity := user.Identity()
		token, expires, err := h.issuer.Issue(identity)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("issue session", err))
			return
		}

		http.SetCookie(w, h.sessionCookie(token, expires, int(h.issuer.TTL().Seconds())))
		h.logger.Info().Str("user", identity.Email).Msg("logged in")
		h.responder.WriteJSON(w, LoginResponse{Token: token, ExpiresAt: expires, User: identity})
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, h.sessionCookie("", time.Unix(0, 0), -1))
		h.responder.WriteJSON(w, messageResponse{Message: "Logged out"})
	}
}

// session returns the caller's identity
func (h authHandler) session() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, id auth.Identity) {
		h.responder.WriteJSON(w, id)
	}
}
