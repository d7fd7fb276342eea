package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rpupo63/portfolio-backend/shaping"
)

const notifyTimeout = 30 * time.Second

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	validator   *requestValidator
	notifier    services.ContactNotifier
	now         func() time.Time
}

func newContactHandler(contactRepo *database.ContactRepo, validator *requestValidator, notifier services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		validator:   validator,
		notifier:    notifier,
		now:         time.Now,
	}
}

type contactReceipt struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// submit stores a public contact form message. It is the only way contacts
// are created and they always start unread.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in contactInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}
		if err := h.validator.ValidateSchema(in); err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}

		contact := in.contact()
		if err := h.contactRepo.Add(r.Context(), contact); err != nil {
			h.responder.WriteEnvelopeError(w, wrapDatabaseError("create", "Contact", err))
			return
		}

		h.logger.Info().Str("id", contact.ID.String()).Msg("contact received")
		h.notify(r.Context(), contact)

		h.responder.WriteJSONStatus(w, http.StatusCreated, envelope{
			Success: true,
			Message: "Message sent successfully",
			Data:    contactReceipt{ID: contact.ID, CreatedAt: contact.CreatedAt},
		})
	}
}

// notify tells the site owner about a new contact in the background.
// Failures are logged only.
func (h contactHandler) notify(ctx context.Context, contact *models.Contact) {
	if h.notifier == nil {
		return
	}
	if multi, ok := h.notifier.(services.MultiNotifier); ok && len(multi) == 0 {
		return
	}

	msg := services.ContactMessage{
		ID:         contact.ID.String(),
		Name:       contact.Name,
		Email:      contact.Email,
		Subject:    shaping.Deref(contact.Subject),
		Message:    contact.Message,
		ReceivedAt: contact.CreatedAt,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		err := h.notifier.NotifyContact(ctx, msg)
		switch {
		case err == nil:
		case errs.IsRateLimited(err):
			h.logger.Warn().Err(err).Str("id", msg.ID).Msg("contact notification rate limited")
		default:
			h.logger.Error().Err(err).Str("id", msg.ID).Msg("contact notification failed")
		}
	}()
}

// list pages through the inbox, newest first. read=true|false filters.
func (h contactHandler) list() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
		q := database.ContactQuery{Page: pageFromQuery(r), Read: queryBool(r, "read")}

		contacts, total, err := h.contactRepo.List(r.Context(), q)
		if err != nil {
			h.responder.WriteEnvelopeError(w, wrapDatabaseError("list", "contacts", err))
			return
		}

		pagination := newPagination(q.Page, total)
		h.responder.WriteJSON(w, envelope{Success: true, Data: contacts, Pagination: &pagination})
	}
}

func (h contactHandler) stats() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
		stats, err := h.contactRepo.Stats(r.Context(), database.MonthStart(h.now()))
		if err != nil {
			h.responder.WriteEnvelopeError(w, wrapDatabaseError("count", "contacts", err))
			return
		}
		h.responder.WriteJSON(w, envelope{Success: true, Data: stats})
	}
}

func (h contactHandler) get() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
		id, err := pathID(r, "Contact")
		if err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteEnvelopeError(w, wrapDatabaseError("find", "Contact", err))
			return
		}
		h.responder.WriteJSON(w, envelope{Success: true, Data: contact})
	}
}

type readStatusInput struct {
	Read *bool `json:"read"`
}

// markRead flips a contact between read and unread
func (h contactHandler) markRead() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, actor auth.Identity) {
		id, err := pathID(r, "Contact")
		if err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}

		var in readStatusInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}
		if in.Read == nil {
			h.responder.WriteEnvelopeError(w, errs.NewBadRequestError("Invalid read status"))
			return
		}

		contact, err := h.contactRepo.SetRead(r.Context(), id, *in.Read)
		if err != nil {
			h.responder.WriteEnvelopeError(w, wrapDatabaseError("update", "Contact", err))
			return
		}

		status := "unread"
		if contact.Read {
			status = "read"
		}
		h.logger.Info().Str("actor", actor.Email).Str("id", id.String()).Msgf("contact marked %s", status)
		h.responder.WriteJSON(w, envelope{
			Success: true,
			Message: "Contact marked as " + status,
			Data:    contact,
		})
	}
}

func (h contactHandler) remove() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, actor auth.Identity) {
		id, err := pathID(r, "Contact")
		if err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}

		if err := h.contactRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteEnvelopeError(w, wrapDatabaseError("delete", "Contact", err))
			return
		}

		h.logger.Info().Str("actor", actor.Email).Str("id", id.String()).Msg("contact deleted")
		h.responder.WriteJSON(w, envelope{Success: true, Message: "Contact deleted successfully"})
	}
}
