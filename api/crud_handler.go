package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
)

// crudRepo is what every admin-managed entity repository provides.
type crudRepo[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Add(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// crudHandler serves list/get/create/update/delete for one entity under
// /api/admin. In is the request body type.
type crudHandler[T any, In recordInput[T]] struct {
	entity    string
	responder Responder
	logger    zerolog.Logger
	repo      crudRepo[T]
	validator *requestValidator

	// beforeWrite runs after the body is applied and before it is stored.
	// id is uuid.Nil on create.
	beforeWrite func(ctx context.Context, record *T, id uuid.UUID) error
}

func newCRUDHandler[T any, In recordInput[T]](handlerName, entity string, repo crudRepo[T], validator *requestValidator) crudHandler[T, In] {
	logger := log.With().Str("handlerName", handlerName).Logger()
	return crudHandler[T, In]{
		entity:    entity,
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		validator: validator,
	}
}

// list returns every record in the entity's canonical order
func (h crudHandler[T, In]) list() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
		records, err := h.repo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.entity, err))
			return
		}
		h.responder.WriteJSON(w, records)
	}
}

func (h crudHandler[T, In]) get() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
		id, err := pathID(r, h.entity)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		record, err := h.repo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.entity, err))
			return
		}
		h.responder.WriteJSON(w, record)
	}
}

// decode reads, validates and applies the request body onto record
func (h crudHandler[T, In]) decode(w http.ResponseWriter, r *http.Request, record *T) error {
	var in In
	if err := decodeJSON(w, r, &in); err != nil {
		return err
	}
	if err := h.validator.Validate(in); err != nil {
		return err
	}
	return in.apply(record)
}

func (h crudHandler[T, In]) create() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, actor auth.Identity) {
		record := new(T)
		if err := h.decode(w, r, record); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.beforeWrite != nil {
			if err := h.beforeWrite(r.Context(), record, uuid.Nil); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		if err := h.repo.Add(r.Context(), record); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", h.entity, err))
			return
		}

		h.logger.Info().Str("actor", actor.Email).Msgf("%s created", h.entity)
		h.responder.WriteJSONStatus(w, http.StatusCreated, record)
	}
}

func (h crudHandler[T, In]) update() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, actor auth.Identity) {
		id, err := pathID(r, h.entity)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		record, err := h.repo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.entity, err))
			return
		}

		if err := h.decode(w, r, record); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.beforeWrite != nil {
			if err := h.beforeWrite(r.Context(), record, id); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		if err := h.repo.Update(r.Context(), record); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", h.entity, err))
			return
		}

		h.logger.Info().Str("actor", actor.Email).Str("id", id.String()).Msgf("%s updated", h.entity)
		h.responder.WriteJSON(w, record)
	}
}

func (h crudHandler[T, In]) remove() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, actor auth.Identity) {
		id, err := pathID(r, h.entity)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", h.entity, err))
			return
		}

		h.logger.Info().Str("actor", actor.Email).Str("id", id.String()).Msgf("%s deleted", h.entity)
		h.responder.WriteJSON(w, messageResponse{Message: h.entity + " deleted successfully"})
	}
}

// crudHandlerSet lets routes mount any crudHandler regardless of its types.
type crudHandlerSet interface {
	list() adminHandlerFunc
	get() adminHandlerFunc
	create() adminHandlerFunc
	update() adminHandlerFunc
	remove() adminHandlerFunc
}
