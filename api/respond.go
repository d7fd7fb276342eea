package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	const maxResponseSize = 10 * 1024 * 1024 // 10MB
	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// errorBody translates err into a status and client-safe body. Anything
// that is not a non-500 *errs.ApiErr is logged and reported generically.
func (r Responder) errorBody(err error) (int, ErrorResponse) {
	var apiErr *errs.ApiErr
	errors.As(err, &apiErr)

	status := errs.StatusCode(err)
	if status == http.StatusInternalServerError {
		event := r.logger.Error()
		if apiErr != nil {
			event = event.Str("fullError", apiErr.GetFullError())
		} else {
			event = event.Err(err)
		}
		event.Msg("internal error")
		return http.StatusInternalServerError, ErrorResponse{Error: errs.ErrInternal.Error()}
	}

	body := ErrorResponse{
		Error: apiErr.Message(),
		Field: apiErr.Field,
	}
	if apiErr.Details != nil && apiErr.Details != "" {
		body.Details = apiErr.Details
	}

	switch {
	case errs.IsMissingRequiredFieldError(err), errs.IsValidationError(err), errs.IsAlreadyExists(err):
		r.logger.Debug().Str("field", apiErr.Field).Int("status", status).Msg("input rejected")
	case apiErr.Cause != nil:
		r.logger.Debug().Str("fullError", apiErr.GetFullError()).Int("status", status).Msg("request rejected")
	}
	return status, body
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	status, body := r.errorBody(err)
	r.WriteJSONStatus(w, status, body)
}

// WriteEnvelopeError writes the {success:false,...} form used by the
// contact endpoints.
func (r Responder) WriteEnvelopeError(w http.ResponseWriter, err error) {
	status, body := r.errorBody(err)
	failed := false
	body.Success = &failed
	r.WriteJSONStatus(w, status, body)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
