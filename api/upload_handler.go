package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
)

const (
	maxUploadBytes = 5 << 20
	// room for the multipart framing around the file
	uploadOverheadBytes = 1 << 20
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/svg+xml", "image/avif"}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  services.Uploader
}

// newUploadHandler accepts a nil uploader; uploads then answer 503.
func newUploadHandler(uploader services.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()
	return uploadHandler{responder: NewResponder(logger), logger: logger, uploader: uploader}
}

type UploadResponse struct {
	URL string `json:"url"`
}

func imageTypeAllowed(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, t := range allowedImageTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}

// upload stores the multipart "file" field and returns its public URL
func (h uploadHandler) upload() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, actor auth.Identity) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewServiceUnavailableError(services.ErrStorageNotConfigured.Error()))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+uploadOverheadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadBytes))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingFieldsError([]errs.FieldError{{Field: "file", Message: "file is required"}}))
			return
		}
		defer file.Close()

		if header.Size > maxUploadBytes {
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadBytes))
			return
		}
		contentType := header.Header.Get("Content-Type")
		if !imageTypeAllowed(contentType) {
			h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(contentType, allowedImageTypes))
			return
		}

		stored, err := h.uploader.Upload(r.Context(), header.Filename, contentType, header.Size, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("upload file", err))
			return
		}

		h.logger.Info().Str("actor", actor.Email).Str("key", stored.Key).Int64("size", stored.Size).Msg("file uploaded")
		h.responder.WriteJSON(w, UploadResponse{URL: stored.URL})
	}
}
