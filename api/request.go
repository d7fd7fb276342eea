package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
)

const maxJSONBodyBytes = 1 << 20

// decodeJSON reads a single JSON document from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return errs.NewMaxBodySizeExceededError(maxErr.Limit)
	case errors.Is(err, io.EOF):
		return errs.NewMalformedPayloadError("JSON", errors.New("empty request body"))
	default:
		return errs.NewMalformedPayloadError("JSON", err)
	}
}

// pathID parses the {id} URL parameter. Ids that cannot exist are reported
// the same way as ids that do not.
func pathID(r *http.Request, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errs.NewNotFound(entity)
	}
	return id, nil
}

func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

// pageFromQuery reads page and limit; bad values fall back to defaults.
func pageFromQuery(r *http.Request) database.Page {
	return database.Page{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}.Normalize()
}

// queryBool returns nil unless key is exactly "true" or "false".
func queryBool(r *http.Request, key string) *bool {
	switch r.URL.Query().Get(key) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
