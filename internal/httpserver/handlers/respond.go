package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

type errorBody struct {
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Message: message})
}

// decodeJSON rejects unknown fields so typos surface as a 400 instead of
// silently dropping data.
func decodeJSON(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return errors.New("request body required")
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

// idParam parses the {id} route segment; ok is false for anything that is
// not a positive integer.
func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondStoreError maps the store error taxonomy onto HTTP codes:
// ValidationError and ConflictError become 400, ErrNotFound 404, anything
// else a 500 with a generic message so internals never leak to the client.
func respondStoreError(w http.ResponseWriter, lg *zap.SugaredLogger, err error, fallback string) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		respondJSON(w, http.StatusBadRequest, errorBody{Message: "invalid payload", Errors: ve.Fields})
		return
	}
	var ce *store.ConflictError
	if errors.As(err, &ce) {
		respondJSON(w, http.StatusBadRequest, errorBody{
			Message: ce.Error(),
			Errors:  []models.FieldError{{Field: ce.Field, Message: "already exists"}},
		})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "not found")
		return
	}
	lg.Errorw(fallback, "error", err)
	respondMessage(w, http.StatusInternalServerError, fallback)
}
