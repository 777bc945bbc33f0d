package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/nodebook-local/library"
	"github.com/andrewpaige1/nodebook-local/utils"
)

// LibraryHandler serves the flashcard library over HTTP.
type LibraryHandler struct {
	Library *library.Library
	Log     zerolog.Logger

	// AllowClear enables DELETE /api/sets, which wipes every set.
	AllowClear bool
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// statusFor maps library errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, library.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, library.ErrSetNotFound), errors.Is(err, library.ErrFolderNotFound):
		return http.StatusNotFound
	case errors.Is(err, library.ErrGenerationInProgress):
		return http.StatusConflict
	case errors.Is(err, library.ErrNothingGenerated):
		return http.StatusUnprocessableEntity
	case errors.Is(err, library.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (h *LibraryHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	logger := h.Log.With().Str("op", op).Logger()
	if subject, ok := utils.GetSubject(r); ok {
		logger = logger.With().Str("device", subject).Logger()
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Msg("Request failed")
		http.Error(w, "Internal server error", status)
		return
	}
	logger.Debug().Err(err).Int("status", status).Msg("Request rejected")
	http.Error(w, err.Error(), status)
}
