package handlers

import (
	"fmt"
	"net/http"

	"github.com/andrewpaige1/nodebook-local/library"
	"github.com/andrewpaige1/nodebook-local/models"
)

type generateRequest struct {
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

type renameSetRequest struct {
	Title string `json:"title"`
}

// GET /api/folders/{folder}/sets
func (h *LibraryHandler) GetSetsForFolder(w http.ResponseWriter, r *http.Request) {
	sets := h.Library.Sets(r.Context(), r.PathValue("folder"))
	if sets == nil {
		sets = []models.CardSet{}
	}
	writeJSON(w, http.StatusOK, sets)
}

// POST /api/folders/{folder}/sets
func (h *LibraryHandler) GenerateSet(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, &req); err != nil {
		h.Log.Debug().Err(err).Msg("GenerateSet: invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	set, err := h.Library.GenerateSet(r.Context(), library.GenerateRequest{
		Folder: r.PathValue("folder"),
		Text:   req.Text,
		Topic:  req.Topic,
	})
	if err != nil {
		h.fail(w, r, "GenerateSet", err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

// GET /api/sets/{setID}
func (h *LibraryHandler) GetSetByID(w http.ResponseWriter, r *http.Request) {
	setID := r.PathValue("setID")
	set, ok := h.Library.Set(r.Context(), models.SetID(setID))
	if !ok {
		http.Error(w, fmt.Sprintf("Set with ID %s not found", setID), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// PUT /api/folders/{folder}/sets/{setID}
func (h *LibraryHandler) RenameSet(w http.ResponseWriter, r *http.Request) {
	var req renameSetRequest
	if err := decodeBody(r, &req); err != nil {
		h.Log.Debug().Err(err).Msg("RenameSet: invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	set, err := h.Library.RenameSet(r.Context(), r.PathValue("folder"), models.SetID(r.PathValue("setID")), req.Title)
	if err != nil {
		h.fail(w, r, "RenameSet", err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// DELETE /api/folders/{folder}/sets/{setID}
func (h *LibraryHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	h.Library.DeleteSet(r.Context(), r.PathValue("folder"), models.SetID(r.PathValue("setID")))
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/sets
func (h *LibraryHandler) ClearSets(w http.ResponseWriter, r *http.Request) {
	if !h.AllowClear {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	h.Library.ClearAll(r.Context())
	h.Log.Warn().Msg("Cleared every flashcard set")
	w.WriteHeader(http.StatusNoContent)
}
