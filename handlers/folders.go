package handlers

import "net/http"

type folderRequest struct {
	Name string `json:"name"`
}

type folderResponse struct {
	Name    string `json:"name"`
	Renamed bool   `json:"renamed,omitempty"`
}

// GET /api/folders
func (h *LibraryHandler) GetFolders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Library.Folders(r.Context()))
}

// GET /api/folders/suggestion
func (h *LibraryHandler) SuggestFolderName(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, folderResponse{Name: h.Library.SuggestFolderName(r.Context())})
}

// POST /api/folders
func (h *LibraryHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := decodeBody(r, &req); err != nil {
		h.Log.Debug().Err(err).Msg("CreateFolder: invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	name, err := h.Library.CreateFolder(r.Context(), req.Name)
	if err != nil {
		h.fail(w, r, "CreateFolder", err)
		return
	}
	writeJSON(w, http.StatusCreated, folderResponse{Name: name})
}

// PUT /api/folders/{folder}
func (h *LibraryHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	folder := r.PathValue("folder")

	var req folderRequest
	if err := decodeBody(r, &req); err != nil {
		h.Log.Debug().Err(err).Msg("RenameFolder: invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	name, renamed, err := h.Library.RenameFolder(r.Context(), folder, req.Name)
	if err != nil {
		h.fail(w, r, "RenameFolder", err)
		return
	}
	writeJSON(w, http.StatusOK, folderResponse{Name: name, Renamed: renamed})
}

// DELETE /api/folders/{folder}
func (h *LibraryHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	h.Library.DeleteFolder(r.Context(), r.PathValue("folder"))
	w.WriteHeader(http.StatusNoContent)
}
