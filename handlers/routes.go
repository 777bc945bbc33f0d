package handlers

import "net/http"

// Routes registers every library endpoint on a new mux.
func (h *LibraryHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Folders
	mux.HandleFunc("GET /api/folders", h.GetFolders)
	mux.HandleFunc("GET /api/folders/suggestion", h.SuggestFolderName)
	mux.HandleFunc("POST /api/folders", h.CreateFolder)
	mux.HandleFunc("PUT /api/folders/{folder}", h.RenameFolder)
	mux.HandleFunc("DELETE /api/folders/{folder}", h.DeleteFolder)

	// Sets
	mux.HandleFunc("GET /api/folders/{folder}/sets", h.GetSetsForFolder)
	mux.HandleFunc("POST /api/folders/{folder}/sets", h.GenerateSet)
	mux.HandleFunc("PUT /api/folders/{folder}/sets/{setID}", h.RenameSet)
	mux.HandleFunc("DELETE /api/folders/{folder}/sets/{setID}", h.DeleteSet)
	mux.HandleFunc("GET /api/sets/{setID}", h.GetSetByID)
	mux.HandleFunc("DELETE /api/sets", h.ClearSets)

	// Usage
	mux.HandleFunc("GET /api/usage", h.GetUsage)
	mux.HandleFunc("DELETE /api/usage", h.ResetUsage)

	return mux
}
