package handlers

import "net/http"

// GET /api/usage
func (h *LibraryHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Library.Usage(r.Context()))
}

// DELETE /api/usage
func (h *LibraryHandler) ResetUsage(w http.ResponseWriter, r *http.Request) {
	h.Library.ResetUsage(r.Context())
	writeJSON(w, http.StatusOK, h.Library.Usage(r.Context()))
}
