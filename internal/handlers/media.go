package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetMedia returns the entire published catalog.
func (h *Handlers) GetMedia(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, h.store.Current())
}

// GetAlbum returns one album by id.
func (h *Handlers) GetAlbum(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	album, ok := h.store.Current().GetAlbum(id)
	if !ok {
		writeJSONError(w, "album not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, album)
}

// GetTrack returns one track by id, searching albums then playlists.
func (h *Handlers) GetTrack(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	track, ok := h.store.Current().GetTrack(id)
	if !ok {
		writeJSONError(w, "track not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, track)
}

// GetPlaylists returns all playlists.
func (h *Handlers) GetPlaylists(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, h.store.Current().Playlists)
}

// GetPlaylist returns one playlist by id.
func (h *Handlers) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	pl, ok := h.store.Current().GetPlaylist(id)
	if !ok {
		writeJSONError(w, "playlist not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, pl)
}

// GetDiagnostics returns the files skipped by the most recent rebuild.
func (h *Handlers) GetDiagnostics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, h.manager.Diagnostics())
}

// TriggerReindex kicks off an asynchronous catalog rebuild. Always 202: a
// rebuild already in progress absorbs the request.
func (h *Handlers) TriggerReindex(w http.ResponseWriter, _ *http.Request) {
	h.manager.TriggerRebuild()

	writeJSONStatus(w, http.StatusAccepted, "rebuild triggered")
}
