package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"

	"chorus/internal/logging"
)

// StreamAudio serves a track's audio file with full range-request support so
// players can seek. The Content-Type is the container MIME recorded at
// extraction, not a sniffed one.
func (h *Handlers) StreamAudio(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	track, ok := h.store.Current().GetTrack(id)
	if !ok {
		writeJSONError(w, "track not found", http.StatusNotFound)
		return
	}

	f, err := os.Open(track.FilePath)
	if err != nil {
		logging.Error("Failed to open audio file %s: %v", track.FilePath, err)
		writeJSONError(w, "audio file unavailable", http.StatusNotFound)
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn("Failed to close %s: %v", track.FilePath, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		logging.Error("Failed to stat audio file %s: %v", track.FilePath, err)
		writeJSONError(w, "audio file unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", track.MIME)
	w.Header().Set("Accept-Ranges", "bytes")

	http.ServeContent(w, r, filepath.Base(track.FilePath), info.ModTime(), f)
}
