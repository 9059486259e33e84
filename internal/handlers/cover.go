package handlers

import (
	"bytes"
	"encoding/base64"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gorilla/mux"

	"chorus/internal/logging"
)

// Covers never change for a given album id, so clients may cache them hard.
const coverCacheControl = "public, max-age=2419200, immutable"

// coverHandlePattern is the only shape of file the cover cache produces:
// a 32-hex album id plus an image extension.
var coverHandlePattern = regexp.MustCompile(`^[0-9a-f]{32}\.[a-z0-9]{2,5}$`)

// defaultCover is served when an album has no materialized artwork.
var defaultCover = func() []byte {
	// 1x1 transparent PNG.
	data, err := base64.StdEncoding.DecodeString(
		"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")
	if err != nil {
		panic("default cover corrupted: " + err.Error())
	}
	return data
}()

var startupTime = time.Now()

// GetCover serves a materialized cover artifact by handle
// ({albumID}{ext}). Unknown or malformed handles fall back to the default
// cover rather than a 404, so clients can point an <img> at this endpoint
// unconditionally.
func (h *Handlers) GetCover(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]

	if !coverHandlePattern.MatchString(handle) {
		h.serveDefaultCover(w, r)
		return
	}

	path := filepath.Join(h.coversDir, handle)
	f, err := os.Open(path)
	if err != nil {
		h.serveDefaultCover(w, r)
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn("Failed to close cover %s: %v", path, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		h.serveDefaultCover(w, r)
		return
	}

	if ct := mime.TypeByExtension(filepath.Ext(handle)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", coverCacheControl)

	http.ServeContent(w, r, handle, info.ModTime(), f)
}

func (h *Handlers) serveDefaultCover(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", coverCacheControl)
	http.ServeContent(w, r, "default.png", startupTime, bytes.NewReader(defaultCover))
}
