package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"chorus/internal/library"
	"chorus/internal/notify"
	"chorus/internal/store"
)

// Handlers bundles the serving surface over the published catalog.
type Handlers struct {
	store     *store.Store
	manager   *library.Manager
	hub       notify.Hub
	coversDir string
}

// New creates the handler set. coversDir is where the extractor materialized
// cover artifacts.
func New(st *store.Store, manager *library.Manager, hub notify.Hub, coversDir string) *Handlers {
	return &Handlers{
		store:     st,
		manager:   manager,
		hub:       hub,
		coversDir: coversDir,
	}
}

// Router builds the full route table.
func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()

	// Health endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/livez", h.LivenessCheck).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods(http.MethodGet)
	r.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet)

	// Catalog API
	r.HandleFunc("/api/media", h.GetMedia).Methods(http.MethodGet)
	r.HandleFunc("/api/album/{id}", h.GetAlbum).Methods(http.MethodGet)
	r.HandleFunc("/api/track/{id}", h.GetTrack).Methods(http.MethodGet)
	r.HandleFunc("/api/audio/{id}", h.StreamAudio).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/api/cover/{handle}", h.GetCover).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/api/playlists", h.GetPlaylists).Methods(http.MethodGet)
	r.HandleFunc("/api/playlist/{id}", h.GetPlaylist).Methods(http.MethodGet)
	r.HandleFunc("/api/diagnostics", h.GetDiagnostics).Methods(http.MethodGet)
	r.HandleFunc("/api/reindex", h.TriggerReindex).Methods(http.MethodPost, http.MethodPut)
	r.HandleFunc("/api/ws", h.ServeWebsocket).Methods(http.MethodGet)

	// Ping
	r.HandleFunc("/", h.Ping).Methods(http.MethodGet)

	return r
}
