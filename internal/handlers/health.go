package handlers

import (
	"net/http"
	"runtime"
	"time"

	"chorus/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusStarting = "starting"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status              string `json:"status"`
	Ready               bool   `json:"ready"`
	Version             string `json:"version"`
	Uptime              string `json:"uptime"`
	Rebuilding          bool   `json:"rebuilding"`
	LastRebuild         string `json:"lastRebuild,omitempty"`
	InitialRebuildError string `json:"initialRebuildError,omitempty"`

	// Catalog summary
	Albums       int `json:"albums"`
	Tracks       int `json:"tracks"`
	Playlists    int `json:"playlists"`
	SkippedFiles int `json:"skippedFiles"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	healthStatus := h.manager.GetHealthStatus()

	response := HealthResponse{
		Ready:        healthStatus.Ready,
		Version:      startup.Version,
		Uptime:       healthStatus.Uptime,
		Rebuilding:   healthStatus.Rebuilding,
		Albums:       healthStatus.Albums,
		Tracks:       healthStatus.Tracks,
		Playlists:    healthStatus.Playlists,
		SkippedFiles: healthStatus.SkippedFiles,
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	if healthStatus.Ready {
		response.Status = statusHealthy
	} else {
		response.Status = statusStarting
	}

	if !healthStatus.LastRebuild.IsZero() {
		response.LastRebuild = healthStatus.LastRebuild.Format(time.RFC3339)
	}

	if healthStatus.InitialRebuildError != "" {
		response.InitialRebuildError = healthStatus.InitialRebuildError
		response.Status = statusDegraded
	}

	w.Header().Set("Content-Type", "application/json")

	if !healthStatus.Ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if the server
// is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{"status": "alive"})
	}
}

// ReadinessCheck returns 200 only once the initial rebuild has published a
// catalog
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	if h.manager.IsReady() {
		writeJSONStatus(w, http.StatusOK, "ready")
	} else {
		writeJSONStatus(w, http.StatusServiceUnavailable, "not_ready")
	}
}
