package library

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"chorus/internal/catalog"
	"chorus/internal/logging"
	"chorus/internal/metrics"
	"chorus/internal/notify"
	"chorus/internal/playlist"
	"chorus/internal/scanner"
	"chorus/internal/store"
	"chorus/internal/workers"
)

// Extraction workers are capped regardless of CPU count; tag reads hit the
// disk hard and past this point more workers just queue on I/O.
const maxExtractWorkers = 16

// ScanResolver yields the media candidates for a rebuild.
type ScanResolver interface {
	Resolve() (*scanner.Scan, bool, error)
}

// TrackExtractor resolves one audio file into a catalog track.
type TrackExtractor interface {
	TrackFromFile(path string) (catalog.Track, error)
}

// Diagnostic records one file that a rebuild had to skip.
type Diagnostic struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// Manager owns the rebuild lifecycle: it resolves the candidate file set,
// extracts tracks in parallel, assembles the catalog and publishes it.
// Rebuilds are serialized; a trigger while one is running is a no-op.
type Manager struct {
	resolver  ScanResolver
	extractor TrackExtractor
	store     *store.Store
	hub       notify.Hub

	rebuildMu              sync.Mutex
	isRebuilding           bool
	lastRebuildTime        time.Time
	initialRebuildComplete bool
	initialRebuildError    error
	startTime              time.Time

	diagMu      sync.RWMutex
	diagnostics []Diagnostic
}

// New creates a Manager. The hub may be nil when update notifications are
// not wanted (tests, one-shot builds).
func New(resolver ScanResolver, extractor TrackExtractor, st *store.Store, hub notify.Hub) *Manager {
	return &Manager{
		resolver:  resolver,
		extractor: extractor,
		store:     st,
		hub:       hub,
		startTime: time.Now(),
	}
}

// Start kicks off the initial rebuild in the background.
func (m *Manager) Start() {
	go func() {
		logging.Info("Starting initial catalog rebuild in background...")
		if err := m.Rebuild(); err != nil {
			logging.Error("Initial rebuild error: %v", err)
			m.rebuildMu.Lock()
			m.initialRebuildError = err
			m.rebuildMu.Unlock()
		}
	}()
}

// TriggerRebuild requests an asynchronous rebuild. If one is already running
// the request is absorbed by the in-progress run.
func (m *Manager) TriggerRebuild() {
	go func() {
		if err := m.Rebuild(); err != nil {
			logging.Error("Triggered rebuild failed: %v", err)
		}
	}()
}

// Rebuild runs one full rebuild cycle and publishes the result. Returns nil
// without doing anything when a rebuild is already in progress.
func (m *Manager) Rebuild() error {
	if !m.tryStartRebuild() {
		logging.Info("Rebuild already in progress, skipping...")
		return nil
	}
	defer m.finishRebuild()

	metrics.RebuildIsRunning.Set(1)
	defer metrics.RebuildIsRunning.Set(0)
	metrics.RebuildRunsTotal.Inc()

	start := time.Now()
	logging.Info("Starting catalog rebuild...")

	scan, cached, err := m.resolver.Resolve()
	if err != nil {
		metrics.RebuildErrors.Inc()
		return fmt.Errorf("failed to resolve media candidates: %w", err)
	}
	if cached {
		logging.Debug("Candidate list reused from fingerprint cache (%d audio, %d playlists)",
			len(scan.Audio), len(scan.Playlists))
	}

	tracks, diags := m.extractAll(scan.Audio)

	// Parallel extraction finishes in arbitrary order; pin it down so two
	// rebuilds over the same files publish identical catalogs.
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].FilePath < tracks[j].FilePath })

	playlists := make([]catalog.Playlist, 0, len(scan.Playlists))
	for _, path := range scan.Playlists {
		pl, err := playlist.Parse(path, m.extractor)
		if err != nil {
			logging.Warn("Skipping playlist %s: %v", path, err)
			diags = append(diags, Diagnostic{Path: path, Err: err.Error()})
			continue
		}
		playlists = append(playlists, pl)
	}
	sort.Slice(playlists, func(i, j int) bool { return playlists[i].ID < playlists[j].ID })

	snapshot := catalog.New(tracks, playlists)
	m.store.Replace(snapshot)
	if m.hub != nil {
		m.hub.BroadcastCatalog(snapshot)
	}

	m.setDiagnostics(diags)

	metrics.CatalogAlbums.Set(float64(len(snapshot.Albums)))
	metrics.CatalogTracks.Set(float64(snapshot.TrackCount()))
	metrics.CatalogPlaylists.Set(float64(len(snapshot.Playlists)))
	metrics.RebuildLastRunTimestamp.Set(float64(time.Now().Unix()))
	metrics.RebuildLastRunDuration.Set(time.Since(start).Seconds())

	m.rebuildMu.Lock()
	m.lastRebuildTime = time.Now()
	m.rebuildMu.Unlock()

	logging.Info("Catalog rebuild complete in %v: %d albums, %d tracks, %d playlists (%d files skipped)",
		time.Since(start).Round(time.Millisecond), len(snapshot.Albums), len(tracks), len(playlists), len(diags))

	return nil
}

// extractAll fans audio files out to a bounded worker pool. A file whose
// extraction fails is recorded and skipped, never fatal to the rebuild.
func (m *Manager) extractAll(paths []string) ([]catalog.Track, []Diagnostic) {
	numWorkers := workers.ForMixed(maxExtractWorkers)
	logging.Debug("Extracting %d files with %d workers", len(paths), numWorkers)

	jobs := make(chan string)
	tracks := make([]catalog.Track, 0, len(paths))
	var diags []Diagnostic
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				track, err := m.extractor.TrackFromFile(path)
				if err != nil {
					metrics.ExtractionFailures.Inc()
					logging.Warn("Skipping %s: %v", path, err)
					mu.Lock()
					diags = append(diags, Diagnostic{Path: path, Err: err.Error()})
					mu.Unlock()
					continue
				}
				mu.Lock()
				tracks = append(tracks, track)
				mu.Unlock()
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	return tracks, diags
}

// TrackFromFile resolves one audio file into a catalog track.
func (m *Manager) TrackFromFile(path string) (catalog.Track, error) {
	return m.extractor.TrackFromFile(path)
}

// PlaylistFromFile parses one playlist file. Together with TrackFromFile
// this makes the Manager a catalog.MediaSource, so a single file can be
// merged into a snapshot without a full rebuild.
func (m *Manager) PlaylistFromFile(path string) (catalog.Playlist, error) {
	return playlist.Parse(path, m.extractor)
}

// tryStartRebuild attempts to start a rebuild, returns false if one is
// already in progress.
func (m *Manager) tryStartRebuild() bool {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	if m.isRebuilding {
		return false
	}
	m.isRebuilding = true
	return true
}

// finishRebuild marks the rebuild as complete.
func (m *Manager) finishRebuild() {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	m.isRebuilding = false
	m.initialRebuildComplete = true
}

// IsReady reports whether the initial rebuild has finished. Used by the
// readiness probe so traffic is only admitted once a catalog exists.
func (m *Manager) IsReady() bool {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()
	return m.initialRebuildComplete
}

func (m *Manager) setDiagnostics(diags []Diagnostic) {
	m.diagMu.Lock()
	defer m.diagMu.Unlock()
	m.diagnostics = diags
}

// Diagnostics returns the files skipped by the most recent rebuild.
func (m *Manager) Diagnostics() []Diagnostic {
	m.diagMu.RLock()
	defer m.diagMu.RUnlock()

	out := make([]Diagnostic, len(m.diagnostics))
	copy(out, m.diagnostics)
	return out
}

// HealthStatus contains health check information.
type HealthStatus struct {
	Ready               bool      `json:"ready"`
	Rebuilding          bool      `json:"rebuilding"`
	StartTime           time.Time `json:"startTime"`
	Uptime              string    `json:"uptime"`
	LastRebuild         time.Time `json:"lastRebuild,omitempty"`
	Albums              int       `json:"albums"`
	Tracks              int       `json:"tracks"`
	Playlists           int       `json:"playlists"`
	SkippedFiles        int       `json:"skippedFiles"`
	InitialRebuildError string    `json:"initialRebuildError,omitempty"`
}

// GetHealthStatus returns detailed health information.
func (m *Manager) GetHealthStatus() HealthStatus {
	m.rebuildMu.Lock()
	status := HealthStatus{
		Ready:       m.initialRebuildComplete,
		Rebuilding:  m.isRebuilding,
		StartTime:   m.startTime,
		Uptime:      time.Since(m.startTime).String(),
		LastRebuild: m.lastRebuildTime,
	}
	if m.initialRebuildError != nil {
		status.InitialRebuildError = m.initialRebuildError.Error()
	}
	m.rebuildMu.Unlock()

	current := m.store.Current()
	status.Albums = len(current.Albums)
	status.Tracks = current.TrackCount()
	status.Playlists = len(current.Playlists)

	m.diagMu.RLock()
	status.SkippedFiles = len(m.diagnostics)
	m.diagMu.RUnlock()

	return status
}
