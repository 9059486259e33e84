package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chorus_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chorus_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chorus_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Rebuild metrics
var (
	RebuildRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_rebuild_runs_total",
			Help: "Total number of catalog rebuilds",
		},
	)

	RebuildErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_rebuild_errors_total",
			Help: "Total number of failed catalog rebuilds",
		},
	)

	RebuildIsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chorus_rebuild_running",
			Help: "Whether a catalog rebuild is currently running (1 = running, 0 = idle)",
		},
	)

	RebuildLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chorus_rebuild_last_run_timestamp",
			Help: "Timestamp of the last completed catalog rebuild",
		},
	)

	RebuildLastRunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chorus_rebuild_last_run_duration_seconds",
			Help: "Duration of the last completed catalog rebuild in seconds",
		},
	)

	CatalogAlbums = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chorus_catalog_albums",
			Help: "Number of albums in the published catalog",
		},
	)

	CatalogTracks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chorus_catalog_tracks",
			Help: "Number of tracks in the published catalog",
		},
	)

	CatalogPlaylists = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chorus_catalog_playlists",
			Help: "Number of playlists in the published catalog",
		},
	)
)

// Scanner metrics
var (
	FingerprintCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_fingerprint_cache_hits_total",
			Help: "Times the persisted file list was reused without a full scan",
		},
	)

	FingerprintCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_fingerprint_cache_misses_total",
			Help: "Times the music root had to be re-enumerated",
		},
	)

	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chorus_scan_duration_seconds",
			Help:    "Directory scan duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
	)
)

// Extraction metrics
var (
	TracksExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_tracks_extracted_total",
			Help: "Total number of tracks successfully extracted",
		},
	)

	ExtractionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_extraction_failures_total",
			Help: "Total number of audio files whose extraction failed and was skipped",
		},
	)

	PlaylistsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chorus_playlists_parsed_total",
			Help: "Total number of playlist files parsed",
		},
		[]string{"status"},
	)

	CoverCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_cover_cache_hits_total",
			Help: "Cover artifact cache hits (decode and color extraction skipped)",
		},
	)

	CoverCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_cover_cache_misses_total",
			Help: "Cover artifact cache misses (cover written, color extracted)",
		},
	)

	ColorExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chorus_color_extraction_duration_seconds",
			Help:    "Cover decode and dominant color extraction duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
	)
)

// Notifier metrics
var (
	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chorus_websocket_clients",
			Help: "Number of connected update-notification subscribers",
		},
	)

	WebsocketBroadcasts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_websocket_broadcasts_total",
			Help: "Total number of catalog update broadcasts",
		},
	)

	WebsocketDroppedClients = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chorus_websocket_dropped_clients_total",
			Help: "Subscribers dropped because their send buffer was full",
		},
	)
)
