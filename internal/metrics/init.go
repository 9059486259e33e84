package metrics

// InitializeMetrics pre-populates label combinations so every vector metric
// is exported from the first Prometheus scrape.
// Call this once at startup.
func InitializeMetrics() {
	for _, status := range []string{"success", "error"} {
		PlaylistsParsed.WithLabelValues(status)
	}
}
