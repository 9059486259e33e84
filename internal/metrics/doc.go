// Package metrics defines the Prometheus instrumentation for the chorus
// daemon: HTTP serving, catalog rebuilds, scanning and fingerprinting,
// metadata extraction, the cover artifact cache, and the update notifier.
//
// Metrics are registered with promauto at package load and exposed by the
// metrics listener started from main (METRICS_PORT).
package metrics
