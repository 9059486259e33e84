/*
Package startup handles application initialization: environment-driven
configuration, directory validation, and structured startup/shutdown logging.

Configuration comes from environment variables:

	MUSIC_DIR          root of the music collection (default /music)
	CACHE_DIR          fingerprint and cover artifact cache (default /cache)
	PORT               application HTTP port (default 8080)
	METRICS_PORT       Prometheus metrics port (default 9090)
	METRICS_ENABLED    serve /metrics (default true)
	LOG_HEALTH_CHECKS  log health probe requests (default true)
	EXTRACT_WORKERS    override extraction worker pool size
	LOG_LEVEL / DEBUG  logging verbosity

Version, Commit and BuildTime are injected at build time via -ldflags.
*/
package startup
