// Package main provides the entry point for the Chorus music server.
//
// Chorus is a self-hosted music catalog and streaming server. It scans a
// music directory, extracts tags, cover art and synced lyrics into an
// in-memory catalog, and serves the catalog plus range-capable audio
// streaming over HTTP.
//
// # Application Lifecycle
//
//  1. Configuration Loading: Reads environment variables and validates the
//     music and cache directories
//  2. Component Initialization:
//     - Extractor: prepares the cover artifact cache
//     - Scanner/Resolver: fingerprint-based change detection
//     - Store: atomic catalog snapshot holder
//     - Notify Hub: websocket fan-out for catalog updates
//     - Library Manager: rebuild orchestration
//  3. Initial Rebuild: started in the background; readiness flips once the
//     first catalog is published
//  4. HTTP Server Setup: routes, CORS, metrics and W3C access-log middleware
//  5. Graceful Shutdown: handles SIGINT/SIGTERM, drains both servers
//
// # HTTP Servers
//
// The application runs two HTTP servers:
//
//  1. Main Server (default port 8080): catalog API, audio streaming, cover
//     serving, health probes, websocket updates
//  2. Metrics Server (default port 9090, optional): Prometheus /metrics
//
// # Environment Variables
//
//   - MUSIC_DIR: root of the music collection (default: /music)
//   - CACHE_DIR: fingerprint and cover cache (default: /cache)
//   - PORT: main HTTP server port (default: 8080)
//   - METRICS_PORT: metrics server port (default: 9090)
//   - METRICS_ENABLED: enable metrics server (default: true)
//   - LOG_HEALTH_CHECKS: log health probe requests (default: true)
//   - EXTRACT_WORKERS: override extraction worker pool size
//   - LOG_LEVEL / DEBUG: logging verbosity
package main
