// Package handlers implements the HTTP serving surface: catalog queries,
// range-capable audio streaming, cover artifacts, health probes, the
// reindex trigger and the websocket update feed.
package handlers
