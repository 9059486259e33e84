/*
Package library orchestrates catalog rebuilds.

A rebuild resolves the candidate file set through the fingerprint cache,
extracts tracks on a bounded worker pool, parses playlists, assembles a fresh
catalog snapshot and publishes it atomically. Files that fail extraction are
recorded as diagnostics and skipped rather than failing the run. Rebuilds are
serialized: a trigger arriving while one runs is absorbed.
*/
package library
