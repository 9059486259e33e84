// Package extractor reads audio tags, stream properties, embedded cover art
// and sidecar lyrics, producing the catalog tracks that rebuilds aggregate
// into albums.
package extractor
