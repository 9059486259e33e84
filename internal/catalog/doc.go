// Package catalog defines the music collection data model (tracks, albums,
// playlists) and the aggregation that groups extracted tracks into albums.
//
// Album identity is the md5 digest of the album name concatenated with the
// primary artist (or the unknown sentinel), so grouping is deterministic
// across rebuilds and independent of enumeration order. A Catalog value is
// immutable once published; the incremental Add/Remove operations exist for
// callers that maintain their own unpublished working copy.
package catalog
