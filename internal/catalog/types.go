package catalog

import (
	"crypto/md5" //nolint:gosec // MD5 used as an aggregation key, not for security
	"fmt"
	"time"
)

// Unknown is the sentinel stored when a tag has no title, album or artist.
const Unknown = "@UNKNOWN@"

// LyricLine is one timestamped line of synced lyrics.
type LyricLine struct {
	// StartTime is the offset from the beginning of the track, in milliseconds.
	StartTime int64  `json:"startTime"`
	Text      string `json:"text"`
}

// Color is an RGB triple extracted from a cover image.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// lightLuminanceThreshold separates light covers from dark ones.
// Classification is strictly greater-than.
const lightLuminanceThreshold = 180.0

// IsLight reports whether the color reads as light against dark text,
// using the ITU-R BT.709 luma coefficients.
func (c Color) IsLight() bool {
	luminance := 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
	return luminance > lightLuminanceThreshold
}

// Track is one audio file in the catalog.
type Track struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Artists     []string    `json:"artists"`
	TrackNumber int         `json:"trackNumber"`
	Album       string      `json:"album"`
	AlbumArtist string      `json:"albumArtist,omitempty"`
	AlbumID     string      `json:"albumId"`
	AlbumYear   int         `json:"albumYear,omitempty"`
	CoverExt    string      `json:"coverExt,omitempty"`
	MIME        string      `json:"mime"`
	Lyrics      []LyricLine `json:"lyrics"`
	Color       *Color      `json:"color,omitempty"`
	IsLight     *bool       `json:"isLight,omitempty"`
	FilePath    string      `json:"filePath"`
	Duration    int64       `json:"duration"`
	Bitrate     int         `json:"bitrate"`
	// CreatedAt is the file's modification time. True creation time is
	// not portably available, so mtime stands in for it.
	CreatedAt time.Time `json:"createdAt"`
}

// PrimaryArtist returns the first artist, or the unknown sentinel when the
// artist list is empty.
func (t *Track) PrimaryArtist() string {
	if len(t.Artists) == 0 {
		return Unknown
	}
	return t.Artists[0]
}

// Album groups the tracks sharing an album identity.
type Album struct {
	Name   string  `json:"name"`
	Artist string  `json:"artist"`
	Tracks []Track `json:"tracks"`
	Year   int     `json:"year,omitempty"`
	ID     string  `json:"id"`
}

// GetTrack returns the track with the given id, if present.
func (a *Album) GetTrack(id string) (Track, bool) {
	for _, t := range a.Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// removeTrack strips every track backed by the given file path.
func (a *Album) removeTrack(path string) {
	kept := a.Tracks[:0]
	for _, t := range a.Tracks {
		if t.FilePath != path {
			kept = append(kept, t)
		}
	}
	a.Tracks = kept
}

// Playlist is an ordered list of tracks read from a playlist file.
type Playlist struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Path   string  `json:"path"`
	Tracks []Track `json:"tracks"`
}

// GetTrack returns the playlist entry with the given id, if present.
func (p *Playlist) GetTrack(id string) (Track, bool) {
	for _, t := range p.Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// Catalog is one published snapshot of the whole collection. A Catalog is
// built fresh on every rebuild and never mutated once published.
type Catalog struct {
	Albums    []Album    `json:"albums"`
	Playlists []Playlist `json:"playlists"`
}

// AlbumID derives the deterministic aggregation key for an (album name,
// primary artist) pair. Two tracks carrying the same pair always map to the
// same album regardless of extraction order.
func AlbumID(album, primaryArtist string) string {
	sum := md5.Sum(append([]byte(album), []byte(primaryArtist)...)) //nolint:gosec
	return fmt.Sprintf("%x", sum)
}

// PlaylistID derives the path-based identity of a playlist file.
func PlaylistID(path string) string {
	sum := md5.Sum([]byte(path)) //nolint:gosec
	return fmt.Sprintf("%x", sum)
}
