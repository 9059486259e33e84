package extractor

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/google/uuid"
	"go.senan.xyz/taglib"

	"chorus/internal/catalog"
	"chorus/internal/logging"
	"chorus/internal/lyrics"
	"chorus/internal/mediatypes"
	"chorus/internal/metrics"
)

const coversDirName = "covers"

// Extractor turns audio files into catalog tracks, materializing embedded
// cover art into the cache directory along the way.
type Extractor struct {
	coversDir string
}

// New creates an Extractor writing cover artifacts under {cacheDir}/covers.
func New(cacheDir string) (*Extractor, error) {
	coversDir := filepath.Join(cacheDir, coversDirName)
	if err := os.MkdirAll(coversDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create covers dir %s: %w", coversDir, err)
	}
	return &Extractor{coversDir: coversDir}, nil
}

// CoversDir returns the directory holding materialized cover images.
func (e *Extractor) CoversDir() string {
	return e.coversDir
}

// TrackFromFile reads the tags of one audio file and builds its catalog
// track. Missing title, album or artist fall back to the unknown sentinel so
// album aggregation stays deterministic. Failures are returned to the caller,
// which records them and moves on to the next file.
func (e *Extractor) TrackFromFile(path string) (catalog.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.Track{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn("Failed to close %s: %v", path, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return catalog.Track{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return catalog.Track{}, fmt.Errorf("failed to read tags from %s: %w", path, err)
	}

	id := uuid.New()
	track := catalog.Track{
		ID:          hex.EncodeToString(id[:]),
		Title:       catalog.Unknown,
		Album:       catalog.Unknown,
		Artists:     splitArtists(meta.Artist()),
		AlbumArtist: strings.TrimSpace(meta.AlbumArtist()),
		AlbumYear:   meta.Year(),
		MIME:        mediatypes.GetMimeType(strings.ToLower(filepath.Ext(path))),
		Lyrics:      []catalog.LyricLine{},
		FilePath:    path,
		CreatedAt:   info.ModTime(),
	}

	if title := strings.TrimSpace(meta.Title()); title != "" {
		track.Title = title
	}
	if album := strings.TrimSpace(meta.Album()); album != "" {
		track.Album = album
	}
	track.TrackNumber, _ = meta.Track()
	track.AlbumID = catalog.AlbumID(track.Album, track.PrimaryArtist())

	// dhowden/tag does not expose stream properties, so duration and
	// bitrate come from taglib. Tags were already read, so a properties
	// failure downgrades to zero values rather than skipping the file.
	if props, err := taglib.ReadProperties(path); err != nil {
		logging.Warn("Failed to read audio properties of %s: %v", path, err)
	} else {
		track.Duration = int64(props.Length / time.Second)
		track.Bitrate = int(props.Bitrate)
	}

	if pic := meta.Picture(); pic != nil && len(pic.Data) > 0 {
		e.applyCover(&track, pic)
	}

	e.applyLyrics(&track)

	metrics.TracksExtracted.Inc()

	return track, nil
}

// applyLyrics loads the sidecar .lrc next to the audio file, if one exists.
// Lyrics are best effort and never fail the track.
func (e *Extractor) applyLyrics(track *catalog.Track) {
	base := strings.TrimSuffix(track.FilePath, filepath.Ext(track.FilePath))
	data, err := os.ReadFile(base + ".lrc")
	if err != nil {
		return
	}

	lines, err := lyrics.Parse(lyrics.FilterTimed(string(data)))
	if err != nil {
		logging.Warn("Failed to parse lyrics for %s: %v", track.FilePath, err)
		return
	}
	track.Lyrics = lines
}

// splitArtists splits a joint artist tag on ';', trimming whitespace and
// dropping empty segments.
func splitArtists(raw string) []string {
	var artists []string
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			artists = append(artists, part)
		}
	}
	return artists
}
