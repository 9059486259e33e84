package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chorus/internal/catalog"
	"chorus/internal/logging"
	"chorus/internal/metrics"
)

// TrackExtractor resolves one audio file into a catalog track.
type TrackExtractor interface {
	TrackFromFile(path string) (catalog.Track, error)
}

// Parse reads an m3u/m3u8 file and extracts each referenced audio file into
// a playlist entry. Comment and directive lines are ignored, relative entries
// resolve against the playlist's own directory, and entries that cannot be
// extracted are logged and skipped so one bad reference does not sink the
// whole playlist.
func Parse(path string, ex TrackExtractor) (catalog.Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		metrics.PlaylistsParsed.WithLabelValues("error").Inc()
		return catalog.Playlist{}, fmt.Errorf("failed to read playlist %s: %w", path, err)
	}

	pl := catalog.Playlist{
		ID:     catalog.PlaylistID(path),
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:   path,
		Tracks: []catalog.Track{},
	}

	dir := filepath.Dir(path)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := line
		if !filepath.IsAbs(entry) {
			entry = filepath.Join(dir, entry)
		}

		track, err := ex.TrackFromFile(entry)
		if err != nil {
			logging.Warn("Skipping playlist entry %s in %s: %v", entry, path, err)
			continue
		}
		pl.Tracks = append(pl.Tracks, track)
	}

	metrics.PlaylistsParsed.WithLabelValues("success").Inc()
	logging.Debug("Parsed playlist %s (%d tracks)", path, len(pl.Tracks))

	return pl, nil
}
