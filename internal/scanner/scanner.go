package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"chorus/internal/logging"
	"chorus/internal/mediatypes"
	"chorus/internal/metrics"
)

// Scan holds the media candidates found under the music root, in
// enumeration order.
type Scan struct {
	Audio     []string
	Playlists []string
}

// Candidates returns all candidate paths in enumeration order, audio and
// playlists interleaved as the walk found them.
func (s *Scan) Candidates() []string {
	out := make([]string, 0, len(s.Audio)+len(s.Playlists))
	out = append(out, s.Audio...)
	out = append(out, s.Playlists...)
	return out
}

// ScanRoot walks the music root recursively and classifies every regular
// file by extension. Hidden entries are skipped. Unreadable subtrees are
// logged and skipped, never fatal.
func ScanRoot(root string) (*Scan, error) {
	start := time.Now()
	defer func() {
		metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}()

	scan := &Scan{}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logging.Warn("Error accessing path %s: %v", path, err)
			return nil
		}

		if strings.HasPrefix(info.Name(), ".") && path != root {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		switch mediatypes.GetFileType(ext) {
		case mediatypes.FileTypeAudio:
			scan.Audio = append(scan.Audio, path)
		case mediatypes.FileTypePlaylist:
			scan.Playlists = append(scan.Playlists, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Debug("Scan of %s found %d audio files, %d playlists",
		root, len(scan.Audio), len(scan.Playlists))

	return scan, nil
}

// classify rebuilds a Scan from a flat candidate list (the persisted cache
// format). Classification by extension is deterministic, so the split does
// not need to be persisted separately.
func classify(paths []string) *Scan {
	scan := &Scan{}
	for _, p := range paths {
		ext := strings.ToLower(filepath.Ext(p))
		switch mediatypes.GetFileType(ext) {
		case mediatypes.FileTypeAudio:
			scan.Audio = append(scan.Audio, p)
		case mediatypes.FileTypePlaylist:
			scan.Playlists = append(scan.Playlists, p)
		}
	}
	return scan
}
