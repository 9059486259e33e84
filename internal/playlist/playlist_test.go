package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"chorus/internal/catalog"
)

// stubExtractor resolves any path whose base name is not in failures.
type stubExtractor struct {
	failures map[string]bool
	calls    []string
}

func (s *stubExtractor) TrackFromFile(path string) (catalog.Track, error) {
	s.calls = append(s.calls, path)
	if s.failures[filepath.Base(path)] {
		return catalog.Track{}, fmt.Errorf("unreadable: %s", path)
	}
	return catalog.Track{ID: filepath.Base(path), FilePath: path, Title: filepath.Base(path)}, nil
}

func writePlaylist(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write playlist: %v", err)
	}
	return path
}

func TestParseResolvesRelativeEntries(t *testing.T) {
	dir := t.TempDir()
	path := writePlaylist(t, dir, "mix.m3u8", "#EXTM3U\n#EXTINF:123,Song\nsub/one.mp3\ntwo.flac\n\n")

	ex := &stubExtractor{}
	pl, err := Parse(path, ex)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if pl.Name != "mix" {
		t.Errorf("Expected name 'mix', got %q", pl.Name)
	}
	if pl.ID != catalog.PlaylistID(path) {
		t.Errorf("Playlist ID must derive from its path")
	}
	if len(pl.Tracks) != 2 {
		t.Fatalf("Expected 2 tracks, got %d", len(pl.Tracks))
	}
	if want := filepath.Join(dir, "sub", "one.mp3"); ex.calls[0] != want {
		t.Errorf("Relative entry not resolved against playlist dir: got %s, want %s", ex.calls[0], want)
	}
}

func TestParseKeepsAbsoluteEntries(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(string(filepath.Separator), "music", "album", "song.mp3")
	path := writePlaylist(t, dir, "abs.m3u", abs+"\n")

	ex := &stubExtractor{}
	pl, err := Parse(path, ex)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(pl.Tracks) != 1 || ex.calls[0] != abs {
		t.Errorf("Absolute entry must pass through unchanged, got %v", ex.calls)
	}
}

func TestParseSkipsFailedEntries(t *testing.T) {
	dir := t.TempDir()
	path := writePlaylist(t, dir, "mix.m3u8", "good.mp3\nbad.mp3\nalso-good.flac\n")

	ex := &stubExtractor{failures: map[string]bool{"bad.mp3": true}}
	pl, err := Parse(path, ex)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(pl.Tracks) != 2 {
		t.Errorf("Expected failed entry to be skipped, got %d tracks", len(pl.Tracks))
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.m3u8"), &stubExtractor{})
	if err == nil {
		t.Error("Expected error for missing playlist file")
	}
}

func TestParseEmptyPlaylist(t *testing.T) {
	dir := t.TempDir()
	path := writePlaylist(t, dir, "empty.m3u8", "#EXTM3U\n")

	pl, err := Parse(path, &stubExtractor{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(pl.Tracks) != 0 {
		t.Errorf("Expected no tracks, got %d", len(pl.Tracks))
	}
	if pl.Tracks == nil {
		t.Error("Tracks must be an empty slice, not nil, for JSON encoding")
	}
}
