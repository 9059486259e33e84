package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorus/internal/catalog"
	"chorus/internal/notify"
	"chorus/internal/scanner"
	"chorus/internal/store"
)

type stubResolver struct {
	scan *scanner.Scan
	err  error
}

func (s *stubResolver) Resolve() (*scanner.Scan, bool, error) {
	return s.scan, false, s.err
}

type stubExtractor struct {
	mu       sync.Mutex
	failures map[string]bool
	block    chan struct{}
	calls    int
}

func (s *stubExtractor) TrackFromFile(path string) (catalog.Track, error) {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	base := filepath.Base(path)
	if s.failures[base] {
		return catalog.Track{}, fmt.Errorf("corrupt file: %s", path)
	}
	return catalog.Track{
		ID:       base,
		Title:    base,
		Album:    "Album",
		Artists:  []string{"Artist"},
		AlbumID:  catalog.AlbumID("Album", "Artist"),
		FilePath: path,
	}, nil
}

type recordingHub struct {
	mu        sync.Mutex
	broadcast []*catalog.Catalog
}

func (h *recordingHub) Run() {}
func (h *recordingHub) RegisterClient(*notify.Client) {}
func (h *recordingHub) UnregisterClient(*notify.Client) {}
func (h *recordingHub) BroadcastCatalog(c *catalog.Catalog) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcast = append(h.broadcast, c)
}

func (h *recordingHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.broadcast)
}

func TestRebuildPublishesCatalog(t *testing.T) {
	st := store.New()
	hub := &recordingHub{}
	resolver := &stubResolver{scan: &scanner.Scan{
		Audio: []string{"/music/one.mp3", "/music/two.mp3"},
	}}

	m := New(resolver, &stubExtractor{}, st, hub)
	require.NoError(t, m.Rebuild())

	current := st.Current()
	require.Len(t, current.Albums, 1)
	assert.Len(t, current.Albums[0].Tracks, 2)
	assert.Equal(t, 1, hub.count(), "a rebuild must broadcast exactly once")
	assert.True(t, m.IsReady())
	assert.Empty(t, m.Diagnostics())
}

func TestRebuildSkipsAndRecordsFailures(t *testing.T) {
	st := store.New()
	resolver := &stubResolver{scan: &scanner.Scan{
		Audio: []string{"/music/good.mp3", "/music/bad.mp3"},
	}}
	ex := &stubExtractor{failures: map[string]bool{"bad.mp3": true}}

	m := New(resolver, ex, st, nil)
	require.NoError(t, m.Rebuild())

	assert.Equal(t, 1, st.Current().TrackCount(), "the good file must still be published")

	diags := m.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "/music/bad.mp3", diags[0].Path)
	assert.Contains(t, diags[0].Err, "corrupt file")
}

func TestRebuildDeterministicOrdering(t *testing.T) {
	st := store.New()
	resolver := &stubResolver{scan: &scanner.Scan{
		Audio: []string{"/music/c.mp3", "/music/a.mp3", "/music/b.mp3"},
	}}

	m := New(resolver, &stubExtractor{}, st, nil)
	require.NoError(t, m.Rebuild())
	first := st.Current()

	require.NoError(t, m.Rebuild())
	second := st.Current()

	require.Len(t, first.Albums, 1)
	require.Len(t, second.Albums, 1)
	for i := range first.Albums[0].Tracks {
		assert.Equal(t, first.Albums[0].Tracks[i].FilePath, second.Albums[0].Tracks[i].FilePath,
			"track order must be stable across rebuilds")
	}
}

func TestRebuildParsesPlaylists(t *testing.T) {
	dir := t.TempDir()
	plPath := filepath.Join(dir, "mix.m3u8")
	require.NoError(t, os.WriteFile(plPath, []byte("#EXTM3U\nsong.mp3\n"), 0o644))

	st := store.New()
	resolver := &stubResolver{scan: &scanner.Scan{
		Playlists: []string{plPath},
	}}

	m := New(resolver, &stubExtractor{}, st, nil)
	require.NoError(t, m.Rebuild())

	current := st.Current()
	require.Len(t, current.Playlists, 1)
	assert.Equal(t, "mix", current.Playlists[0].Name)
	assert.Len(t, current.Playlists[0].Tracks, 1)
}

func TestRebuildResolverErrorIsFatal(t *testing.T) {
	st := store.New()
	resolver := &stubResolver{err: fmt.Errorf("music dir unreadable")}

	m := New(resolver, &stubExtractor{}, st, nil)
	err := m.Rebuild()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "music dir unreadable")
}

func TestConcurrentRebuildIsAbsorbed(t *testing.T) {
	st := store.New()
	block := make(chan struct{})
	ex := &stubExtractor{block: block}
	resolver := &stubResolver{scan: &scanner.Scan{Audio: []string{"/music/one.mp3"}}}

	m := New(resolver, ex, st, nil)

	done := make(chan error, 1)
	go func() { done <- m.Rebuild() }()

	// Wait for the first rebuild to hold the slot, then race a second one.
	require.Eventually(t, func() bool {
		m.rebuildMu.Lock()
		defer m.rebuildMu.Unlock()
		return m.isRebuilding
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Rebuild(), "concurrent rebuild must be a silent no-op")

	close(block)
	require.NoError(t, <-done)

	ex.mu.Lock()
	calls := ex.calls
	ex.mu.Unlock()
	assert.Equal(t, 1, calls, "the absorbed rebuild must not extract anything")
}

func TestManagerResolvesMediaByPath(t *testing.T) {
	dir := t.TempDir()
	plPath := filepath.Join(dir, "mix.m3u8")
	require.NoError(t, os.WriteFile(plPath, []byte("song.mp3\n"), 0o644))

	m := New(&stubResolver{}, &stubExtractor{}, store.New(), nil)

	track, err := m.TrackFromFile("/music/song.mp3")
	require.NoError(t, err)
	assert.Equal(t, "/music/song.mp3", track.FilePath)

	pl, err := m.PlaylistFromFile(plPath)
	require.NoError(t, err)
	assert.Equal(t, "mix", pl.Name)
	assert.Len(t, pl.Tracks, 1)

	// The Manager is a catalog.MediaSource, so a path is enough to merge a
	// file into an existing snapshot.
	var src catalog.MediaSource = m
	c := catalog.New(nil, nil)
	require.NoError(t, c.AddMedia(plPath, src))
	assert.Len(t, c.Playlists, 1)
}

func TestHealthStatus(t *testing.T) {
	st := store.New()
	resolver := &stubResolver{scan: &scanner.Scan{Audio: []string{"/music/one.mp3"}}}
	m := New(resolver, &stubExtractor{}, st, nil)

	before := m.GetHealthStatus()
	assert.False(t, before.Ready)
	assert.Zero(t, before.Tracks)

	require.NoError(t, m.Rebuild())

	after := m.GetHealthStatus()
	assert.True(t, after.Ready)
	assert.False(t, after.Rebuilding)
	assert.Equal(t, 1, after.Albums)
	assert.Equal(t, 1, after.Tracks)
	assert.False(t, after.LastRebuild.IsZero())
}
