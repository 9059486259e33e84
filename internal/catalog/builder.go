package catalog

import (
	"path/filepath"
	"sort"
	"strings"

	"chorus/internal/mediatypes"
)

// BuildAlbums groups tracks by album identifier. The first track seen for
// an album decides its name, artist and year. Albums are sorted by id so
// two rebuilds over the same files produce the same ordering even though
// grouping uses a map.
func BuildAlbums(tracks []Track) []Album {
	grouped := make(map[string][]Track)
	for _, t := range tracks {
		grouped[t.AlbumID] = append(grouped[t.AlbumID], t)
	}

	albums := make([]Album, 0, len(grouped))
	for id, group := range grouped {
		first := group[0]

		artist := first.AlbumArtist
		if artist == "" {
			artist = first.PrimaryArtist()
		}

		albums = append(albums, Album{
			Name:   first.Album,
			Artist: artist,
			Tracks: group,
			Year:   first.AlbumYear,
			ID:     id,
		})
	}

	sort.Slice(albums, func(i, j int) bool { return albums[i].ID < albums[j].ID })

	return albums
}

// New assembles a catalog from extracted tracks and parsed playlists.
func New(tracks []Track, playlists []Playlist) *Catalog {
	if playlists == nil {
		playlists = []Playlist{}
	}
	return &Catalog{
		Albums:    BuildAlbums(tracks),
		Playlists: playlists,
	}
}

// AddTrack merges a single track into the catalog, appending to the album
// with a matching identifier or creating a new one. This is the incremental
// update path; the full-rebuild path always constructs a fresh Catalog.
func (c *Catalog) AddTrack(t Track) {
	for i := range c.Albums {
		if c.Albums[i].ID == t.AlbumID {
			c.Albums[i].Tracks = append(c.Albums[i].Tracks, t)
			return
		}
	}
	c.Albums = append(c.Albums, BuildAlbums([]Track{t})...)
}

// AddPlaylist appends a parsed playlist to the catalog.
func (c *Catalog) AddPlaylist(p Playlist) {
	c.Playlists = append(c.Playlists, p)
}

// MediaSource resolves media file paths into catalog values. The extractor
// and the playlist parser together satisfy it.
type MediaSource interface {
	TrackFromFile(path string) (Track, error)
	PlaylistFromFile(path string) (Playlist, error)
}

// AddMedia merges the media file at path into the catalog, dispatching on
// the file's extension: playlist files become playlists, anything else goes
// through track extraction.
func (c *Catalog) AddMedia(path string, src MediaSource) error {
	if isPlaylistPath(path) {
		pl, err := src.PlaylistFromFile(path)
		if err != nil {
			return err
		}
		c.AddPlaylist(pl)
		return nil
	}

	t, err := src.TrackFromFile(path)
	if err != nil {
		return err
	}
	c.AddTrack(t)
	return nil
}

// RemoveMedia strips the media file at path from the catalog, dispatching on
// the file's extension like AddMedia.
func (c *Catalog) RemoveMedia(path string) {
	if isPlaylistPath(path) {
		c.RemovePlaylist(path)
		return
	}
	c.RemoveTrack(path)
}

func isPlaylistPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return mediatypes.GetFileType(ext) == mediatypes.FileTypePlaylist
}

// RemoveTrack strips any track backed by the given file path from every
// album, then prunes albums left with zero tracks. An empty album never
// survives into a served catalog.
func (c *Catalog) RemoveTrack(path string) {
	for i := range c.Albums {
		c.Albums[i].removeTrack(path)
	}

	kept := c.Albums[:0]
	for _, a := range c.Albums {
		if len(a.Tracks) > 0 {
			kept = append(kept, a)
		}
	}
	c.Albums = kept
}

// RemovePlaylist drops the playlist backed by the given file path.
func (c *Catalog) RemovePlaylist(path string) {
	kept := c.Playlists[:0]
	for _, p := range c.Playlists {
		if p.Path != path {
			kept = append(kept, p)
		}
	}
	c.Playlists = kept
}

// GetAlbum returns the album with the given identifier, if present.
func (c *Catalog) GetAlbum(id string) (Album, bool) {
	for _, a := range c.Albums {
		if a.ID == id {
			return a, true
		}
	}
	return Album{}, false
}

// GetTrack looks a track up by id across albums, then playlists.
func (c *Catalog) GetTrack(id string) (Track, bool) {
	for i := range c.Albums {
		if t, ok := c.Albums[i].GetTrack(id); ok {
			return t, true
		}
	}
	for i := range c.Playlists {
		if t, ok := c.Playlists[i].GetTrack(id); ok {
			return t, true
		}
	}
	return Track{}, false
}

// GetPlaylist returns the playlist with the given identifier, if present.
func (c *Catalog) GetPlaylist(id string) (Playlist, bool) {
	for _, p := range c.Playlists {
		if p.ID == id {
			return p, true
		}
	}
	return Playlist{}, false
}

// TrackCount returns the number of tracks across all albums.
func (c *Catalog) TrackCount() int {
	n := 0
	for i := range c.Albums {
		n += len(c.Albums[i].Tracks)
	}
	return n
}
