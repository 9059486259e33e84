package mediatypes

// FileType represents the classification of a file in the music root.
type FileType string

const (
	// FileTypeAudio represents a playable audio file.
	FileTypeAudio FileType = "audio"
	// FileTypePlaylist represents a playlist file.
	FileTypePlaylist FileType = "playlist"
	// FileTypeLyrics represents a timed-lyrics sidecar file.
	FileTypeLyrics FileType = "lyrics"
	// FileTypeOther represents an unknown or unsupported file type.
	FileTypeOther FileType = "other"
)

// AudioExtensions maps file extensions to whether they are supported audio formats.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".m4a":  true,
	".mp4":  true,
	".aac":  true,
	".wav":  true,
	".aiff": true,
	".aif":  true,
	".ape":  true,
	".mpc":  true,
	".spx":  true,
	".wv":   true,
}

// PlaylistExtensions maps file extensions to whether they are supported playlist formats.
var PlaylistExtensions = map[string]bool{
	".m3u8": true,
	".m3u":  true,
}

// LyricsExtensions maps file extensions to whether they are timed-lyrics files.
var LyricsExtensions = map[string]bool{
	".lrc": true,
}

// MimeTypes maps file extensions to the MIME type served for them.
// Opus and Vorbis streams are served as audio/webm so browsers pick a
// decoder they actually ship.
var MimeTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".ogg":  "audio/webm",
	".oga":  "audio/webm",
	".opus": "audio/webm",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
	".aac":  "audio/aac",
	".wav":  "audio/wav",
	".aiff": "audio/aiff",
	".aif":  "audio/aiff",
	".ape":  "audio/ape",
	".mpc":  "audio/mpc",
	".spx":  "audio/speex",
	".wv":   "audio/wav",

	".m3u8": "application/vnd.apple.mpegurl",
	".m3u":  "audio/x-mpegurl",

	".lrc": "text/plain",
}

// GetFileType returns the FileType for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".mp3").
// Returns FileTypeOther if the extension is not recognized.
func GetFileType(ext string) FileType {
	if AudioExtensions[ext] {
		return FileTypeAudio
	}
	if PlaylistExtensions[ext] {
		return FileTypePlaylist
	}
	if LyricsExtensions[ext] {
		return FileTypeLyrics
	}
	return FileTypeOther
}

// GetMimeType returns the MIME type for a given file extension.
// The extension should be lowercase and include the leading dot.
// Returns "application/octet-stream" if the extension is not recognized.
func GetMimeType(ext string) string {
	if mime, ok := MimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}

// IsMediaFile returns true if the extension is indexed by the scanner.
func IsMediaFile(ext string) bool {
	t := GetFileType(ext)
	return t == FileTypeAudio || t == FileTypePlaylist
}
