// Package playlist parses m3u and m3u8 files into catalog playlists.
package playlist
