package extractor

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/dominantcolor"
	"github.com/dhowden/tag"
	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"chorus/internal/catalog"
	"chorus/internal/logging"
	"chorus/internal/metrics"
)

// applyCover materializes the embedded picture at
// {covers}/{albumID}{ext}. Covers are keyed by album, so the first track of
// an album pays for the write and the color pass; every later track with the
// same album id is a cache hit and skips both.
func (e *Extractor) applyCover(track *catalog.Track, pic *tag.Picture) {
	ext := coverExt(pic)
	coverPath := filepath.Join(e.coversDir, track.AlbumID+ext)

	if _, err := os.Stat(coverPath); err == nil {
		metrics.CoverCacheHits.Inc()
		track.CoverExt = ext
		return
	}
	metrics.CoverCacheMisses.Inc()

	if err := os.WriteFile(coverPath, pic.Data, 0o644); err != nil {
		logging.Warn("Failed to write cover %s: %v", coverPath, err)
		return
	}
	track.CoverExt = ext

	start := time.Now()
	img, _, err := image.Decode(bytes.NewReader(pic.Data))
	if err != nil {
		logging.Warn("Failed to decode cover for %s: %v", track.FilePath, err)
		return
	}

	// Downscale before the color pass; full-resolution art is wasted work.
	small := imaging.Fit(img, 256, 256, imaging.Lanczos)
	rgba := dominantcolor.Find(small)

	color := &catalog.Color{R: rgba.R, G: rgba.G, B: rgba.B}
	light := color.IsLight()
	track.Color = color
	track.IsLight = &light

	metrics.ColorExtractionDuration.Observe(time.Since(start).Seconds())
}

// coverExt picks the artifact extension from the picture's declared MIME
// type, falling back to the tag-provided extension, then to jpeg.
func coverExt(pic *tag.Picture) string {
	switch pic.MIMEType {
	case "image/jpeg":
		return ".jpeg"
	case "image/png":
		return ".png"
	}
	if pic.Ext != "" {
		return "." + strings.TrimPrefix(strings.ToLower(pic.Ext), ".")
	}
	return ".jpeg"
}
