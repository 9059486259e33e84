package scanner

import (
	"crypto/md5" //nolint:gosec // MD5 fingerprints the path set, not a security boundary
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"chorus/internal/logging"
	"chorus/internal/metrics"
)

const (
	fingerprintFile = "fingerprint"
	fileListFile    = "files.txt"
)

// Resolver decides whether the music root needs a full re-scan by comparing
// a digest of the current path set against the digest persisted from the
// previous run. The persisted cache short-circuits enumeration only; every
// resolved file still goes through metadata extraction on each rebuild.
type Resolver struct {
	musicDir string
	cacheDir string
}

// NewResolver creates a Resolver persisting its cache under cacheDir.
func NewResolver(musicDir, cacheDir string) *Resolver {
	return &Resolver{musicDir: musicDir, cacheDir: cacheDir}
}

// Fingerprint digests the paths of every entry currently under the music
// root, in walk order. It deliberately hashes all names (directories
// included) rather than statting files, so it stays cheap on large trees.
func (r *Resolver) Fingerprint() (string, error) {
	h := md5.New() //nolint:gosec

	err := filepath.WalkDir(r.musicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Warn("Error accessing path %s during fingerprint: %v", path, err)
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != r.musicDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		h.Write([]byte(path))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("fingerprint walk failed: %w", err)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Resolve returns the media candidates for the next rebuild. When the
// current fingerprint matches the persisted one, the persisted file list is
// reused and no scan happens; otherwise the root is scanned and the cache
// rewritten. An unreadable or missing cache is treated as a miss, never as
// an error.
func (r *Resolver) Resolve() (*Scan, bool, error) {
	current, err := r.Fingerprint()
	if err != nil {
		return nil, false, err
	}

	if previous, ok := r.readFingerprint(); ok && previous == current {
		if paths, ok := r.readFileList(); ok {
			logging.Debug("Fingerprint unchanged (%s), reusing persisted file list (%d entries)",
				current, len(paths))
			metrics.FingerprintCacheHits.Inc()
			return classify(paths), true, nil
		}
		logging.Warn("Fingerprint matched but file list unreadable, forcing re-scan")
	}

	metrics.FingerprintCacheMisses.Inc()

	scan, err := ScanRoot(r.musicDir)
	if err != nil {
		return nil, false, err
	}

	r.persist(current, scan)

	return scan, false, nil
}

// readFingerprint loads the previously persisted digest.
func (r *Resolver) readFingerprint() (string, bool) {
	data, err := os.ReadFile(filepath.Join(r.cacheDir, fingerprintFile))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// readFileList loads the previously persisted newline-delimited path list.
func (r *Resolver) readFileList() ([]string, bool) {
	data, err := os.ReadFile(filepath.Join(r.cacheDir, fileListFile))
	if err != nil {
		return nil, false
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, true
}

// persist overwrites the cache entry with the new digest and file list.
// Failures degrade to a cache miss on the next run and are only logged.
func (r *Resolver) persist(fingerprint string, scan *Scan) {
	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		logging.Warn("Failed to create cache dir %s: %v", r.cacheDir, err)
		return
	}

	if err := os.WriteFile(filepath.Join(r.cacheDir, fingerprintFile), []byte(fingerprint+"\n"), 0o644); err != nil {
		logging.Warn("Failed to persist fingerprint: %v", err)
	}

	list := strings.Join(scan.Candidates(), "\n")
	if err := os.WriteFile(filepath.Join(r.cacheDir, fileListFile), []byte(list+"\n"), 0o644); err != nil {
		logging.Warn("Failed to persist file list: %v", err)
	}
}
