package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultSuffix is appended to the stem of every file we write, so that our
// own output is never picked up as a new snapshot.
const DefaultSuffix = "-vlc-print-out"

// ErrNoSnapshot is returned by Latest when no file qualifies.
var ErrNoSnapshot = errors.New("no valid files in directory")

// Filter decides which files in a snapshot directory are candidates.
type Filter struct {
	// Prefix, when set, is required at the start of the file name.
	Prefix string
	// Suffix marks files written by us, their stems are skipped.
	Suffix string
}

func (f Filter) accepts(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if f.Suffix != "" && strings.Contains(stem, f.Suffix) {
		return false
	}
	return strings.HasPrefix(name, f.Prefix)
}

// Latest returns the path of the most recently modified file in dir that
// passes filter. Entries whose metadata can't be read are passed to warn and
// skipped. warn may be nil.
func Latest(dir string, filter Filter, warn func(error)) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory: %w", err)
	}

	var latest string
	var latestTime time.Time
	for _, entry := range entries {
		if !filter.accepts(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			if warn != nil {
				warn(fmt.Errorf("couldn't get metadata of file %s: %w", path, err))
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		if latest == "" || info.ModTime().After(latestTime) {
			latest = path
			latestTime = info.ModTime()
		}
	}

	if latest == "" {
		return "", ErrNoSnapshot
	}

	return latest, nil
}
