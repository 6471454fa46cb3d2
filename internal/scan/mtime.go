package scan

import (
	"path/filepath"
	"time"

	"github.com/danieljhkim/sweeper/internal/fsops"
)

// DefaultMaxDepth bounds how far NewestMTime descends below a project
// directory. The bound keeps scan latency flat on deep trees; callers can
// raise it through Scanner.MaxDepth.
const DefaultMaxDepth = 3

// NewestMTime returns the most recent modification time found among the
// directory itself and the entries up to maxDepth levels below it. The
// second return value is false when nothing was readable.
//
// Entries that fail to stat are skipped; the walk never returns an error.
func NewestMTime(fsys fsops.FS, dir string, maxDepth int) (time.Time, bool) {
	var newest time.Time
	var found bool

	record := func(t time.Time) {
		if !found || t.After(newest) {
			newest = t
			found = true
		}
	}

	if info, err := fsys.Stat(dir); err == nil {
		record(info.ModTime())
	}

	var walk func(dir string, depth int)
	walk = func(dir string, depth int) {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			info, err := fsys.Lstat(path)
			if err != nil {
				continue
			}
			record(info.ModTime())
			if info.IsDir() && depth < maxDepth {
				walk(path, depth+1)
			}
		}
	}
	walk(dir, 1)

	return newest, found
}
