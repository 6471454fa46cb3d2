// Package scan finds stale project directories.
//
// A project directory's effective timestamp is the newest modification time
// found by a depth-bounded walk of its contents, falling back to the
// directory's own metadata, falling back to the Unix epoch. Projects at or
// below the age cutoff are stale; everything else is fresh.
package scan

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/danieljhkim/sweeper/internal/clock"
	"github.com/danieljhkim/sweeper/internal/fsops"
)

// ErrCutoff indicates the age threshold could not be converted into a
// cutoff time.
var ErrCutoff = errors.New("cannot compute cutoff time")

// Project is one immediate child directory of a scanned root.
type Project struct {
	// Path is the absolute path of the directory.
	Path string `json:"path"`

	// LastModified is the directory's effective timestamp.
	LastModified time.Time `json:"last_modified"`
}

// Report is the result of scanning one root.
type Report struct {
	// Root is the canonical absolute path that was scanned.
	Root string `json:"root"`

	// OlderThanDays is the age threshold the scan used.
	OlderThanDays int `json:"older_than_days"`

	// Stale holds projects at or below the cutoff, oldest first.
	Stale []Project `json:"stale"`

	// Fresh holds projects above the cutoff, in enumeration order.
	Fresh []Project `json:"fresh"`

	// ScannedCount is the number of project directories inspected.
	ScannedCount int `json:"scanned_count"`
}

// Scanner partitions the child directories of a root into stale and fresh.
type Scanner struct {
	FS    fsops.FS
	Clock clock.Clock

	// MaxDepth bounds the per-project timestamp walk.
	MaxDepth int
}

// NewScanner creates a Scanner with the default depth bound.
func NewScanner(fsys fsops.FS, clk clock.Clock) *Scanner {
	return &Scanner{FS: fsys, Clock: clk, MaxDepth: DefaultMaxDepth}
}

// Scan inspects the immediate child directories of root and classifies each
// as stale or fresh against a cutoff of olderThanDays before now.
//
// Hidden directories (dot-prefixed) and non-directories are skipped.
// Per-child I/O errors are absorbed by the timestamp fallback chain; only
// failures on the root itself abort the scan.
func (s *Scanner) Scan(root string, olderThanDays int) (*Report, error) {
	canonical, err := s.FS.Canonicalize(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access path %s: %w", root, err)
	}

	// time.Duration caps out around 106,751 days (~292 years).
	const maxDays = math.MaxInt64 / int64(24*time.Hour)
	if olderThanDays < 0 || int64(olderThanDays) > maxDays {
		return nil, fmt.Errorf("%w: invalid threshold %d days", ErrCutoff, olderThanDays)
	}
	cutoff := s.Clock.Now().Add(-time.Duration(olderThanDays) * 24 * time.Hour)

	entries, err := s.FS.ReadDir(canonical)
	if err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", canonical, err)
	}

	report := &Report{Root: canonical, OlderThanDays: olderThanDays}

	for _, entry := range entries {
		path := filepath.Join(canonical, entry.Name())
		if !s.isDir(entry, path) {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		report.ScannedCount++
		item := Project{Path: path, LastModified: s.effectiveMTime(path)}

		if item.LastModified.After(cutoff) {
			report.Fresh = append(report.Fresh, item)
		} else {
			report.Stale = append(report.Stale, item)
		}
	}

	// Oldest first; stable so ties keep enumeration order.
	sort.SliceStable(report.Stale, func(i, j int) bool {
		return report.Stale[i].LastModified.Before(report.Stale[j].LastModified)
	})

	return report, nil
}

// effectiveMTime resolves a project's timestamp through the fallback chain:
// newest mtime in the tree, then the directory's own metadata, then the
// Unix epoch (maximally stale).
func (s *Scanner) effectiveMTime(path string) time.Time {
	if t, ok := NewestMTime(s.FS, path, s.MaxDepth); ok {
		return t
	}
	if info, err := s.FS.Stat(path); err == nil {
		return info.ModTime()
	}
	return time.Unix(0, 0)
}

// isDir reports whether a root child is a directory, following symlinks.
func (s *Scanner) isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := s.FS.Stat(path)
	return err == nil && info.IsDir()
}
