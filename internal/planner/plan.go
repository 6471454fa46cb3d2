// Package planner turns a scan report into a collision-free archive plan
// and applies it.
//
// Plans bucket stale projects under the current calendar month
// (dest/YYYY-MM/name). Building a plan never mutates the filesystem; only
// Apply does.
package planner

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/sweeper/internal/clock"
	"github.com/danieljhkim/sweeper/internal/fsops"
	"github.com/danieljhkim/sweeper/internal/scan"
)

// Move is one planned relocation.
type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ArchivePlan is an ordered set of moves into a month bucket.
type ArchivePlan struct {
	// DestRoot is the archive destination root, canonical when it exists.
	DestRoot string `json:"dest_root"`

	// MonthBucket is the current local year-month, e.g. "2026-02".
	MonthBucket string `json:"month_bucket"`

	// Moves follow the order of the stale projects they were built from.
	Moves []Move `json:"moves"`
}

// BuildArchivePlan computes the moves that would archive the report's stale
// projects under destRoot/YYYY-MM/.
//
// Projects already inside destRoot are skipped so the archive is never
// archived into itself. Destinations go through the collision namer, which
// also sees destinations claimed earlier in the same plan.
func BuildArchivePlan(fsys fsops.FS, clk clock.Clock, report *scan.Report, destRoot string) (*ArchivePlan, error) {
	if report == nil {
		return nil, errors.New("cannot build plan from nil report")
	}

	// Destination may not exist yet; it is created on apply.
	dest := destRoot
	if canonical, err := fsys.Canonicalize(destRoot); err == nil {
		dest = canonical
	} else if abs, err := filepath.Abs(destRoot); err == nil {
		dest = abs
	}

	bucket := clk.Now().Format("2006-01")
	bucketDir := filepath.Join(dest, bucket)

	plan := &ArchivePlan{DestRoot: dest, MonthBucket: bucket}
	claimed := make(map[string]bool)

	for _, item := range report.Stale {
		if isWithin(dest, item.Path) {
			continue
		}

		name := filepath.Base(item.Path)
		if name == "." || name == string(filepath.Separator) || name == "" {
			name = "unknown"
		}

		to := avoidCollisionWith(filepath.Join(bucketDir, name), func(path string) bool {
			if claimed[path] {
				return true
			}
			exists, err := fsys.Exists(path)
			return err == nil && exists
		})
		claimed[to] = true

		plan.Moves = append(plan.Moves, Move{From: item.Path, To: to})
	}

	return plan, nil
}

// isWithin reports whether child is parent itself or nested under it.
func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
