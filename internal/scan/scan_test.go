package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/sweeper/internal/clock"
	"github.com/danieljhkim/sweeper/internal/fsops"
)

// makeProject creates a child directory of root containing one file, with
// every mtime pinned to the given time.
func makeProject(t *testing.T, root, name string, mtime time.Time) string {
	t.Helper()
	dir := filepath.Join(root, name)
	mustWrite(t, filepath.Join(dir, "main.txt"), mtime)
	mustChtimes(t, dir, mtime)
	return dir
}

func newTestScanner(t *testing.T) (*Scanner, *clock.FakeClock) {
	t.Helper()
	clk := clock.NewFakeClock(time.Now())
	return NewScanner(fsops.NewRealFS(), clk), clk
}

func TestScanner_Scan_Partition(t *testing.T) {
	root := t.TempDir()
	scanner, clk := newTestScanner(t)
	now := clk.Now()

	staleDir := makeProject(t, root, "A", now.Add(-40*24*time.Hour))
	freshDir := makeProject(t, root, "B", now.Add(-5*24*time.Hour))
	makeProject(t, root, ".hidden", now.Add(-400*24*time.Hour))
	mustChtimes(t, root, now.Add(-400*24*time.Hour))

	report, err := scanner.Scan(root, 30)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if report.ScannedCount != 2 {
		t.Errorf("ScannedCount = %d, want 2", report.ScannedCount)
	}
	if len(report.Stale) != 1 || report.Stale[0].Path != staleDir {
		t.Errorf("Stale = %v, want [%s]", report.Stale, staleDir)
	}
	if len(report.Fresh) != 1 || report.Fresh[0].Path != freshDir {
		t.Errorf("Fresh = %v, want [%s]", report.Fresh, freshDir)
	}
	if len(report.Stale)+len(report.Fresh) != report.ScannedCount {
		t.Errorf("stale + fresh = %d, want ScannedCount %d", len(report.Stale)+len(report.Fresh), report.ScannedCount)
	}
}

func TestScanner_Scan_CutoffBoundary(t *testing.T) {
	scanner, clk := newTestScanner(t)
	now := clk.Now()

	tests := []struct {
		name      string
		age       time.Duration
		wantStale bool
	}{
		{name: "well past cutoff", age: 31 * 24 * time.Hour, wantStale: true},
		{name: "exactly at cutoff", age: 30 * 24 * time.Hour, wantStale: true},
		{name: "just inside cutoff", age: 30*24*time.Hour - time.Hour, wantStale: false},
		{name: "recent", age: time.Hour, wantStale: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := t.TempDir()
			makeProject(t, sub, "proj", now.Add(-tt.age))

			report, err := scanner.Scan(sub, 30)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}

			gotStale := len(report.Stale) == 1
			if gotStale != tt.wantStale {
				t.Errorf("stale = %v, want %v (age %v)", gotStale, tt.wantStale, tt.age)
			}
		})
	}
}

func TestScanner_Scan_StaleSortedOldestFirst(t *testing.T) {
	root := t.TempDir()
	scanner, clk := newTestScanner(t)
	now := clk.Now()

	// Created out of age order on purpose.
	makeProject(t, root, "mid", now.Add(-60*24*time.Hour))
	makeProject(t, root, "oldest", now.Add(-90*24*time.Hour))
	makeProject(t, root, "newest", now.Add(-40*24*time.Hour))

	report, err := scanner.Scan(root, 30)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(report.Stale) != 3 {
		t.Fatalf("len(Stale) = %d, want 3", len(report.Stale))
	}
	for i := 1; i < len(report.Stale); i++ {
		if report.Stale[i].LastModified.Before(report.Stale[i-1].LastModified) {
			t.Errorf("Stale not sorted ascending at index %d: %v before %v",
				i, report.Stale[i].LastModified, report.Stale[i-1].LastModified)
		}
	}
	if base := filepath.Base(report.Stale[0].Path); base != "oldest" {
		t.Errorf("Stale[0] = %s, want oldest", base)
	}
}

func TestScanner_Scan_SkipsFilesAndHidden(t *testing.T) {
	root := t.TempDir()
	scanner, clk := newTestScanner(t)
	now := clk.Now()

	makeProject(t, root, ".git", now.Add(-100*24*time.Hour))
	mustWrite(t, filepath.Join(root, "loose.txt"), now.Add(-100*24*time.Hour))
	makeProject(t, root, "real", now.Add(-100*24*time.Hour))

	report, err := scanner.Scan(root, 30)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if report.ScannedCount != 1 {
		t.Errorf("ScannedCount = %d, want 1", report.ScannedCount)
	}
	for _, item := range append(append([]Project{}, report.Stale...), report.Fresh...) {
		if base := filepath.Base(item.Path); base == ".git" || base == "loose.txt" {
			t.Errorf("unexpected item in report: %s", item.Path)
		}
	}
}

func TestScanner_Scan_FreshProjectWithOneRecentFile(t *testing.T) {
	root := t.TempDir()
	scanner, clk := newTestScanner(t)
	now := clk.Now()

	// An old project with a single recently touched file deep inside is
	// fresh: the effective timestamp is the newest mtime in the tree.
	dir := makeProject(t, root, "proj", now.Add(-200*24*time.Hour))
	mustWrite(t, filepath.Join(dir, "sub", "touched.txt"), now.Add(-time.Hour))
	mustChtimes(t, filepath.Join(dir, "sub"), now.Add(-200*24*time.Hour))
	mustChtimes(t, dir, now.Add(-200*24*time.Hour))

	report, err := scanner.Scan(root, 30)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(report.Fresh) != 1 {
		t.Errorf("Fresh = %v, want the touched project", report.Fresh)
	}
	if len(report.Stale) != 0 {
		t.Errorf("Stale = %v, want empty", report.Stale)
	}
}

func TestScanner_Scan_MissingRoot(t *testing.T) {
	scanner, _ := newTestScanner(t)

	if _, err := scanner.Scan(filepath.Join(t.TempDir(), "absent"), 30); err == nil {
		t.Error("Scan() expected error for missing root")
	}
}

func TestScanner_Scan_RootIsFile(t *testing.T) {
	root := t.TempDir()
	scanner, _ := newTestScanner(t)

	file := filepath.Join(root, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := scanner.Scan(file, 30); err == nil {
		t.Error("Scan() expected error when root is a file")
	}
}

func TestScanner_Scan_InvalidThreshold(t *testing.T) {
	root := t.TempDir()
	scanner, _ := newTestScanner(t)

	tests := []struct {
		name string
		days int
	}{
		{name: "negative days", days: -1},
		{name: "duration overflow", days: 200_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanner.Scan(root, tt.days)
			if !errors.Is(err, ErrCutoff) {
				t.Errorf("Scan(%d) error = %v, want ErrCutoff", tt.days, err)
			}
		})
	}
}

func TestScanner_Scan_ZeroThreshold(t *testing.T) {
	root := t.TempDir()
	scanner, clk := newTestScanner(t)
	now := clk.Now()

	makeProject(t, root, "anything", now.Add(-time.Minute))

	// Zero days means everything not modified this instant is stale.
	report, err := scanner.Scan(root, 0)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(report.Stale) != 1 {
		t.Errorf("Stale = %v, want 1 item with zero threshold", report.Stale)
	}
}
