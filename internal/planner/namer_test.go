package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/sweeper/internal/fsops"
)

func TestAvoidCollisionWith(t *testing.T) {
	tests := []struct {
		name   string
		target string
		taken  []string
		want   string
	}{
		{
			name:   "free target returned unchanged",
			target: "/archive/2026-02/proj",
			taken:  nil,
			want:   "/archive/2026-02/proj",
		},
		{
			name:   "first counter",
			target: "/archive/2026-02/proj",
			taken:  []string{"/archive/2026-02/proj"},
			want:   "/archive/2026-02/proj_1",
		},
		{
			name:   "skips taken counters",
			target: "/archive/2026-02/proj",
			taken:  []string{"/archive/2026-02/proj", "/archive/2026-02/proj_1", "/archive/2026-02/proj_2"},
			want:   "/archive/2026-02/proj_3",
		},
		{
			name:   "gap in counters is used",
			target: "/archive/2026-02/proj",
			taken:  []string{"/archive/2026-02/proj", "/archive/2026-02/proj_2"},
			want:   "/archive/2026-02/proj_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taken := make(map[string]bool, len(tt.taken))
			for _, p := range tt.taken {
				taken[p] = true
			}

			got := avoidCollisionWith(tt.target, func(p string) bool { return taken[p] })
			if got != tt.want {
				t.Errorf("avoidCollisionWith(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestAvoidCollision(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	target := filepath.Join(dir, "proj")

	t.Run("missing path returned unchanged", func(t *testing.T) {
		if got := AvoidCollision(fs, target); got != target {
			t.Errorf("AvoidCollision() = %q, want %q", got, target)
		}
	})

	t.Run("counter advances as paths get created", func(t *testing.T) {
		// Re-applying after creating the previous answer yields the next
		// counter each time.
		for i, want := range []string{target, target + "_1", target + "_2"} {
			got := AvoidCollision(fs, target)
			if got != want {
				t.Fatalf("round %d: AvoidCollision() = %q, want %q", i, got, want)
			}
			if err := os.Mkdir(got, 0755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
		}
	})
}
