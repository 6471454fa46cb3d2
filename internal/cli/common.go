package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/sweeper/internal/clock"
	"github.com/danieljhkim/sweeper/internal/config"
	"github.com/danieljhkim/sweeper/internal/fsops"
	"github.com/danieljhkim/sweeper/internal/scan"
	"github.com/danieljhkim/sweeper/internal/trash"
)

// toolkit bundles the real implementations of every collaborator a command
// needs.
type toolkit struct {
	fs    fsops.FS
	clock clock.Clock
	paths *config.Paths
	cfg   *config.Config
}

// newToolkit creates a toolkit with real implementations of all dependencies.
func newToolkit() (*toolkit, error) {
	paths := config.DefaultPaths()

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths)
	if err != nil {
		return nil, err
	}

	return &toolkit{
		fs:    fsops.NewRealFS(),
		clock: &clock.RealClock{},
		paths: paths,
		cfg:   cfg,
	}, nil
}

// scanner creates a stale-project scanner using the configured depth bound.
func (t *toolkit) scanner() *scan.Scanner {
	s := scan.NewScanner(t.fs, t.clock)
	if t.cfg.ScanMaxDepth > 0 {
		s.MaxDepth = t.cfg.ScanMaxDepth
	}
	return s
}

// bin creates the trash bin at the configured location.
func (t *toolkit) bin() *trash.Bin {
	return trash.New(t.fs, t.clock, t.paths.Trash)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
