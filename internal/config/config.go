// Package config manages sweeper configuration and filesystem paths.
//
// The config directory lives under the XDG config home and the trash bin
// under the XDG data home; both can be overridden with environment
// variables. Defaults for the commands come from an optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Built-in defaults, used when no config file overrides them.
const (
	DefaultScanOlderThanDays   = 30
	DefaultDeleteOlderThanDays = 90
	DefaultScanMaxDepth        = 3
)

// Paths contains the filesystem paths used by sweeper.
type Paths struct {
	// Root is the base directory for sweeper configuration
	// (default: $XDG_CONFIG_HOME/sweeper)
	Root string

	// Config is the path to the config file
	Config string

	// Trash is the root of the trash bin
	// (default: $XDG_DATA_HOME/sweeper/trash)
	Trash string
}

// DefaultPaths returns the default paths for sweeper.
// Paths can be overridden with environment variables:
// - SWEEPER_ROOT: Override the config directory
// - SWEEPER_TRASH: Override the trash bin directory
func DefaultPaths() *Paths {
	root := os.Getenv("SWEEPER_ROOT")
	if root == "" {
		root = filepath.Join(xdg.ConfigHome, "sweeper")
	}

	trash := os.Getenv("SWEEPER_TRASH")
	if trash == "" {
		trash = filepath.Join(xdg.DataHome, "sweeper", "trash")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
		Trash:  trash,
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Trash} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Config holds the defaults the commands fall back to when their flags are
// not set.
type Config struct {
	// ScanOlderThanDays is the default age threshold for scan and archive.
	ScanOlderThanDays int

	// DeleteOlderThanDays is the default age threshold for delete.
	DeleteOlderThanDays int

	// ScanMaxDepth bounds the per-project timestamp walk.
	ScanMaxDepth int

	// ArchiveDest is the default archive destination, empty if unset.
	ArchiveDest string
}

// Load reads the config file at p.Config, falling back to built-in defaults
// when the file is missing.
func Load(p *Paths) (*Config, error) {
	v := viper.New()
	v.SetDefault("scan.older_than_days", DefaultScanOlderThanDays)
	v.SetDefault("scan.max_depth", DefaultScanMaxDepth)
	v.SetDefault("delete.older_than_days", DefaultDeleteOlderThanDays)
	v.SetDefault("archive.dest", "")

	v.SetConfigFile(p.Config)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", p.Config, err)
		}
	}

	return &Config{
		ScanOlderThanDays:   v.GetInt("scan.older_than_days"),
		DeleteOlderThanDays: v.GetInt("delete.older_than_days"),
		ScanMaxDepth:        v.GetInt("scan.max_depth"),
		ArchiveDest:         v.GetString("archive.dest"),
	}, nil
}
