// Package organize sorts the files directly inside a directory into
// category subfolders by extension.
package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/sweeper/internal/fsops"
)

// Move is one planned file relocation into a category folder.
type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Category maps a file extension (with or without the leading dot) to a
// category folder name. Unknown extensions fall into "Other".
func Category(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "pdf", "doc", "docx", "txt":
		return "Documents"
	case "jpg", "png", "gif", "webp":
		return "Images"
	case "zip", "rar", "7z", "tar", "gz":
		return "Archives"
	case "dmg", "exe", "msi", "pkg", "deb", "rpm":
		return "Installers"
	case "csv", "xlsx":
		return "Spreadsheets"
	default:
		return "Other"
	}
}

// BuildPlan plans a move for every file directly inside dir (non-recursive)
// into its category subfolder. Name collisions get a counter appended to the
// file name, e.g. "report.pdf_1".
func BuildPlan(fsys fsops.FS, dir string) ([]Move, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", dir, err)
	}

	var moves []Move
	claimed := make(map[string]bool)

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !isFile(fsys, entry, path) {
			continue
		}

		targetDir := filepath.Join(dir, Category(filepath.Ext(entry.Name())))

		target := filepath.Join(targetDir, entry.Name())
		for i := 1; claimed[target] || pathExists(fsys, target); i++ {
			target = filepath.Join(targetDir, fmt.Sprintf("%s_%d", entry.Name(), i))
		}
		claimed[target] = true

		moves = append(moves, Move{From: path, To: target})
	}

	return moves, nil
}

// Apply performs the planned moves, creating category folders as needed.
// It stops at the first failure.
func Apply(fsys fsops.FS, moves []Move) error {
	for _, mv := range moves {
		if err := fsys.MkdirAll(filepath.Dir(mv.To), 0755); err != nil {
			return fmt.Errorf("cannot create %s: %w", filepath.Dir(mv.To), err)
		}
		if err := fsys.Move(mv.From, mv.To); err != nil {
			return fmt.Errorf("cannot move %s to %s: %w", mv.From, mv.To, err)
		}
	}
	return nil
}

// isFile reports whether a directory entry is a regular file, following
// symlinks.
func isFile(fsys fsops.FS, entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func pathExists(fsys fsops.FS, path string) bool {
	exists, err := fsys.Exists(path)
	return err == nil && exists
}
