// Package trash implements a soft-delete bin.
//
// Items are moved into <root>/files and recorded in <root>/history.json so
// they can be listed and restored later. Nothing is ever destroyed by this
// package; emptying the bin is left to the user.
package trash

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/danieljhkim/sweeper/internal/clock"
	"github.com/danieljhkim/sweeper/internal/fsops"
	"github.com/danieljhkim/sweeper/internal/planner"
)

// historyVersion is the schema version of history.json.
const historyVersion = 1

// Entry records one item moved into the bin.
type Entry struct {
	// ID identifies the entry; unique within the bin.
	ID string `json:"id"`

	// Name is the item's original base name.
	Name string `json:"name"`

	// From is the absolute path the item was taken from.
	From string `json:"from"`

	// To is the item's current path inside the bin.
	To string `json:"to"`

	// Timestamp is when the item was binned.
	Timestamp time.Time `json:"timestamp"`

	// IsDir records whether the item was a directory.
	IsDir bool `json:"is_dir"`
}

// History is the on-disk shape of history.json.
type History struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// Error identifies the item a trash operation failed on.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("trash operation failed for %q: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Bin is a trash bin rooted at a single directory.
type Bin struct {
	fs    fsops.FS
	clock clock.Clock
	root  string
}

// New creates a Bin rooted at root.
func New(fsys fsops.FS, clk clock.Clock, root string) *Bin {
	return &Bin{fs: fsys, clock: clk, root: root}
}

func (b *Bin) filesDir() string {
	return filepath.Join(b.root, "files")
}

func (b *Bin) historyPath() string {
	return filepath.Join(b.root, "history.json")
}

// Put moves path into the bin and records it in the history.
func (b *Bin) Put(path string) (*Entry, error) {
	from, err := filepath.Abs(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	info, err := b.fs.Stat(from)
	if err != nil {
		return nil, &Error{Path: from, Err: err}
	}

	if err := b.fs.MkdirAll(b.filesDir(), 0755); err != nil {
		return nil, &Error{Path: from, Err: err}
	}

	name := filepath.Base(from)
	to := planner.AvoidCollision(b.fs, filepath.Join(b.filesDir(), name))

	if err := b.fs.Move(from, to); err != nil {
		return nil, &Error{Path: from, Err: err}
	}

	entry := Entry{
		// The binned name is collision-free, so it doubles as the ID.
		ID:        filepath.Base(to),
		Name:      name,
		From:      from,
		To:        to,
		Timestamp: b.clock.Now(),
		IsDir:     info.IsDir(),
	}

	if err := b.appendEntry(entry); err != nil {
		return nil, &Error{Path: from, Err: err}
	}

	return &entry, nil
}

// PutAll bins each path in order, stopping at the first failure. Items
// binned before the failure stay binned.
func (b *Bin) PutAll(paths []string) ([]Entry, error) {
	var entries []Entry
	for _, path := range paths {
		entry, err := b.Put(path)
		if err != nil {
			return entries, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// List returns the bin's history, empty when nothing was ever binned.
func (b *Bin) List() (*History, error) {
	return b.loadHistory()
}

// Restore moves the entry with the given ID back to its original path and
// drops it from the history. The original path's parent is recreated if
// needed; an existing entry at the original path is not overwritten.
func (b *Bin) Restore(id string) (*Entry, error) {
	history, err := b.loadHistory()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range history.Entries {
		if history.Entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("no trash entry with id %q", id)
	}
	entry := history.Entries[idx]

	if exists, err := b.fs.Exists(entry.From); err == nil && exists {
		return nil, &Error{Path: entry.From, Err: os.ErrExist}
	}

	if err := b.fs.MkdirAll(filepath.Dir(entry.From), 0755); err != nil {
		return nil, &Error{Path: entry.From, Err: err}
	}
	if err := b.fs.Move(entry.To, entry.From); err != nil {
		return nil, &Error{Path: entry.To, Err: err}
	}

	history.Entries = append(history.Entries[:idx], history.Entries[idx+1:]...)
	if err := b.saveHistory(history); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (b *Bin) appendEntry(entry Entry) error {
	history, err := b.loadHistory()
	if err != nil {
		return err
	}
	history.Entries = append(history.Entries, entry)
	return b.saveHistory(history)
}

func (b *Bin) loadHistory() (*History, error) {
	data, err := b.fs.ReadFile(b.historyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &History{Version: historyVersion}, nil
		}
		return nil, fmt.Errorf("failed to read trash history: %w", err)
	}

	var history History
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse trash history: %w", err)
	}
	return &history, nil
}

func (b *Bin) saveHistory(history *History) error {
	history.Version = historyVersion
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode trash history: %w", err)
	}
	if err := b.fs.AtomicWrite(b.historyPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write trash history: %w", err)
	}
	return nil
}
