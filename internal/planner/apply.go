package planner

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/sweeper/internal/fsops"
)

// MoveError identifies the move that failed during plan application.
type MoveError struct {
	From string
	To   string
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("failed to move %q to %q: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Apply executes the plan's moves in order, creating destination directories
// as needed. Execution stops at the first failure; moves already applied
// stay applied, there is no rollback.
func Apply(fsys fsops.FS, plan *ArchivePlan) error {
	for _, mv := range plan.Moves {
		if err := fsys.MkdirAll(filepath.Dir(mv.To), 0755); err != nil {
			return &MoveError{From: mv.From, To: mv.To, Err: err}
		}
		if err := fsys.Move(mv.From, mv.To); err != nil {
			return &MoveError{From: mv.From, To: mv.To, Err: err}
		}
	}
	return nil
}
