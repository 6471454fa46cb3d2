package planner

import (
	"fmt"

	"github.com/danieljhkim/sweeper/internal/fsops"
)

// AvoidCollision returns target unchanged if nothing exists there, otherwise
// the first of target_1, target_2, ... that does not exist. The counter is
// appended to the full path string, not the base name.
//
// The existence check is not atomic with respect to concurrent filesystem
// mutation; that is acceptable for a single-process interactive tool.
func AvoidCollision(fsys fsops.FS, target string) string {
	return avoidCollisionWith(target, func(path string) bool {
		exists, err := fsys.Exists(path)
		return err == nil && exists
	})
}

// avoidCollisionWith is the pure core of AvoidCollision: collision state is
// whatever the exists predicate says, so it can be tested without a
// filesystem and the plan builder can fold in destinations it has already
// claimed.
func avoidCollisionWith(target string, exists func(string) bool) string {
	if !exists(target) {
		return target
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", target, i)
		if !exists(candidate) {
			return candidate
		}
	}
}
