package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProjectLocked is returned when another generation holds the project lock.
var ErrProjectLocked = errors.New("project is locked by another generation")

// ErrTargetNotEmpty is returned when a new project would be created inside a
// non-empty directory.
var ErrTargetNotEmpty = errors.New("target directory is not empty")

// FileExistsError is returned when a staged file would overwrite an existing
// one. Generation never overwrites.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("refusing to overwrite existing file %s", e.Path)
}

// PartialCommitError is returned when a commit failed and its rollback did
// not complete. Orphans lists the paths that could not be removed.
type PartialCommitError struct {
	Cause       error
	Orphans     []string
	RollbackErr error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("commit failed (%v) and rollback left %d file(s) behind: %s: %v",
		e.Cause, len(e.Orphans), strings.Join(e.Orphans, ", "), e.RollbackErr)
}

func (e *PartialCommitError) Unwrap() []error { return []error{e.Cause, e.RollbackErr} }

// Fatal reports that the project may be inconsistent and needs manual repair.
func (e *PartialCommitError) Fatal() bool { return true }

// ExitStatus maps an operation error to a process exit status: 0 on success
// and 1 for every failure.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
