package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"github.com/ruboto-labs/ruboto/internal/branding"
)

// projectLock is an exclusive marker file in the project root.
type projectLock struct {
	fs       afero.Fs
	path     string
	released bool
}

// acquireLock creates the lock file or fails with ErrProjectLocked if it is
// already present.
func acquireLock(fsys afero.Fs, root string) (*projectLock, error) {
	p := filepath.Join(root, branding.LockFile())
	f, err := fsys.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s exists", ErrProjectLocked, p)
		}
		return nil, fmt.Errorf("acquiring project lock: %w", err)
	}
	_, werr := f.WriteString(strconv.Itoa(os.Getpid()) + "\n")
	if err := errors.Join(werr, f.Close()); err != nil {
		_ = fsys.Remove(p)
		return nil, fmt.Errorf("acquiring project lock: %w", err)
	}
	slog.Debug("acquired project lock", "path", p)
	return &projectLock{fs: fsys, path: p}, nil
}

// release removes the lock file. Calling it again is a no-op.
func (l *projectLock) release() {
	if l.released {
		return
	}
	l.released = true
	if err := l.fs.Remove(l.path); err != nil {
		slog.Warn("failed to release project lock", "path", l.path, "error", err)
		return
	}
	slog.Debug("released project lock", "path", l.path)
}
