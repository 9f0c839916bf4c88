package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// StagedFile is one file waiting to be committed.
type StagedFile struct {
	Path string // slash separated, relative to the project root
	Data []byte
	Mode fs.FileMode
}

// Staging is the in-memory set of files an operation will commit. Manifest,
// when set, replaces the project's AndroidManifest.xml after every file has
// been written.
type Staging struct {
	Files        []StagedFile
	Manifest     []byte
	ManifestPath string
}

func (s *Staging) add(p string, data []byte) {
	s.Files = append(s.Files, StagedFile{Path: p, Data: data, Mode: 0o644})
}

// paths returns the staged paths in commit order, manifest last.
func (s *Staging) paths() []string {
	out := make([]string, 0, len(s.Files)+1)
	for _, f := range s.Files {
		out = append(out, f.Path)
	}
	if s.Manifest != nil {
		out = append(out, s.ManifestPath)
	}
	return out
}

// preflight fails with *FileExistsError if any staged file already exists.
func (s *Staging) preflight(fsys afero.Fs, root string) error {
	for _, f := range s.Files {
		exists, err := afero.Exists(fsys, filepath.Join(root, filepath.FromSlash(f.Path)))
		if err != nil {
			return fmt.Errorf("checking %s: %w", f.Path, err)
		}
		if exists {
			return &FileExistsError{Path: f.Path}
		}
	}
	return nil
}

// committer applies a Staging and remembers enough to undo it.
type committer struct {
	fs   afero.Fs
	root string

	written []string // absolute paths, in write order
	dirs    []string // directories created, parents first
	// original manifest bytes, restored on rollback once replaced
	manifestBackup []byte
	manifestPath   string
}

func (c *committer) commit(ctx context.Context, s *Staging) error {
	for _, f := range s.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(c.root, filepath.FromSlash(f.Path))
		if err := c.mkdirs(filepath.Dir(dst)); err != nil {
			return err
		}
		if err := writeAtomic(c.fs, dst, f.Data, f.Mode); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
		c.written = append(c.written, dst)
		slog.Debug("wrote file", "path", f.Path, "bytes", len(f.Data))
	}

	if s.Manifest == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	dst := filepath.Join(c.root, filepath.FromSlash(s.ManifestPath))
	old, err := afero.ReadFile(c.fs, dst)
	switch {
	case err == nil:
		c.manifestBackup = old
	case errors.Is(err, os.ErrNotExist):
		if err := c.mkdirs(filepath.Dir(dst)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("reading %s: %w", s.ManifestPath, err)
	}
	if err := writeAtomic(c.fs, dst, s.Manifest, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.ManifestPath, err)
	}
	c.manifestPath = dst
	slog.Debug("wrote manifest", "path", s.ManifestPath, "bytes", len(s.Manifest))
	return nil
}

// mkdirs creates dir and any missing parents, recording each one.
func (c *committer) mkdirs(dir string) error {
	var missing []string
	for d := dir; ; d = filepath.Dir(d) {
		exists, err := afero.DirExists(c.fs, d)
		if err != nil {
			return fmt.Errorf("checking directory %s: %w", d, err)
		}
		if exists {
			break
		}
		missing = append(missing, d)
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}
	for i := len(missing) - 1; i >= 0; i-- {
		err := c.fs.Mkdir(missing[i], 0o755)
		switch {
		case err == nil:
			c.dirs = append(c.dirs, missing[i])
		case errors.Is(err, os.ErrExist):
			// Created by someone else since the check; not ours to remove.
		default:
			return fmt.Errorf("creating directory %s: %w", missing[i], err)
		}
	}
	return nil
}

// undoFiles restores the manifest and removes written files in reverse
// order. It returns the paths it could not restore.
func (c *committer) undoFiles() ([]string, error) {
	var orphans []string
	var errs []error

	if c.manifestPath != "" {
		var err error
		if c.manifestBackup != nil {
			err = writeAtomic(c.fs, c.manifestPath, c.manifestBackup, 0o644)
		} else {
			err = c.fs.Remove(c.manifestPath)
		}
		if err != nil {
			orphans = append(orphans, c.rel(c.manifestPath))
			errs = append(errs, err)
		}
	}
	for i := len(c.written) - 1; i >= 0; i-- {
		if err := c.fs.Remove(c.written[i]); err != nil && !errors.Is(err, os.ErrNotExist) {
			orphans = append(orphans, c.rel(c.written[i]))
			errs = append(errs, err)
		}
	}
	return orphans, errors.Join(errs...)
}

// undoDirs removes created directories, deepest first.
func (c *committer) undoDirs() ([]string, error) {
	var orphans []string
	var errs []error
	for i := len(c.dirs) - 1; i >= 0; i-- {
		// A directory still holding an orphan stays; the orphan is reported.
		if empty, err := afero.IsEmpty(c.fs, c.dirs[i]); err == nil && !empty {
			slog.Debug("keeping non-empty directory", "path", c.dirs[i])
			continue
		}
		if err := c.fs.Remove(c.dirs[i]); err != nil && !errors.Is(err, os.ErrNotExist) {
			orphans = append(orphans, c.rel(c.dirs[i]))
			errs = append(errs, err)
		}
	}
	return orphans, errors.Join(errs...)
}

// rollback undoes a failed commit. Files are restored while lock is held;
// the lock is released before created directories are removed, since the
// lock file may live in one of them. A rollback that cannot finish yields a
// *PartialCommitError.
func (c *committer) rollback(cause error, lock *projectLock) error {
	slog.Warn("commit failed, rolling back", "project", c.root, "error", cause)
	orphans, ferr := c.undoFiles()
	lock.release()
	dirOrphans, derr := c.undoDirs()
	orphans = append(orphans, dirOrphans...)
	if rerr := errors.Join(ferr, derr); rerr != nil {
		return &PartialCommitError{Cause: cause, Orphans: orphans, RollbackErr: rerr}
	}
	slog.Info("rolled back commit", "project", c.root, "files", len(c.written), "dirs", len(c.dirs))
	return cause
}

func (c *committer) rel(p string) string {
	if r, err := filepath.Rel(c.root, p); err == nil {
		return filepath.ToSlash(r)
	}
	return p
}

// writeAtomic writes data to a temporary sibling of dst and renames it into
// place, so readers never observe a partially written file.
func writeAtomic(fsys afero.Fs, dst string, data []byte, mode fs.FileMode) error {
	dir, base := filepath.Split(dst)
	tmp, err := afero.TempFile(fsys, dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = fsys.Remove(tmpName)
		return err
	}
	if err := fsys.Chmod(tmpName, mode); err != nil {
		_ = fsys.Remove(tmpName)
		return err
	}
	if err := fsys.Rename(tmpName, dst); err != nil {
		_ = fsys.Remove(tmpName)
		return err
	}
	return nil
}
