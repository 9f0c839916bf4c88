package assets

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

//go:embed res
var resFS embed.FS

// Icon describes one launcher icon density bucket.
type Icon struct {
	Density string
	Path    string // project-relative, slash separated
	Size    int64  // exact size in bytes
}

// Icons lists the launcher icons with their exact byte sizes.
var Icons = []Icon{
	{Density: "hdpi", Path: "res/drawable-hdpi/ic_launcher.png", Size: 4032},
	{Density: "mdpi", Path: "res/drawable-mdpi/ic_launcher.png", Size: 2548},
	{Density: "ldpi", Path: "res/drawable-ldpi/ic_launcher.png", Size: 1748},
}

// File is an embedded asset ready to be staged into a project.
type File struct {
	Path string // project-relative, slash separated
	Data []byte
}

// DriftError reports an asset whose bytes differ from the template set.
type DriftError struct {
	Path string
	Want int64
	Got  int64
}

func (e *DriftError) Error() string {
	if e.Want == e.Got {
		return fmt.Sprintf("asset %s: content differs from template (size %d)", e.Path, e.Got)
	}
	return fmt.Sprintf("asset %s: size %d bytes, want %d", e.Path, e.Got, e.Want)
}

// Files returns every embedded asset sorted by path. Icons whose embedded
// size disagrees with the Icons table are reported as drift.
func Files() ([]File, error) {
	var files []File
	err := fs.WalkDir(resFS, "res", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := resFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading embedded asset %s: %w", p, err)
		}
		files = append(files, File{Path: p, Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	for _, icon := range Icons {
		data, err := resFS.ReadFile(icon.Path)
		if err != nil {
			return nil, fmt.Errorf("embedded icon %s missing: %w", icon.Path, err)
		}
		if int64(len(data)) != icon.Size {
			return nil, &DriftError{Path: icon.Path, Want: icon.Size, Got: int64(len(data))}
		}
	}
	return files, nil
}

// Check is the verification outcome for one icon.
type Check struct {
	Icon Icon
	Size int64
	Err  error
}

// OK reports whether the icon matched.
func (c Check) OK() bool { return c.Err == nil }

// Verify compares each icon in projectDir with the embedded original.
// Buckets are checked concurrently; results keep the order of Icons.
// The returned error is the first failed check, if any.
func Verify(ctx context.Context, projectDir string) ([]Check, error) {
	checks := make([]Check, len(Icons))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(len(Icons))

	for i, icon := range Icons {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			checks[i] = verifyIcon(projectDir, icon)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, c := range checks {
		if c.Err != nil {
			return checks, c.Err
		}
	}
	return checks, nil
}

func verifyIcon(projectDir string, icon Icon) Check {
	check := Check{Icon: icon}

	got, err := os.ReadFile(filepath.Join(projectDir, filepath.FromSlash(icon.Path)))
	if err != nil {
		check.Err = fmt.Errorf("reading %s: %w", icon.Path, err)
		return check
	}
	check.Size = int64(len(got))

	want, err := resFS.ReadFile(path.Clean(icon.Path))
	if err != nil {
		check.Err = fmt.Errorf("embedded icon %s missing: %w", icon.Path, err)
		return check
	}

	if check.Size != icon.Size || !bytes.Equal(got, want) {
		check.Err = &DriftError{Path: icon.Path, Want: icon.Size, Got: check.Size}
	}
	return check
}
