package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/ruboto-labs/ruboto/internal/assets"
	"github.com/ruboto-labs/ruboto/internal/branding"
	"github.com/ruboto-labs/ruboto/internal/manifest"
	"github.com/ruboto-labs/ruboto/internal/naming"
	"github.com/ruboto-labs/ruboto/internal/scaffold"
)

// Generator runs generation operations against a filesystem.
type Generator struct {
	fs afero.Fs
}

// New returns a Generator using fsys, or the OS filesystem if fsys is nil.
func New(fsys afero.Fs) *Generator {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Generator{fs: fsys}
}

// Generate adds one component to an existing project: its Java source stub,
// Ruby companion script and test stub, then its manifest registration.
func (g *Generator) Generate(ctx context.Context, cmd Command) (Result, error) {
	r := newRun("generate")

	kind, name, err := validateCommand(cmd)
	if err != nil {
		return r.fail(err)
	}

	r.enter(StateRendering)
	// Held from the manifest read until its replacement.
	lock, err := acquireLock(g.fs, cmd.ProjectDir)
	if err != nil {
		return r.fail(err)
	}
	defer lock.release()

	m, err := g.loadManifest(cmd.ProjectDir)
	if err != nil {
		return r.fail(err)
	}
	if err := naming.ValidatePackage(m.Package); err != nil {
		return r.fail(fmt.Errorf("manifest package: %w", err))
	}

	params := classParams(m.Package, name)
	files, fragmentSpec := scaffold.ClassSet(kind)
	rendered, err := scaffold.RenderSet(files, params)
	if err != nil {
		return r.fail(err)
	}
	fragment, err := scaffold.Render(fragmentSpec, params)
	if err != nil {
		return r.fail(err)
	}
	updated, err := manifest.RegisterComponent(m, manifest.Component{Kind: kind, Name: name.Name}, fragment.Data)
	if err != nil {
		return r.fail(err)
	}

	staging := &Staging{Manifest: updated.Bytes(), ManifestPath: branding.ManifestFile()}
	for _, f := range rendered {
		staging.add(f.Path, f.Data)
	}
	if err := staging.preflight(g.fs, cmd.ProjectDir); err != nil {
		return r.fail(err)
	}

	r.enter(StateCommitting)
	c := &committer{fs: g.fs, root: cmd.ProjectDir}
	if err := c.commit(ctx, staging); err != nil {
		return r.fail(c.rollback(err, lock))
	}

	slog.Info("generated component", "kind", kind, "name", name.Name, "project", cmd.ProjectDir)
	return r.done(staging.paths())
}

// CreateProject creates a new project in cmd.Path, which must be absent or
// empty. The descriptor and manifest are committed last.
func (g *Generator) CreateProject(ctx context.Context, cmd AppCommand) (Result, error) {
	r := newRun("create-project")

	if err := validateStruct(cmd); err != nil {
		return r.fail(err)
	}
	if err := naming.ValidatePackage(cmd.Package); err != nil {
		return r.fail(err)
	}
	appName := cmd.Name
	if appName == "" {
		segments := strings.Split(cmd.Package, ".")
		appName = naming.Camelize(segments[len(segments)-1])
	}
	mainActivity, err := naming.Validate(naming.KindActivity, appName+"Activity")
	if err != nil {
		return r.fail(err)
	}
	if err := g.checkEmpty(cmd.Path); err != nil {
		return r.fail(err)
	}

	r.enter(StateRendering)
	params := classParams(cmd.Package, mainActivity)
	params[scaffold.ParamAppName] = appName
	params[scaffold.ParamMainActivity] = mainActivity.Name
	params[scaffold.ParamTarget] = strconv.Itoa(cmd.Target)
	params[scaffold.ParamMinSDK] = strconv.Itoa(cmd.MinSDK)

	activityFiles, _ := scaffold.ClassSet(naming.KindActivity)
	rendered, err := scaffold.RenderSet(append(scaffold.AppSet(), activityFiles...), params)
	if err != nil {
		return r.fail(err)
	}
	icons, err := assets.Files()
	if err != nil {
		return r.fail(err)
	}
	descriptor, err := manifest.MarshalDescriptor(&manifest.Descriptor{
		Package:      cmd.Package,
		AppName:      appName,
		Target:       cmd.Target,
		MinSDK:       cmd.MinSDK,
		Platform:     cmd.Platform,
		JRubyVersion: cmd.JRubyVersion,
	})
	if err != nil {
		return r.fail(err)
	}
	appManifest, err := scaffold.Render(scaffold.ManifestSpec(), params)
	if err != nil {
		return r.fail(err)
	}
	m, err := manifest.Parse(appManifest.Data)
	if err != nil {
		return r.fail(err)
	}
	if !m.Contains(mainActivity.Name) {
		return r.fail(fmt.Errorf("rendered manifest does not register %s", mainActivity.Name))
	}

	staging := &Staging{Manifest: m.Bytes(), ManifestPath: appManifest.Path}
	for _, f := range rendered {
		staging.add(f.Path, f.Data)
	}
	for _, icon := range icons {
		staging.add(icon.Path, icon.Data)
	}
	staging.add(manifest.DescriptorFile, descriptor)

	r.enter(StateCommitting)
	if err := g.commit(ctx, cmd.Path, staging); err != nil {
		return r.fail(err)
	}

	slog.Info("created project", "path", cmd.Path, "package", cmd.Package, "app", appName)
	return r.done(staging.paths())
}

// Destroy removes a component: its manifest registration first, then its
// files. Files that are already gone are skipped.
func (g *Generator) Destroy(ctx context.Context, cmd Command) (Result, error) {
	r := newRun("destroy")

	kind, name, err := validateCommand(cmd)
	if err != nil {
		return r.fail(err)
	}

	r.enter(StateRendering)
	lock, err := acquireLock(g.fs, cmd.ProjectDir)
	if err != nil {
		return r.fail(err)
	}
	defer lock.release()

	m, err := g.loadManifest(cmd.ProjectDir)
	if err != nil {
		return r.fail(err)
	}
	registered, ok := m.Lookup(name.Name)
	if !ok {
		return r.fail(&manifest.ComponentNotFoundError{Name: name.Name})
	}
	if registered.Kind != kind {
		return r.fail(fmt.Errorf("%s is registered as a %s, not a %s", name.Name, registered.Kind, kind))
	}
	updated, err := manifest.UnregisterComponent(m, name.Name)
	if err != nil {
		return r.fail(err)
	}
	files, _ := scaffold.ClassSet(kind)
	rendered, err := scaffold.RenderSet(files, classParams(m.Package, name))
	if err != nil {
		return r.fail(err)
	}

	r.enter(StateCommitting)
	manifestPath := filepath.Join(cmd.ProjectDir, branding.ManifestFile())
	if err := writeAtomic(g.fs, manifestPath, updated.Bytes(), 0o644); err != nil {
		return r.fail(fmt.Errorf("writing %s: %w", branding.ManifestFile(), err))
	}
	removed := []string{branding.ManifestFile()}

	for i := len(rendered) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return r.fail(err)
		}
		p := rendered[i].Path
		err := g.fs.Remove(filepath.Join(cmd.ProjectDir, filepath.FromSlash(p)))
		switch {
		case err == nil:
			removed = append(removed, p)
			slog.Debug("removed file", "path", p)
		case errors.Is(err, os.ErrNotExist):
			slog.Debug("file already absent", "path", p)
		default:
			return r.fail(fmt.Errorf("removing %s: %w", p, err))
		}
	}

	slog.Info("destroyed component", "kind", kind, "name", name.Name, "project", cmd.ProjectDir)
	return r.done(removed)
}

// commit creates root if needed and applies s under the project lock,
// rolling back on failure.
func (g *Generator) commit(ctx context.Context, root string, s *Staging) error {
	c := &committer{fs: g.fs, root: root}
	if err := c.mkdirs(root); err != nil {
		return err
	}

	lock, err := acquireLock(g.fs, root)
	if err != nil {
		if _, derr := c.undoDirs(); derr != nil {
			slog.Warn("failed to remove project directory", "path", root, "error", derr)
		}
		return err
	}

	if err := c.commit(ctx, s); err != nil {
		return c.rollback(err, lock)
	}
	lock.release()
	return nil
}

func (g *Generator) loadManifest(dir string) (*manifest.AndroidManifest, error) {
	p := filepath.Join(dir, branding.ManifestFile())
	data, err := afero.ReadFile(g.fs, p)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return m, nil
}

func (g *Generator) checkEmpty(dir string) error {
	exists, err := afero.Exists(g.fs, dir)
	if err != nil || !exists {
		return err
	}
	empty, err := afero.IsEmpty(g.fs, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if !empty {
		return fmt.Errorf("%w: %s", ErrTargetNotEmpty, dir)
	}
	return nil
}

func validateCommand(cmd Command) (naming.Kind, naming.ValidName, error) {
	if err := validateStruct(cmd); err != nil {
		return "", naming.ValidName{}, err
	}
	kind, err := naming.ParseKind(cmd.Kind)
	if err != nil {
		return "", naming.ValidName{}, err
	}
	name, err := naming.Validate(kind, cmd.Name)
	if err != nil {
		return "", naming.ValidName{}, err
	}
	return kind, name, nil
}

func classParams(pkg string, name naming.ValidName) scaffold.Params {
	return scaffold.Params{
		scaffold.ParamPackage:     pkg,
		scaffold.ParamPackagePath: naming.PackagePath(pkg),
		scaffold.ParamName:        name.Name,
		scaffold.ParamUnderscore:  name.Underscore(),
	}
}
