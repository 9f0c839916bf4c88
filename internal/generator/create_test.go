package generator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ruboto-labs/ruboto/internal/manifest"
	"github.com/ruboto-labs/ruboto/internal/naming"
)

func appCommand(path string) AppCommand {
	return AppCommand{
		Path:     path,
		Package:  "org.ruboto.test_app",
		Target:   10,
		MinSDK:   7,
		Platform: manifest.PlatformCurrent,
	}
}

func TestCreateProject(t *testing.T) {
	fsys := afero.NewMemMapFs()
	res, err := New(fsys).CreateProject(context.Background(), appCommand(projectDir))
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if res.ExitStatus != 0 || res.State != StateDone {
		t.Errorf("result = %+v", res)
	}

	n := len(res.CreatedFiles)
	if n < 2 || res.CreatedFiles[n-2] != "ruboto.yml" || res.CreatedFiles[n-1] != "AndroidManifest.xml" {
		t.Errorf("descriptor and manifest must be committed last: %v", res.CreatedFiles)
	}

	icons := map[string]int64{
		"res/drawable-hdpi/ic_launcher.png": 4032,
		"res/drawable-mdpi/ic_launcher.png": 2548,
		"res/drawable-ldpi/ic_launcher.png": 1748,
	}
	for p, size := range icons {
		info, err := fsys.Stat(filepath.Join(projectDir, filepath.FromSlash(p)))
		if err != nil {
			t.Errorf("icon %s: %v", p, err)
			continue
		}
		if info.Size() != size {
			t.Errorf("icon %s is %d bytes, want %d", p, info.Size(), size)
		}
	}

	data, err := afero.ReadFile(fsys, filepath.Join(projectDir, "ruboto.yml"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := manifest.ParseDescriptor(data)
	if err != nil {
		t.Fatalf("descriptor: %v", err)
	}
	if d.AppName != "TestApp" || d.Package != "org.ruboto.test_app" || d.Platform != manifest.PlatformCurrent {
		t.Errorf("descriptor = %+v", d)
	}

	m := readManifest(t, fsys)
	if !strings.Contains(m, `android:name="TestAppActivity"`) {
		t.Errorf("manifest does not register the main activity:\n%s", m)
	}
	for _, p := range []string{
		"src/org/ruboto/test_app/TestAppActivity.java",
		"src/test_app_activity.rb",
		"test/src/test_app_activity_test.rb",
		"build.xml",
		"res/values/strings.xml",
	} {
		if ok, _ := afero.Exists(fsys, filepath.Join(projectDir, filepath.FromSlash(p))); !ok {
			t.Errorf("expected %s", p)
		}
	}

	// The new project accepts further components.
	if _, err := New(fsys).Generate(context.Background(), activityCommand("VeryNewActivity")); err != nil {
		t.Errorf("Generate in new project: %v", err)
	}
}

func TestCreateProject_Deterministic(t *testing.T) {
	a, b := afero.NewMemMapFs(), afero.NewMemMapFs()
	for _, fsys := range []afero.Fs{a, b} {
		if _, err := New(fsys).CreateProject(context.Background(), appCommand(projectDir)); err != nil {
			t.Fatal(err)
		}
	}
	sa, sb := snapshot(t, a, projectDir), snapshot(t, b, projectDir)
	if len(sa) != len(sb) {
		t.Fatalf("trees differ in size: %d vs %d", len(sa), len(sb))
	}
	for p, v := range sa {
		if sb[p] != v {
			t.Errorf("%s differs between runs", p)
		}
	}
}

func TestCreateProject_ExplicitName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cmd := appCommand(projectDir)
	cmd.Name = "Hello"
	if _, err := New(fsys).CreateProject(context.Background(), cmd); err != nil {
		t.Fatal(err)
	}
	if ok, _ := afero.Exists(fsys, filepath.Join(projectDir, "src/org/ruboto/test_app/HelloActivity.java")); !ok {
		t.Error("expected HelloActivity.java")
	}
}

func TestCreateProject_RejectsLowercaseName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cmd := appCommand(projectDir)
	cmd.Name = "hello"
	_, err := New(fsys).CreateProject(context.Background(), cmd)
	var rejected *naming.RejectedNameError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected *naming.RejectedNameError, got %v", err)
	}
	if ok, _ := afero.Exists(fsys, projectDir); ok {
		t.Error("project directory must not be created")
	}
}

func TestCreateProject_InvalidCommand(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*AppCommand)
	}{
		{"min sdk above target", func(c *AppCommand) { c.MinSDK = 15 }},
		{"unknown platform", func(c *AppCommand) { c.Platform = "EMBEDDED" }},
		{"lowercase platform", func(c *AppCommand) { c.Platform = "current" }},
		{"standalone without jruby", func(c *AppCommand) { c.Platform = manifest.PlatformStandalone }},
		{"single segment package", func(c *AppCommand) { c.Package = "app" }},
		{"missing path", func(c *AppCommand) { c.Path = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			cmd := appCommand(projectDir)
			tt.modify(&cmd)
			res, err := New(fsys).CreateProject(context.Background(), cmd)
			if err == nil {
				t.Fatal("expected error")
			}
			if res.ExitStatus != 1 {
				t.Errorf("ExitStatus = %d, want 1", res.ExitStatus)
			}
			if ok, _ := afero.Exists(fsys, projectDir); ok {
				t.Error("project directory must not be created")
			}
		})
	}
}

func TestCreateProject_NonEmptyTarget(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, filepath.Join(projectDir, "README"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(fsys).CreateProject(context.Background(), appCommand(projectDir))
	if !errors.Is(err, ErrTargetNotEmpty) {
		t.Fatalf("expected ErrTargetNotEmpty, got %v", err)
	}
}

func TestCreateProject_EmptyTarget(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := New(fsys).CreateProject(context.Background(), appCommand(projectDir)); err != nil {
		t.Fatalf("CreateProject into empty dir: %v", err)
	}
}

func TestCreateProject_RollbackRemovesEverything(t *testing.T) {
	base := afero.NewMemMapFs()
	fsys := &faultyFs{
		Fs:         base,
		failRename: map[string]bool{filepath.Join(projectDir, "ruboto.yml"): true},
	}

	_, err := New(fsys).CreateProject(context.Background(), appCommand(projectDir))
	if !errors.Is(err, errInjected) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if ok, _ := afero.Exists(base, projectDir); ok {
		t.Errorf("project directory left behind: %v", snapshot(t, base, projectDir))
	}
	if ok, _ := afero.Exists(base, "/work"); ok {
		t.Error("parent directory created by the commit left behind")
	}
}
