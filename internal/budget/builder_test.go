package budget

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestProbe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app-debug.apk")
	if err := os.WriteFile(path, make([]byte, 4096), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if a.SizeBytes != 4096 || a.Path != path {
		t.Errorf("Probe = %+v", a)
	}
}

func TestProbe_Missing(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "missing.apk"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestProbe_Directory(t *testing.T) {
	if _, err := Probe(t.TempDir()); err == nil {
		t.Error("expected error probing a directory")
	}
}

// fakeAnt puts an executable named ant on PATH running the given script body.
func fakeAnt(t *testing.T, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows, skipping")
	}
	bin := t.TempDir()
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(bin, "ant"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestAntBuilder_Build(t *testing.T) {
	fakeAnt(t, `mkdir -p bin && printf '%2048s' '' > bin/TestApp-debug.apk`)

	dir := t.TempDir()
	b := &AntBuilder{AppName: "TestApp", Timeout: 10 * time.Second}
	a, err := b.Build(context.Background(), dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if a.SizeBytes != 2048 {
		t.Errorf("SizeBytes = %d, want 2048", a.SizeBytes)
	}
	if a.Path != ArtifactPath(dir, "TestApp") {
		t.Errorf("Path = %q", a.Path)
	}
}

func TestAntBuilder_Failure(t *testing.T) {
	fakeAnt(t, `echo "BUILD FAILED" >&2; exit 3`)

	b := &AntBuilder{AppName: "TestApp"}
	_, err := b.Build(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error from failing build")
	}
	if !strings.Contains(err.Error(), "status 3") || !strings.Contains(err.Error(), "BUILD FAILED") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAntBuilder_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	b := &AntBuilder{AppName: "TestApp"}
	_, err := b.Build(context.Background(), t.TempDir())
	if !errors.Is(err, ErrToolchainNotFound) {
		t.Errorf("expected ErrToolchainNotFound, got %v", err)
	}
}
