package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIconSizes(t *testing.T) {
	want := map[string]int64{"hdpi": 4032, "mdpi": 2548, "ldpi": 1748}
	for _, icon := range Icons {
		if icon.Size != want[icon.Density] {
			t.Errorf("%s size = %d, want %d", icon.Density, icon.Size, want[icon.Density])
		}
	}
}

func TestFiles(t *testing.T) {
	files, err := Files()
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}
	if len(files) != len(Icons) {
		t.Fatalf("got %d files, want %d", len(files), len(Icons))
	}

	sizes := make(map[string]int64)
	for _, f := range files {
		sizes[f.Path] = int64(len(f.Data))
	}
	for _, icon := range Icons {
		if sizes[icon.Path] != icon.Size {
			t.Errorf("%s: embedded size %d, want %d", icon.Path, sizes[icon.Path], icon.Size)
		}
	}
	for i := 1; i < len(files); i++ {
		if files[i-1].Path >= files[i].Path {
			t.Errorf("files not sorted: %q before %q", files[i-1].Path, files[i].Path)
		}
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)

	checks, err := Verify(context.Background(), dir)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	for i, c := range checks {
		if !c.OK() {
			t.Errorf("check %d failed: %v", i, c.Err)
		}
		if c.Icon != Icons[i] {
			t.Errorf("check %d icon = %+v, want %+v", i, c.Icon, Icons[i])
		}
		if c.Size != Icons[i].Size {
			t.Errorf("check %d size = %d", i, c.Size)
		}
	}
}

func TestVerify_Drift(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)

	// Truncate the mdpi icon.
	mdpi := filepath.Join(dir, "res", "drawable-mdpi", "ic_launcher.png")
	if err := os.WriteFile(mdpi, []byte("not an icon"), 0644); err != nil {
		t.Fatal(err)
	}

	checks, err := Verify(context.Background(), dir)
	var drift *DriftError
	if !errors.As(err, &drift) {
		t.Fatalf("Verify() error = %v, want *DriftError", err)
	}
	if drift.Want != 2548 || drift.Got != 11 {
		t.Errorf("drift = %+v", drift)
	}
	if !checks[0].OK() || checks[1].OK() || !checks[2].OK() {
		t.Errorf("unexpected check results: %+v", checks)
	}
}

func TestVerify_SameSizeDifferentContent(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)

	ldpi := filepath.Join(dir, "res", "drawable-ldpi", "ic_launcher.png")
	if err := os.WriteFile(ldpi, make([]byte, 1748), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Verify(context.Background(), dir)
	var drift *DriftError
	if !errors.As(err, &drift) {
		t.Fatalf("Verify() error = %v, want *DriftError", err)
	}
	if drift.Got != drift.Want {
		t.Errorf("drift sizes should match: %+v", drift)
	}
}

func TestVerify_Missing(t *testing.T) {
	_, err := Verify(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error for project without icons")
	}
}

func writeAssets(t *testing.T, dir string) {
	t.Helper()
	files, err := Files()
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, f.Data, 0644); err != nil {
			t.Fatal(err)
		}
	}
}
