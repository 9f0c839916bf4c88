package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDirHonorsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RUBOTO_HOME", dir)

	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestSetAndGet(t *testing.T) {
	t.Setenv("RUBOTO_HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if err := Set(KeyDefaultPlatform, "STANDALONE"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyDefaultPlatform); got != "STANDALONE" {
		t.Errorf("Get() = %q, want %q", got, "STANDALONE")
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv("RUBOTO_HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if got := GetInt(KeyDefaultTarget); got != 10 {
		t.Errorf("default target = %d, want 10", got)
	}
	if got := BuildTimeout(); got != 10*time.Minute {
		t.Errorf("BuildTimeout() = %v, want 10m", got)
	}
}

func TestBuildTimeoutFromEnv(t *testing.T) {
	t.Setenv("RUBOTO_HOME", t.TempDir())
	t.Setenv("RUBOTO_BUILD_TIMEOUT", "90s")
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if got := BuildTimeout(); got != 90*time.Second {
		t.Errorf("BuildTimeout() = %v, want 90s", got)
	}
}

func TestBuildTimeoutInvalidFallsBack(t *testing.T) {
	t.Setenv("RUBOTO_HOME", t.TempDir())
	t.Setenv("RUBOTO_BUILD_TIMEOUT", "soon")
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if got := BuildTimeout(); got != 10*time.Minute {
		t.Errorf("BuildTimeout() = %v, want fallback 10m", got)
	}
}
