package budget

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrToolchainNotFound is returned when the packaging tool is not on PATH.
var ErrToolchainNotFound = errors.New("packaging toolchain not found")

// Artifact is a packaged build output.
type Artifact struct {
	Path      string
	SizeBytes int64
}

// Builder packages a project. Implementations are opaque, failable,
// synchronous calls; the scaffolding engine does not own their behavior.
type Builder interface {
	Build(ctx context.Context, projectDir string) (*Artifact, error)
}

// ArtifactPath returns the debug package location for an app.
func ArtifactPath(projectDir, appName string) string {
	return filepath.Join(projectDir, "bin", appName+"-debug.apk")
}

// Probe returns the artifact at path without building anything.
func Probe(path string) (*Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("packaged artifact %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("packaged artifact %s is not a regular file", path)
	}
	return &Artifact{Path: path, SizeBytes: info.Size()}, nil
}

// AntBuilder runs `ant debug` in the project directory.
type AntBuilder struct {
	AppName string
	Timeout time.Duration

	// Stdout and Stderr receive the tool's output; defaults discard it.
	Stdout io.Writer
	Stderr io.Writer
}

// Build runs the packaging tool and probes the resulting artifact.
func (b *AntBuilder) Build(ctx context.Context, projectDir string) (*Artifact, error) {
	antBin, err := exec.LookPath("ant")
	if err != nil {
		return nil, fmt.Errorf("%w: ant: %v", ErrToolchainNotFound, err)
	}

	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}

	stdout := b.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := b.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	var stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, antBin, "debug")
	cmd.Dir = projectDir
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	slog.Info("building package", "dir", projectDir, "tool", antBin, "timeout", b.Timeout)
	start := time.Now()

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("ant debug timed out after %s", b.Timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("ant debug exited with status %d: %s", exitErr.ExitCode(), lastLine(stderrBuf.String()))
		}
		return nil, fmt.Errorf("running ant debug: %w", err)
	}

	slog.Info("package built", "dir", projectDir, "elapsed", time.Since(start))
	return Probe(ArtifactPath(projectDir, b.AppName))
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
