package encoder

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// FFmpeg constants
const (
	FFmpegCommand   = "ffmpeg"
	BundledDir      = "ffmpeg"
	VersionFlag     = "-version"
	WindowsExeExt   = ".exe"
	ProbeTimeout    = 10 * time.Second
	AudioFormat     = "mp3"
	AudioQualityMax = "0"
)

// ErrNotFound is returned when no ffmpeg binary can be located
var ErrNotFound = errors.New("ffmpeg not found")

// Source tells where a located binary came from
type Source string

const (
	SourceConfigured Source = "configured"
	SourceBundled    Source = "bundled"
	SourcePath       Source = "path"
)

// Location is a resolved ffmpeg binary
type Location struct {
	Path   string
	Source Source
}

// Locator resolves ffmpeg in order: configured path, bundled binary next to
// the executable, then PATH.
type Locator struct {
	configured string

	// overridable in tests
	executable func() (string, error)
	lookPath   func(string) (string, error)
	goos       string
}

// NewLocator creates a locator that prefers configured when it is non-empty
func NewLocator(configured string) *Locator {
	return &Locator{
		configured: strings.TrimSpace(configured),
		executable: os.Executable,
		lookPath:   exec.LookPath,
		goos:       runtime.GOOS,
	}
}

// BinaryName returns the platform file name of ffmpeg
func (l *Locator) BinaryName() string {
	if l.goos == "windows" {
		return FFmpegCommand + WindowsExeExt
	}
	return FFmpegCommand
}

// Locate returns the first ffmpeg binary found
func (l *Locator) Locate() (Location, error) {
	if l.configured != "" {
		path := l.configured
		// a directory is accepted the same way yt-dlp accepts --ffmpeg-location
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, l.BinaryName())
		}
		if isFile(path) {
			return Location{Path: path, Source: SourceConfigured}, nil
		}
		return Location{}, fmt.Errorf("%w: configured path %s", ErrNotFound, l.configured)
	}

	if exe, err := l.executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), BundledDir, l.BinaryName())
		if isFile(bundled) {
			return Location{Path: bundled, Source: SourceBundled}, nil
		}
	}

	if path, err := l.lookPath(FFmpegCommand); err == nil {
		return Location{Path: path, Source: SourcePath}, nil
	}

	return Location{}, fmt.Errorf("%w: install ffmpeg or place it in %s/ next to the executable", ErrNotFound, BundledDir)
}

// Probe runs `ffmpeg -version` and returns the first line of its output
func Probe(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, VersionFlag)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to run %s %s: %w", path, VersionFlag, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", fmt.Errorf("empty version output from %s", path)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
