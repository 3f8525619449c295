package youtube

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// unknownTitle is returned when the source metadata carries no title.
const unknownTitle = "Unknown Title"

// CommandRunner executes an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w\nstderr: %s", name, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Downloader resolves video titles and downloads audio through yt-dlp.
type Downloader struct {
	bin       string
	mediaRoot string
	runner    CommandRunner
}

// NewDownloader creates a Downloader. bin is the yt-dlp executable path and
// mediaRoot the directory downloaded audio is written to.
func NewDownloader(bin, mediaRoot string) *Downloader {
	return &Downloader{bin: bin, mediaRoot: mediaRoot, runner: ExecRunner{}}
}

// NewDownloaderWithRunner is like NewDownloader but with a custom runner,
// used by tests to avoid shelling out.
func NewDownloaderWithRunner(bin, mediaRoot string, runner CommandRunner) *Downloader {
	return &Downloader{bin: bin, mediaRoot: mediaRoot, runner: runner}
}

// FetchTitle probes the video metadata without downloading any media and
// returns the display title. A video without a title resolves to
// "Unknown Title".
func (d *Downloader) FetchTitle(ctx context.Context, link string) (string, error) {
	out, err := d.runner.Run(ctx, d.bin,
		"--no-download",
		"--no-warnings",
		"--print", "%(title)s",
		link)
	if err != nil {
		return "", fmt.Errorf("fetching title: %w", err)
	}

	title := strings.TrimSpace(string(out))
	// yt-dlp prints NA for fields missing from the metadata.
	if title == "" || title == "NA" {
		return unknownTitle, nil
	}
	return title, nil
}

// DownloadAudio downloads the best available audio stream and transcodes it
// to a 192k mp3 under the media root. The output name is a fresh UUID, so
// concurrent requests for the same video never collide. The caller owns the
// returned file and is responsible for removing it.
func (d *Downloader) DownloadAudio(ctx context.Context, link string) (string, error) {
	if err := os.MkdirAll(d.mediaRoot, 0755); err != nil {
		return "", fmt.Errorf("creating media root: %w", err)
	}

	outputPath := filepath.Join(d.mediaRoot, uuid.NewString()+".mp3")

	_, err := d.runner.Run(ctx, d.bin,
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"-o", outputPath,
		link)
	if err != nil {
		return "", fmt.Errorf("downloading audio: %w", err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", fmt.Errorf("audio file missing after download: %w", err)
	}
	return outputPath, nil
}
