package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"
	"github.com/tunegrab/tunegrab/pkg/logger"
)

var log = logger.Get("Download")

type (
	Config struct {
		// OutputDirPath is where extracted audio files are written. In
		// stream delivery mode the files only live for the duration of
		// one request; in static mode they accumulate here.
		OutputDirPath string `yaml:"output_dir" env:"DOWNLOAD_DIR" env-default:"downloads"`
		// MaxFilesizeMB caps the size of the audio stream yt-dlp is
		// allowed to select.
		MaxFilesizeMB int `yaml:"max_filesize_mb" env:"DOWNLOAD_MAX_FILESIZE_MB" env-default:"10"`
	}

	// extractFn runs the external extraction tool. It's a seam so the
	// file lifecycle can be tested without a yt-dlp binary present.
	extractFn func(ctx context.Context, link string, format string, outputPath string) error

	// Downloader turns a video link into a local mp3 by selecting the
	// best audio-only stream under the configured size ceiling and
	// letting yt-dlp transcode it.
	Downloader struct {
		config  Config
		extract extractFn
	}
)

func New(config Config) *Downloader {
	return &Downloader{config: config, extract: runYtdlp}
}

// Install ensures a yt-dlp binary is available, downloading one when the
// host system has none. Called once at service startup.
func Install(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("failed to provision yt-dlp: %w", err)
	}

	return nil
}

// Audio extracts the audio for the provided link to
// <output_dir>/<videoID>.mp3 and returns the path of the produced file.
// The caller owns the file from that point on. A failed extraction
// removes any partial output before returning.
func (downloader *Downloader) Audio(ctx context.Context, link string, videoID string) (string, error) {
	if err := os.MkdirAll(downloader.config.OutputDirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	outputPath := filepath.Join(downloader.config.OutputDirPath, videoID+".mp3")
	format := fmt.Sprintf("bestaudio[filesize<%dM]", downloader.config.MaxFilesizeMB)

	log.Emit(logger.NEW, "Extracting audio for %s to %s\n", videoID, outputPath)
	if err := downloader.extract(ctx, link, format, outputPath); err != nil {
		os.Remove(outputPath)
		return "", err
	}

	return outputPath, nil
}

func runYtdlp(ctx context.Context, link string, format string, outputPath string) error {
	dl := ytdlp.New().
		Format(format).
		ExtractAudio().
		AudioFormat("mp3").
		Output(outputPath).
		Quiet()

	if _, err := dl.Run(ctx, link); err != nil {
		return fmt.Errorf("yt-dlp extraction failed: %w", err)
	}

	return nil
}
