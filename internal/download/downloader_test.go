package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudioReturnsProducedFile(t *testing.T) {
	dir := t.TempDir()
	downloader := New(Config{OutputDirPath: dir, MaxFilesizeMB: 10})

	var capturedFormat string
	downloader.extract = func(ctx context.Context, link string, format string, outputPath string) error {
		capturedFormat = format
		return os.WriteFile(outputPath, []byte("mp3-bytes"), 0o644)
	}

	path, err := downloader.Audio(context.Background(), "https://youtu.be/abc123", "abc123")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abc123.mp3"), path)
	assert.FileExists(t, path)
	assert.Equal(t, "bestaudio[filesize<10M]", capturedFormat)
}

func TestAudioSizeCeilingFromConfig(t *testing.T) {
	downloader := New(Config{OutputDirPath: t.TempDir(), MaxFilesizeMB: 25})

	var capturedFormat string
	downloader.extract = func(ctx context.Context, link string, format string, outputPath string) error {
		capturedFormat = format
		return os.WriteFile(outputPath, nil, 0o644)
	}

	_, err := downloader.Audio(context.Background(), "https://youtu.be/abc123", "abc123")
	assert.NoError(t, err)
	assert.Equal(t, "bestaudio[filesize<25M]", capturedFormat)
}

func TestAudioRemovesPartialOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	downloader := New(Config{OutputDirPath: dir, MaxFilesizeMB: 10})
	downloader.extract = func(ctx context.Context, link string, format string, outputPath string) error {
		// Simulate an interrupted extraction leaving a partial file behind
		if err := os.WriteFile(outputPath, []byte("parti"), 0o644); err != nil {
			return err
		}

		return errors.New("network interrupted")
	}

	_, err := downloader.Audio(context.Background(), "https://youtu.be/abc123", "abc123")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "abc123.mp3"))
}

func TestAudioCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	downloader := New(Config{OutputDirPath: dir, MaxFilesizeMB: 10})
	downloader.extract = func(ctx context.Context, link string, format string, outputPath string) error {
		return os.WriteFile(outputPath, nil, 0o644)
	}

	_, err := downloader.Audio(context.Background(), "https://youtu.be/abc123", "abc123")
	assert.NoError(t, err)
	assert.DirExists(t, dir)
}
