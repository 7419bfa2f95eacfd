package prysm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Upload errors, reported before the content is read.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileTooLarge      = errors.New("file too large")
)

// UploadLimits constrains the trade files accepted by [ReadUpload].
type UploadLimits struct {
	MaxSize int64    // in bytes, 0 for no limit
	Formats []string // accepted extensions like ".csv", empty accepts any
}

// DefaultUploadLimits accepts ".csv" files up to 10 MiB.
var DefaultUploadLimits = UploadLimits{MaxSize: 10 << 20, Formats: []string{".csv"}}

// ReadUpload returns the full content of the trade file at path.
func ReadUpload(path string, limits UploadLimits) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if len(limits.Formats) > 0 && !slices.Contains(limits.Formats, ext) {
		return "", fmt.Errorf("%w %q, want one of %s", ErrUnsupportedFormat, ext, strings.Join(limits.Formats, ", "))
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot read trades file: %w", err)
	}
	if limits.MaxSize > 0 && info.Size() > limits.MaxSize {
		return "", fmt.Errorf("%w: %q is %d bytes, maximum is %d", ErrFileTooLarge, path, info.Size(), limits.MaxSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read trades file: %w", err)
	}
	return string(content), nil
}
