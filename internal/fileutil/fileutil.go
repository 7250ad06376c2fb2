// Package fileutil provides file and stream utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxSourceSize caps how much input is read from a stream (default 64MB).
// A single page source larger than this is almost certainly a mistake.
var MaxSourceSize = 64 << 20

// ErrSourceTooLarge is returned when a stream exceeds MaxSourceSize.
var ErrSourceTooLarge = errors.New("input exceeds maximum size")

// ReadAll reads a stream to the end, bounded by MaxSourceSize.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(MaxSourceSize)+1))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if len(data) > MaxSourceSize {
		return "", fmt.Errorf("%w: max %d bytes", ErrSourceTooLarge, MaxSourceSize)
	}
	return string(data), nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
