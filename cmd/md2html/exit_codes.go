package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Exit codes for the md2html CLI.
// 0=success, 1=usage/general, 2=file not found, 3=bad option, 4=bad arguments.
const (
	ExitSuccess      = 0 // Page generated, or help requested
	ExitUsage        = 1 // General/unexpected error
	ExitFileNotFound = 2 // Input or CSS file missing or unreadable
	ExitBadOption    = 3 // Unknown flag or malformed flag value
	ExitBadArgs      = 4 // No input, or too many positional arguments
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 2)
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, fileutil.ErrSourceTooLarge) {
		return ExitFileNotFound
	}

	// Flag parsing errors (exit 3)
	if errors.Is(err, ErrBadOption) {
		return ExitBadOption
	}

	// Argument errors (exit 4)
	if errors.Is(err, ErrNoInput) || errors.Is(err, ErrTooManyInputs) {
		return ExitBadArgs
	}

	// Everything else (config, validation, unexpected) shares the
	// general usage code.
	return ExitUsage
}
