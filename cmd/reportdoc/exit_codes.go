package main

import (
	"errors"
	"os"

	reportdoc "github.com/rod-americo/reportdoc"
	"github.com/rod-americo/reportdoc/internal/assets"
	"github.com/rod-americo/reportdoc/internal/config"
)

// Exit codes for the reportdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, unknown mode, config, or validation
	ExitIO      = 3 // Source not found, read or write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, reportdoc.ErrSourceNotFound) ||
		errors.Is(err, reportdoc.ErrReadSource) ||
		errors.Is(err, reportdoc.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrMissingMode) ||
		errors.Is(err, ErrUnknownMode) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, reportdoc.ErrEmptySource) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
