package main

import (
	"errors"
	"io/fs"

	tex2txt "github.com/alnah/go-tex2txt"
	"github.com/alnah/go-tex2txt/internal/config"
)

// Exit codes for the tex2txt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error, including interruption
	ExitUsage   = 2 // Invalid arguments, config, or policy
	ExitIO      = 3 // Missing file, permission denied, read or write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, tex2txt.ErrInvalidPolicy) ||
		errors.Is(err, tex2txt.ErrInvalidExpression) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, tex2txt.ErrNotFound) ||
		errors.Is(err, tex2txt.ErrReadInput) ||
		errors.Is(err, tex2txt.ErrReadExpressions) ||
		errors.Is(err, tex2txt.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
