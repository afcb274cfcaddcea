package main

// Notes:
// - exitCodeFor: we test every sentinel that maps to a code, plus wrapped
//   errors to verify the errors.Is chain.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	tex2txt "github.com/alnah/go-tex2txt"
	"github.com/alnah/go-tex2txt/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"not found", tex2txt.ErrNotFound, ExitIO},
		{"fs not exist", fs.ErrNotExist, ExitIO},
		{"permission denied", fs.ErrPermission, ExitIO},
		{"read input", tex2txt.ErrReadInput, ExitIO},
		{"read expressions", tex2txt.ErrReadExpressions, ExitIO},
		{"write output", tex2txt.ErrWriteOutput, ExitIO},
		{"wrapped not found", fmt.Errorf("thesis.tex: %w", tex2txt.ErrNotFound), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config invalid", config.ErrConfigInvalid, ExitUsage},
		{"invalid policy", tex2txt.ErrInvalidPolicy, ExitUsage},
		{"invalid expression", tex2txt.ErrInvalidExpression, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"cancelled", context.Canceled, ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions: 0=success, 1=general, 2=usage")
	}
	for _, code := range []int{ExitIO} {
		if code >= 126 {
			t.Errorf("custom exit code %d collides with shell-reserved range", code)
		}
	}
}
