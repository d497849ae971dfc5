package main

import (
	"fmt"
	"os"
	"testing"

	reportdoc "github.com/rod-americo/reportdoc"
	"github.com/rod-americo/reportdoc/internal/assets"
	"github.com/rod-americo/reportdoc/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"source not found", reportdoc.ErrSourceNotFound, ExitIO},
		{"read failure", reportdoc.ErrReadSource, ExitIO},
		{"write failure", reportdoc.ErrWriteOutput, ExitIO},
		{"os not exist", os.ErrNotExist, ExitIO},
		{"os permission", os.ErrPermission, ExitIO},
		{"missing mode", ErrMissingMode, ExitUsage},
		{"unknown mode", ErrUnknownMode, ExitUsage},
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"empty source", reportdoc.ErrEmptySource, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"unexpected error", fmt.Errorf("boom"), ExitGeneral},
		{"wrapped sentinel", fmt.Errorf("context: %w", reportdoc.ErrWriteOutput), ExitIO},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
