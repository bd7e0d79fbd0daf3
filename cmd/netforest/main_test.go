package main

import (
	"fmt"
	"testing"

	"github.com/matzehuels/netforest/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidNotation, "x"), 2},
		{errors.New(errors.ErrCodeNotFound, "x"), 2},
		{fmt.Errorf("wrapped: %w", errors.New(errors.ErrCodeFileNotFound, "x")), 2},
		{errors.New(errors.ErrCodeUnsupported, "x"), 1},
		{errors.New(errors.ErrCodeInternal, "x"), 1},
		{fmt.Errorf("plain"), 1},
	}

	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
