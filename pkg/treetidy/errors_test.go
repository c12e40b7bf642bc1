package treetidy

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"placeholders", ErrPlaceholdersFound, ExitPlaceholdersFound},
		{"wrapped placeholders", fmt.Errorf("3 matches: %w", ErrPlaceholdersFound), ExitPlaceholdersFound},
		{"usage", fmt.Errorf("accepts at most 1 arg: %w", ErrUsage), ExitUsageError},
		{"config", fmt.Errorf("%w: empty extension", ErrInvalidConfig), ExitConfigError},
		{"root", fmt.Errorf("%w: /nope", ErrRootNotFound), ExitRootNotFound},
		{"relocation", fmt.Errorf("2 of 5: %w", ErrRelocationFailed), ExitRelocationFailed},
		{"unclassified", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDefaultsReturnFreshSlices(t *testing.T) {
	a := DefaultPlaceholderSkip()
	a[0] = "mutated"
	if DefaultPlaceholderSkip()[0] == "mutated" {
		t.Error("DefaultPlaceholderSkip should return a new slice on every call")
	}
}
