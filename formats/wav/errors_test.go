package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotWav, ErrNotPCM, ErrUnsupportedBitDepth}
	for i, err := range sentinels {
		if err == nil {
			t.Fatalf("sentinel %d is nil", i)
		}
		for j, other := range sentinels {
			if i != j && errors.Is(err, other) {
				t.Errorf("errors.Is(%v, %v) = true, want distinct sentinels", err, other)
			}
		}
	}
}

func TestErrors_WrappedComparison(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan take.wav: %w", ErrNotPCM)
	if !errors.Is(wrapped, ErrNotPCM) {
		t.Error("errors.Is() failed for wrapped ErrNotPCM")
	}
}
