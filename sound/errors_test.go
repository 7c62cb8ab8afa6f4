package sound

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrUnsupportedFormat,
		ErrCanceled,
		ErrMalformed,
		ErrInvalidRange,
		ErrNoBeatDetection,
	}

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

func TestSentinelErrors_WrappedComparison(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan take.wav: %w", ErrMalformed)
	if !errors.Is(wrapped, ErrMalformed) {
		t.Error("errors.Is() failed for wrapped ErrMalformed")
	}

	other := errors.New("some other error")
	if errors.Is(other, ErrMalformed) {
		t.Error("errors.Is() matched an unrelated error")
	}
}
