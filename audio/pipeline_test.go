// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestCollectMono_SameRatePassthrough(t *testing.T) {
	t.Parallel()

	const frames = 4000
	src := newSineSource(16000, 1, frames, 440)

	out, err := CollectMono(src, 16000, 1024)
	if err != nil {
		t.Fatalf("CollectMono failed: %v", err)
	}
	if len(out) != frames {
		t.Fatalf("output frames = %d, want %d (same-rate input must survive frame-exact)", len(out), frames)
	}
	for i, got := range out {
		want := float32(math.Sin(2 * math.Pi * 440 * float64(i) / 16000))
		if got != want {
			t.Fatalf("frame %d = %g, want %g", i, got, want)
		}
	}
}

func TestCollectMono_StereoDownmix(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 2, 800, 0.25)

	out, err := CollectMono(src, 8000, 256)
	if err != nil {
		t.Fatalf("CollectMono failed: %v", err)
	}
	if len(out) != 800 {
		t.Fatalf("output frames = %d, want 800", len(out))
	}
	for i, got := range out {
		if math.Abs(float64(got)-0.25) > 1e-6 {
			t.Fatalf("frame %d = %g, want 0.25", i, got)
		}
	}
}

func TestCollectMono_Resampled(t *testing.T) {
	t.Parallel()

	src := newSineSource(16000, 1, 16000, 200)

	out, err := CollectMono(src, 8000, 1024)
	if err != nil {
		t.Fatalf("CollectMono failed: %v", err)
	}
	if got := len(out); got < 7992 || got > 8000 {
		t.Errorf("output frames = %d, want roughly 8000", got)
	}
}

func TestCollectMono_EmptySource(t *testing.T) {
	t.Parallel()

	out, err := CollectMono(newSilentSource(8000, 1, 0), 8000, 256)
	if err != nil {
		t.Fatalf("CollectMono failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("output frames = %d, want 0", len(out))
	}
}
