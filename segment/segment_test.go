// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"errors"
	"io/fs"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/allen2c/audio-seek/formats/wav"
	"github.com/allen2c/audio-seek/internal/audiotest"
	"github.com/allen2c/audio-seek/subtype"
	"github.com/allen2c/audio-seek/utils"
)

const (
	testRate = 16000
	testFreq = 440.0
)

// writeSineFile writes a mono sine-wave IMA ADPCM container and returns its
// path plus the exact samples that went in.
func writeSineFile(t *testing.T, seconds float64) (string, []float32) {
	t.Helper()

	frames := int(seconds * testRate)
	samples := audiotest.Sine(testRate, frames, testFreq, 0.5)

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = utils.Float32ToInt16(s)
	}

	path := filepath.Join(t.TempDir(), "sine.wav")
	if err := wav.WriteFile(path, subtype.IMAADPCM, testRate, pcm); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path, samples
}

func segmentMSE(got []float32, want []float32) float64 {
	var sum float64
	for i := range got {
		d := float64(got[i]) - float64(want[i])
		sum += d * d
	}
	return sum / float64(len(got))
}

func TestRead_SegmentLengthLaw(t *testing.T) {
	t.Parallel()

	path, _ := writeSineFile(t, 1.0)

	tests := []struct {
		start, dur float64
	}{
		{0.0, 0.3},
		{0.5, 0.2},
		{0.8, 0.15},
		{0.2, 0.3},
		{0.0, 1.0},
	}
	for _, tt := range tests {
		got, err := Read(path, tt.start, tt.dur)
		if err != nil {
			t.Fatalf("Read(%v, %v): %v", tt.start, tt.dur, err)
		}
		want := int(math.Round(tt.dur * testRate))
		if len(got) != want {
			t.Errorf("Read(%v, %v) returned %d frames, want %d", tt.start, tt.dur, len(got), want)
		}
	}
}

func TestRead_Accuracy(t *testing.T) {
	t.Parallel()

	path, samples := writeSineFile(t, 1.0)

	got, err := Read(path, 0.2, 0.3)
	if err != nil {
		t.Fatal(err)
	}

	start := int(0.2 * testRate)
	want := samples[start : start+len(got)]
	if mse := segmentMSE(got, want); mse > 0.01 {
		t.Errorf("segment MSE = %g, want < 0.01", mse)
	}
}

func TestRead_PastEndReturnsEmpty(t *testing.T) {
	t.Parallel()

	path, _ := writeSineFile(t, 1.0)

	got, err := Read(path, 10.0, 1.0)
	if err != nil {
		t.Fatalf("Read past end: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d frames past end, want 0", len(got))
	}
}

func TestRead_OverrunTruncates(t *testing.T) {
	t.Parallel()

	path, _ := writeSineFile(t, 1.0)

	got, err := Read(path, 0.9, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	want := int(math.Round(0.1 * testRate))
	if len(got) != want {
		t.Errorf("got %d frames, want %d (truncated to end of data)", len(got), want)
	}
}

func TestRead_MultipleWindowsSameFile(t *testing.T) {
	t.Parallel()

	path, _ := writeSineFile(t, 1.0)

	for _, w := range [][2]float64{{0.0, 0.1}, {0.3, 0.1}, {0.6, 0.1}, {0.2, 0.1}} {
		got, err := Read(path, w[0], w[1])
		if err != nil {
			t.Fatalf("Read(%v, %v): %v", w[0], w[1], err)
		}
		if len(got) == 0 {
			t.Errorf("Read(%v, %v) returned no frames", w[0], w[1])
		}
	}
}

func TestRead_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Read(filepath.Join(t.TempDir(), "nonexistent.wav"), 0, 1)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestRead_NegativeWindow(t *testing.T) {
	t.Parallel()

	path, _ := writeSineFile(t, 0.1)

	if _, err := Read(path, -0.5, 0.1); !errors.Is(err, ErrNegativeWindow) {
		t.Errorf("negative start: err = %v, want ErrNegativeWindow", err)
	}
	if _, err := Read(path, 0, -0.1); !errors.Is(err, ErrNegativeWindow) {
		t.Errorf("negative duration: err = %v, want ErrNegativeWindow", err)
	}
}

func TestRead_ZeroDuration(t *testing.T) {
	t.Parallel()

	path, _ := writeSineFile(t, 0.5)

	got, err := Read(path, 0.1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("zero-duration window returned %d frames", len(got))
	}
}

func TestDuration_Accuracy(t *testing.T) {
	t.Parallel()

	path, _ := writeSineFile(t, 1.0)

	d, err := Duration(path)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-1.0) > 0.05 {
		t.Errorf("Duration = %g, want 1.0 ±0.05", d)
	}
}

func TestDuration_HeaderOnly(t *testing.T) {
	t.Parallel()

	// 60 seconds of audio; probing must stay fast since only headers are
	// read.
	path, _ := writeSineFile(t, 60.0)

	start := time.Now()
	d, err := Duration(path)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-60.0) > 0.05 {
		t.Errorf("Duration = %g, want 60.0 ±0.05", d)
	}
	if elapsed > 100*time.Millisecond {
		t.Errorf("Duration took %v, want < 100ms", elapsed)
	}
}

func TestDuration_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Duration(filepath.Join(t.TempDir(), "nonexistent.wav"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
