// SPDX-License-Identifier: EPL-2.0

package audioseek

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/allen2c/audio-seek/formats/wav"
	"github.com/allen2c/audio-seek/internal/audiotest"
)

func TestConvert_SameRateMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(16000, 1, 8000, 440)
	path := filepath.Join(t.TempDir(), "mono.wav")

	if err := Convert(src, path, 16000, 4); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	d, err := GetDuration(path)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-0.5) > 0.05 {
		t.Errorf("Duration = %g, want 0.5 ±0.05", d)
	}
}

func TestConvert_StereoToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 2, 4000, 0.25)
	path := filepath.Join(t.TempDir(), "downmix.wav")

	if err := Convert(src, path, 16000, 4); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	r, err := wav.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.Channels() != 1 {
		t.Errorf("Channels = %d, want 1", r.Channels())
	}
	if r.TotalFrames() != 4000 {
		t.Errorf("TotalFrames = %d, want 4000", r.TotalFrames())
	}

	got, err := ReadAudioSegment(path, 0.05, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range got {
		if math.Abs(float64(s)-0.25) > 0.05 {
			t.Fatalf("frame %d = %g, want ≈0.25 (average of both channels)", i, s)
		}
	}
}

func TestConvert_Downsample(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(16000, 1, 16000, 440)
	path := filepath.Join(t.TempDir(), "resampled.wav")

	if err := Convert(src, path, 8000, 4); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	r, err := wav.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate = %d, want 8000", r.SampleRate())
	}

	d, err := GetDuration(path)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-1.0) > 0.05 {
		t.Errorf("Duration = %g, want 1.0 ±0.05", d)
	}
}

func TestConvert_AllDepths(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{2, 3, 4, 5} {
		src := audiotest.NewSineSource(16000, 1, 1600, 440)
		path := filepath.Join(t.TempDir(), "converted.wav")

		if err := Convert(src, path, 16000, bits); err != nil {
			t.Fatalf("Convert(bits=%d): %v", bits, err)
		}
		if _, err := GetDuration(path); err != nil {
			t.Fatalf("GetDuration(bits=%d): %v", bits, err)
		}
	}
}
