// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	gaudio "github.com/go-audio/audio"
)

// fakeAiff serves canned integer PCM.
type fakeAiff struct {
	data   []int
	format *gaudio.Format
	pos    int
}

func (f *fakeAiff) Format() *gaudio.Format { return f.format }

func (f *fakeAiff) PCMBuffer(buf *gaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func newFakeSource(data []int, bitDepth int) *source {
	return &source{
		dec: &fakeAiff{
			data:   data,
			format: &gaudio.Format{SampleRate: 22050, NumChannels: 1},
		},
		sampleRate: 22050,
		channels:   1,
		scale:      1.0 / float32(int64(1)<<(bitDepth-1)),
	}
}

func TestReadSamples_Scaling16Bit(t *testing.T) {
	t.Parallel()

	s := newFakeSource([]int{0, 16384, -16384, 32767, -32768}, 16)

	dst := make([]float32, 5)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples failed: %v", err)
	}
	if n != 5 {
		t.Fatalf("n = %d, want 5", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1.0}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %g, want %g", i, dst[i], want[i])
		}
	}
}

func TestReadSamples_Scaling8Bit(t *testing.T) {
	t.Parallel()

	s := newFakeSource([]int{64, -128}, 8)

	dst := make([]float32, 2)
	if n, err := s.ReadSamples(dst); n != 2 && err != nil {
		t.Fatalf("ReadSamples = (%d, %v)", n, err)
	}
	if math.Abs(float64(dst[0]-0.5)) > 1e-6 {
		t.Errorf("sample 0 = %g, want 0.5", dst[0])
	}
	if math.Abs(float64(dst[1]+1.0)) > 1e-6 {
		t.Errorf("sample 1 = %g, want -1.0", dst[1])
	}
}

func TestReadSamples_ShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	s := newFakeSource([]int{100, 200}, 16)

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("err = %v, want io.EOF on short read", err)
	}
}

func TestReadSamples_Exhausted(t *testing.T) {
	t.Parallel()

	s := newFakeSource(nil, 16)

	n, err := s.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("err = %v, want ErrNotAiffFile", err)
	}
}
