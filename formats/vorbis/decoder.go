// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/allen2c/audio-seek/audio"
)

// oggReader abstracts oggvorbis.Reader for testing.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis already produces interleaved float32 in [-1,1]; it only
	// requires the buffer length to be a multiple of the channel count.
	need := len(dst) / s.channels * s.channels
	if need == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:need])
	if n == 0 && err != nil {
		return 0, err
	}
	return n, err
}

// Decoder adapts Ogg Vorbis input to the audio.Source pipeline.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
