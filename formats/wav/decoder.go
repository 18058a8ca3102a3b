// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/allen2c/audio-seek/audio"
)

// pcmSource streams a PCM WAV file through the go-audio decoder,
// normalizing samples by the file's bit depth.
type pcmSource struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	scale      float32
	intBuf     *gaudio.IntBuffer
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &gaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) * s.scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

// Decoder adapts PCM WAV input to the audio.Source pipeline. It is the
// conversion-path entry point; compressed containers are read through
// Reader instead.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != tagPCM {
		return nil, ErrOnlyPCMSupported
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}

	return &pcmSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		scale:      1.0 / float32(int64(1)<<(bitDepth-1)),
	}, nil
}
