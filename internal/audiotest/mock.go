// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources and signal helpers
// for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio data for testing. It implements the
// audio.Source interface without importing it.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) float32
}

// NewMockSource creates a source producing totalFrames frames per channel by
// calling waveform for each frame/channel pair.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSineSource creates a source generating a sine wave at frequency Hz.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source producing a constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if avail := m.totalFrames - m.generated; frames > avail {
		frames = avail
	}

	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// Sine returns totalFrames mono samples of a scaled sine wave, matching what
// NewSineSource would stream.
func Sine(sampleRate, totalFrames int, frequency float64, amplitude float32) []float32 {
	out := make([]float32, totalFrames)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	}
	return out
}
