// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// CollectMono collects an entire source as mono float32 samples at the
// target sample rate. The resampling stage is skipped when the source is
// already at the target rate, so same-rate input survives frame-exact.
func CollectMono(src Source, targetRate, bufferSize int) ([]float32, error) {
	s := src
	if src.SampleRate() != targetRate {
		s = NewResampler(src, targetRate)
	}
	mono := NewMonoMixer(s)

	var samples []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
	return samples, nil
}
