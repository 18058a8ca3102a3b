// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WritePCM16 writes mono 16-bit PCM WAV at sampleRate through the go-audio
// encoder. Used for uncompressed output, e.g. extracted segments.
func WritePCM16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, tagPCM)

	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing PCM file: %w", err)
	}
	return nil
}
