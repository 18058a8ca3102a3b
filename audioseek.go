// SPDX-License-Identifier: EPL-2.0

package audioseek

import (
	"github.com/allen2c/audio-seek/formats/wav"
	"github.com/allen2c/audio-seek/segment"
	"github.com/allen2c/audio-seek/subtype"
	"github.com/allen2c/audio-seek/utils"
)

// ResolveBestSubtype picks the best block-seekable subtype for the
// requested bit depth, memoizing the result in the process-wide cache. See
// subtype.Resolver for the fallback rules.
func ResolveBestSubtype(bitsPerSample int) (subtype.Info, error) {
	return subtype.ResolveBestSubtype(bitsPerSample)
}

// TestSeekability reports whether the named subtype supports block-aligned
// random access. Unknown names return false.
func TestSeekability(name string) bool {
	return subtype.TestSeekability(name)
}

// ClearSubtypeCache empties the process-wide resolution cache.
func ClearSubtypeCache() {
	subtype.ClearCache()
}

// ReadAudioSegment extracts [startSec, startSec+durationSec) from the file
// at path as mono float32 samples. See segment.Read.
func ReadAudioSegment(path string, startSec, durationSec float64) ([]float32, error) {
	return segment.Read(path, startSec, durationSec)
}

// GetDuration reports the file's play time in seconds from header metadata
// alone.
func GetDuration(path string) (float64, error) {
	return segment.Duration(path)
}

// Write encodes mono float32 samples into a block-seekable compressed WAV
// at path, resolving the best subtype for the requested bit depth first.
// Samples outside [-1, 1] are clamped on conversion.
func Write(path string, samples []float32, sampleRate, bitsPerSample int) error {
	info, err := ResolveBestSubtype(bitsPerSample)
	if err != nil {
		return err
	}

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = utils.Float32ToInt16(s)
	}
	return wav.WriteFile(path, info.Subtype, sampleRate, pcm)
}
