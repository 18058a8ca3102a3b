// SPDX-License-Identifier: EPL-2.0

package audioseek

import (
	"fmt"

	"github.com/allen2c/audio-seek/audio"
)

// Convert runs src through the resample and mono down-mix pipeline and
// writes the result as a block-seekable compressed WAV at path. The
// resampling stage is skipped when src is already at targetRate.
func Convert(src audio.Source, path string, targetRate, bitsPerSample int) error {
	samples, err := audio.CollectMono(src, targetRate, 4096)
	if err != nil {
		return fmt.Errorf("collecting samples: %w", err)
	}
	return Write(path, samples, targetRate, bitsPerSample)
}
