// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"fmt"
	"io"
	"math"

	"github.com/allen2c/audio-seek/formats/wav"
)

// Read extracts the window [startSec, startSec+durationSec) from the
// block-compressed container at path and returns it as mono float32
// samples.
//
// Times are converted to frames with the container's own sample rate. A
// window starting at or past end-of-data returns an empty segment with no
// error; a window overrunning the end is truncated silently. Otherwise the
// result holds exactly round(durationSec*sampleRate) frames.
//
// Only the blocks covering the window are decoded: the read costs seek plus
// a block count proportional to the window length, independent of where in
// the file the window lies.
//
// Samples are normalized by 1/32768 and returned without clamping; codec
// quantization may overshoot ±1.0 by a hair and is passed through.
func Read(path string, startSec, durationSec float64) ([]float32, error) {
	if startSec < 0 || durationSec < 0 {
		return nil, fmt.Errorf("%w: start=%v duration=%v", ErrNegativeWindow, startSec, durationSec)
	}

	r, err := wav.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rate := float64(r.SampleRate())
	start := int(math.Round(startSec * rate))
	end := start + int(math.Round(durationSec*rate))

	total := r.TotalFrames()
	if start >= total {
		// Seeking wholly past end-of-data is a normal outcome.
		return []float32{}, nil
	}
	if end > total {
		end = total
	}

	blockFrames := r.BlockFrames()
	firstBlock := start / blockFrames
	if err := r.SeekToBlock(firstBlock); err != nil {
		return nil, err
	}

	out := make([]float32, end-start)
	block := make([]int16, blockFrames)
	cursor := firstBlock * blockFrames
	filled := 0

	for filled < len(out) {
		n, err := r.DecodeBlock(block)
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("decoding segment: %w", err)
		}

		// Trim the block to the part inside the window.
		lo := 0
		if start > cursor {
			lo = start - cursor
		}
		hi := n
		if end-cursor < hi {
			hi = end - cursor
		}
		for i := lo; i < hi; i++ {
			out[filled] = float32(block[i]) / 32768.0
			filled++
		}
		cursor += n
	}

	return out, nil
}

// Duration reports the container's play time in seconds. Only header
// metadata is read, so the cost is a small constant regardless of file
// size. A missing file surfaces fs.ErrNotExist.
func Duration(path string) (float64, error) {
	r, err := wav.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return r.Duration(), nil
}
