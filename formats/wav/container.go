// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	tagPCM      = 0x0001
	tagMSADPCM  = 0x0002
	tagIMAADPCM = 0x0011
)

// cidFact is the chunk ID of the fact chunk, which stores the true frame
// count for compressed formats.
var cidFact = [4]byte{'f', 'a', 'c', 't'}

// containerInfo is everything the reader needs from the RIFF headers. It is
// filled by walking the chunks up to (and not into) the data payload.
type containerInfo struct {
	formatTag      uint16
	channels       int
	sampleRate     int
	blockAlign     int
	bitsPerSample  int
	framesPerBlock int
	totalFrames    int
	dataStart      int64
	dataSize       int
}

// readContainerInfo parses the RIFF/WAVE headers from rs, stopping with the
// cursor positioned at the first byte of the data payload. Only header
// chunks are read; the payload itself is never touched.
func readContainerInfo(rs io.ReadSeeker) (*containerInfo, error) {
	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		if errors.Is(err, riff.ErrFmtNotSupported) {
			return nil, ErrNotWavFile
		}
		return nil, fmt.Errorf("parsing RIFF headers: %w", err)
	}

	ci := &containerInfo{}
	var (
		sawFmt     bool
		factFrames int
	)

	for {
		chunk, err := p.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoDataChunk
			}
			return nil, fmt.Errorf("walking chunks: %w", err)
		}

		switch chunk.ID {
		case riff.FmtID:
			if err := ci.parseFmt(chunk); err != nil {
				return nil, err
			}
			sawFmt = true
			chunk.Drain()

		case cidFact:
			var frames uint32
			if err := binary.Read(chunk, binary.LittleEndian, &frames); err != nil {
				return nil, fmt.Errorf("%w: fact", ErrMalformedChunk)
			}
			factFrames = int(frames)
			chunk.Drain()

		case riff.DataFormatID:
			if !sawFmt {
				return nil, ErrMalformedChunk
			}
			pos, err := rs.Seek(0, io.SeekCurrent)
			if err != nil {
				return nil, fmt.Errorf("locating data payload: %w", err)
			}
			ci.dataStart = pos
			ci.dataSize = chunk.Size
			ci.finish(factFrames)
			return ci, nil

		default:
			chunk.Drain()
		}
	}
}

// parseFmt reads the fmt chunk body, including the samples-per-block
// extension present in ADPCM files.
func (ci *containerInfo) parseFmt(chunk *riff.Chunk) error {
	var base struct {
		FormatTag     uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}
	if err := binary.Read(chunk, binary.LittleEndian, &base); err != nil {
		return fmt.Errorf("%w: fmt", ErrMalformedChunk)
	}

	ci.formatTag = base.FormatTag
	ci.channels = int(base.Channels)
	ci.sampleRate = int(base.SampleRate)
	ci.blockAlign = int(base.BlockAlign)
	ci.bitsPerSample = int(base.BitsPerSample)

	if ci.channels == 0 || ci.sampleRate == 0 || ci.blockAlign == 0 {
		return fmt.Errorf("%w: fmt", ErrMalformedChunk)
	}

	// Compressed formats append cbSize and, first in the extension, the
	// samples-per-block count.
	if chunk.Size > 16 {
		var ext struct {
			CbSize          uint16
			SamplesPerBlock uint16
		}
		if err := binary.Read(chunk, binary.LittleEndian, &ext); err == nil && ext.CbSize >= 2 {
			ci.framesPerBlock = int(ext.SamplesPerBlock)
		}
	}
	return nil
}

// finish derives block geometry and total frame count once the data chunk
// has been found. The fact chunk wins over size-derived frame counts since
// the final block may be padded.
func (ci *containerInfo) finish(factFrames int) {
	if ci.framesPerBlock == 0 {
		switch ci.formatTag {
		case tagIMAADPCM:
			ci.framesPerBlock = imaFramesPerBlock(ci.blockAlign / ci.channels)
		case tagMSADPCM:
			ci.framesPerBlock = msFramesPerBlock(ci.blockAlign / ci.channels)
		}
	}

	switch {
	case factFrames > 0:
		ci.totalFrames = factFrames
	case ci.framesPerBlock > 0:
		blocks := ci.dataSize / ci.blockAlign
		ci.totalFrames = blocks * ci.framesPerBlock
	case ci.bitsPerSample > 0:
		ci.totalFrames = ci.dataSize / (ci.channels * ci.bitsPerSample / 8)
	}
}
