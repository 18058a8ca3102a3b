// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/allen2c/audio-seek/subtype"
)

// Reader is the block-level codec driver for compressed WAV containers. It
// exposes the container's geometry and decodes one block at a time, with
// constant-cost seeking to any block index.
type Reader struct {
	rs     io.ReadSeeker
	closer io.Closer

	info   containerInfo
	st     subtype.ID
	decode func(block []byte, dst []int16) int

	block []byte
	frame int // absolute frame position of the decode cursor
}

// Open opens the container at path. A missing file surfaces the underlying
// fs.ErrNotExist. The returned Reader owns the file handle and releases it
// on Close.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening container: %w", err)
	}

	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader parses headers from rs and positions the decode cursor at frame
// zero. rs stays owned by the caller.
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	ci, err := readContainerInfo(rs)
	if err != nil {
		return nil, err
	}
	if ci.channels != 1 {
		return nil, ErrMonoOnly
	}

	r := &Reader{
		rs:    rs,
		info:  *ci,
		block: make([]byte, ci.blockAlign),
	}

	switch ci.formatTag {
	case tagIMAADPCM:
		r.st = subtype.IMAADPCM
		r.decode = imaDecodeBlock
	case tagMSADPCM:
		r.st = subtype.MSADPCM
		r.decode = msDecodeBlock
	default:
		return nil, fmt.Errorf("%w: format tag 0x%04x", ErrUnsupportedSubtype, ci.formatTag)
	}
	return r, nil
}

func (r *Reader) SampleRate() int     { return r.info.sampleRate }
func (r *Reader) TotalFrames() int    { return r.info.totalFrames }
func (r *Reader) BlockFrames() int    { return r.info.framesPerBlock }
func (r *Reader) Channels() int       { return r.info.channels }
func (r *Reader) Subtype() subtype.ID { return r.st }

// Duration reports the container's play time in seconds, from header
// metadata alone.
func (r *Reader) Duration() float64 {
	return float64(r.info.totalFrames) / float64(r.info.sampleRate)
}

// SeekToBlock positions the decode cursor at the start of the given block.
// The cost is a single seek, independent of file size.
func (r *Reader) SeekToBlock(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: block %d", ErrInvalidBlock, index)
	}

	off := r.info.dataStart + int64(index)*int64(r.info.blockAlign)
	if _, err := r.rs.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to block %d: %w", index, err)
	}

	r.frame = index * r.info.framesPerBlock
	if r.frame > r.info.totalFrames {
		r.frame = r.info.totalFrames
	}
	return nil
}

// DecodeBlock decodes the next block into dst and returns the number of
// frames produced, capped at the container's total frame count so trailing
// encoder padding is never surfaced. dst must hold BlockFrames values. At
// end of data it returns io.EOF.
func (r *Reader) DecodeBlock(dst []int16) (int, error) {
	if r.frame >= r.info.totalFrames {
		return 0, io.EOF
	}
	if len(dst) < r.info.framesPerBlock {
		return 0, ErrBlockBufferTooSmall
	}

	n, err := io.ReadFull(r.rs, r.block)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("reading block: %w", err)
		}
		// Final block of a file written without padding.
	}

	decoded := r.decode(r.block[:n], dst)
	if decoded == 0 {
		return 0, fmt.Errorf("decoding block: %w", io.ErrUnexpectedEOF)
	}
	if remain := r.info.totalFrames - r.frame; decoded > remain {
		decoded = remain
	}
	r.frame += decoded
	return decoded, nil
}

// Close releases the file handle when the Reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	if err := r.closer.Close(); err != nil {
		return fmt.Errorf("closing container: %w", err)
	}
	return nil
}
