// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/allen2c/audio-seek/subtype"
)

// defaultBlockAlign is the compressed block size used by the writer. 256
// bytes decodes to 505 frames per IMA block and 500 per MS block.
const defaultBlockAlign = 256

// WriteFile encodes mono PCM frames into a block-compressed WAV at path.
// An existing file is truncated. Empty input produces a header-only file.
func WriteFile(path string, st subtype.ID, sampleRate int, pcm []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating container: %w", err)
	}

	if err := Encode(f, st, sampleRate, pcm); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing container: %w", err)
	}
	return nil
}

// Encode writes a complete RIFF/WAVE stream to w: fmt chunk with the
// samples-per-block extension, fact chunk with the true frame count, and
// the block-aligned data payload. The final block is zero-padded; readers
// rely on the fact chunk to stop at the real frame count.
func Encode(w io.Writer, st subtype.ID, sampleRate int, pcm []int16) error {
	var (
		tag            uint16
		framesPerBlock int
	)
	switch st {
	case subtype.IMAADPCM:
		tag = tagIMAADPCM
		framesPerBlock = imaFramesPerBlock(defaultBlockAlign)
	case subtype.MSADPCM:
		tag = tagMSADPCM
		framesPerBlock = msFramesPerBlock(defaultBlockAlign)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedSubtype, st)
	}

	blocks := (len(pcm) + framesPerBlock - 1) / framesPerBlock
	dataSize := blocks * defaultBlockAlign

	if err := writeHeader(w, tag, sampleRate, framesPerBlock, len(pcm), dataSize); err != nil {
		return err
	}

	block := make([]byte, defaultBlockAlign)
	stepIndex := 0
	for i := 0; i < blocks; i++ {
		lo := i * framesPerBlock
		hi := min(lo+framesPerBlock, len(pcm))

		switch st {
		case subtype.IMAADPCM:
			stepIndex = imaEncodeBlock(pcm[lo:hi], block, stepIndex)
		case subtype.MSADPCM:
			msEncodeBlock(pcm[lo:hi], block)
		}

		if _, err := w.Write(block); err != nil {
			return fmt.Errorf("writing block %d: %w", i, err)
		}
	}
	return nil
}

// writeHeader emits the RIFF header, fmt chunk (with extension), and fact
// chunk, then the data chunk header.
func writeHeader(w io.Writer, tag uint16, sampleRate, framesPerBlock, totalFrames, dataSize int) error {
	var ext []byte
	switch tag {
	case tagIMAADPCM:
		ext = make([]byte, 4)
		binary.LittleEndian.PutUint16(ext[0:2], 2) // cbSize
		binary.LittleEndian.PutUint16(ext[2:4], uint16(framesPerBlock))
	case tagMSADPCM:
		ext = make([]byte, 6+len(msCoefs)*4)
		binary.LittleEndian.PutUint16(ext[0:2], uint16(len(ext)-2)) // cbSize
		binary.LittleEndian.PutUint16(ext[2:4], uint16(framesPerBlock))
		binary.LittleEndian.PutUint16(ext[4:6], uint16(len(msCoefs)))
		for i, c := range msCoefs {
			binary.LittleEndian.PutUint16(ext[6+i*4:], uint16(int16(c[0])))
			binary.LittleEndian.PutUint16(ext[8+i*4:], uint16(int16(c[1])))
		}
	}

	fmtSize := 16 + len(ext)
	// riff(4) + fmt(8+fmtSize) + fact(8+4) + data(8+dataSize)
	riffSize := 4 + 8 + fmtSize + 12 + 8 + dataSize

	byteRate := sampleRate * defaultBlockAlign / framesPerBlock

	header := make([]byte, 0, 44+len(ext))
	buf := [4]byte{}
	put32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:], v)
		header = append(header, buf[:]...)
	}
	put16 := func(v uint16) {
		binary.LittleEndian.PutUint16(buf[:2], v)
		header = append(header, buf[:2]...)
	}

	header = append(header, "RIFF"...)
	put32(uint32(riffSize))
	header = append(header, "WAVE"...)

	header = append(header, "fmt "...)
	put32(uint32(fmtSize))
	put16(tag)
	put16(1) // mono
	put32(uint32(sampleRate))
	put32(uint32(byteRate))
	put16(defaultBlockAlign)
	put16(4) // bits per sample
	header = append(header, ext...)

	header = append(header, "fact"...)
	put32(4)
	put32(uint32(totalFrames))

	header = append(header, "data"...)
	put32(uint32(dataSize))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}
