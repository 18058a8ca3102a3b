// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV containers, with a focus on
// block-compressed ADPCM formats that support random access.
//
// The Reader is the block-level codec driver: it parses the RIFF headers
// (never touching the payload), reports the container's block geometry and
// frame count, seeks to any block at constant cost, and decodes one block
// at a time. IMA ADPCM (format tag 0x0011) and Microsoft ADPCM (0x0002)
// are supported; both store the full decoder state in each block header,
// which is what makes them seekable.
//
// WriteFile and Encode produce block-compressed containers with a fact
// chunk recording the true frame count, since the final block is padded to
// full size.
//
// For the conversion path, Decoder streams ordinary PCM WAV input into the
// audio.Source pipeline via go-audio, and WritePCM16 writes uncompressed
// mono output.
package wav
