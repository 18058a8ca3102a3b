// SPDX-License-Identifier: EPL-2.0

package wav

import "encoding/binary"

// IMA ADPCM (WAVE format tag 0x0011), mono. Every block starts with a
// 4-byte header (predictor int16, step index uint8, reserved uint8) followed
// by 4-bit codes, low nibble first. Because the header carries the full
// decoder state, each block decodes independently of the rest of the file,
// which is what makes the format block-seekable.

var imaIndexTable = [16]int{
	-1, -1, -1, -1, 2, 4, 6, 8,
	-1, -1, -1, -1, 2, 4, 6, 8,
}

var imaStepTable = [89]int{
	7, 8, 9, 10, 11, 12, 13, 14, 16, 17,
	19, 21, 23, 25, 28, 31, 34, 37, 41, 45,
	50, 55, 60, 66, 73, 80, 88, 97, 107, 118,
	130, 143, 157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658, 724, 796,
	876, 963, 1060, 1166, 1282, 1411, 1552, 1707, 1878, 2066,
	2272, 2499, 2749, 3024, 3327, 3660, 4026, 4428, 4871, 5358,
	5894, 6484, 7132, 7845, 8630, 9493, 10442, 11487, 12635, 13899,
	15289, 16818, 18500, 20350, 22385, 24623, 27086, 29794, 32767,
}

const imaHeaderSize = 4

// imaFramesPerBlock returns how many frames one mono block of blockAlign
// bytes decodes to.
func imaFramesPerBlock(blockAlign int) int {
	return (blockAlign-imaHeaderSize)*2 + 1
}

func clampInt16(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

func clampStepIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > 88 {
		return 88
	}
	return i
}

// imaDecodeNibble advances the decoder state by one 4-bit code and returns
// the decoded sample.
func imaDecodeNibble(code int, predictor *int, index *int) int16 {
	step := imaStepTable[*index]

	diff := step >> 3
	if code&1 != 0 {
		diff += step >> 2
	}
	if code&2 != 0 {
		diff += step >> 1
	}
	if code&4 != 0 {
		diff += step
	}
	if code&8 != 0 {
		*predictor -= diff
	} else {
		*predictor += diff
	}

	s := clampInt16(*predictor)
	*predictor = int(s)
	*index = clampStepIndex(*index + imaIndexTable[code])
	return s
}

// imaDecodeBlock decodes one mono block into dst and returns the number of
// frames produced. Short blocks decode as far as their bytes allow.
func imaDecodeBlock(block []byte, dst []int16) int {
	if len(block) < imaHeaderSize {
		return 0
	}

	predictor := int(int16(binary.LittleEndian.Uint16(block[0:2])))
	index := clampStepIndex(int(block[2]))

	n := 0
	if n < len(dst) {
		dst[n] = int16(predictor)
		n++
	}

	for _, b := range block[imaHeaderSize:] {
		if n >= len(dst) {
			break
		}
		dst[n] = imaDecodeNibble(int(b&0x0f), &predictor, &index)
		n++
		if n >= len(dst) {
			break
		}
		dst[n] = imaDecodeNibble(int(b>>4), &predictor, &index)
		n++
	}
	return n
}

// imaEncodeNibble quantizes the difference between sample and the current
// predictor into a 4-bit code, updating the state exactly as the decoder
// will.
func imaEncodeNibble(sample int16, predictor *int, index *int) byte {
	step := imaStepTable[*index]
	diff := int(sample) - *predictor

	var code int
	if diff < 0 {
		code = 8
		diff = -diff
	}
	if diff >= step {
		code |= 4
		diff -= step
	}
	if diff >= step>>1 {
		code |= 2
		diff -= step >> 1
	}
	if diff >= step>>2 {
		code |= 1
	}

	imaDecodeNibble(code, predictor, index)
	return byte(code)
}

// imaEncodeBlock encodes up to imaFramesPerBlock(len(block)) frames of src
// into block. Missing trailing frames are encoded as silence so the block
// is always fully sized. stepIndex carries quantizer state across blocks;
// the updated value is returned. Decoding never depends on it because the
// index is also stored in the block header.
func imaEncodeBlock(src []int16, block []byte, stepIndex int) int {
	sample := func(i int) int16 {
		if i < len(src) {
			return src[i]
		}
		return 0
	}

	predictor := int(sample(0))
	index := clampStepIndex(stepIndex)

	binary.LittleEndian.PutUint16(block[0:2], uint16(int16(predictor)))
	block[2] = byte(index)
	block[3] = 0

	frame := 1
	for i := imaHeaderSize; i < len(block); i++ {
		lo := imaEncodeNibble(sample(frame), &predictor, &index)
		hi := imaEncodeNibble(sample(frame+1), &predictor, &index)
		block[i] = lo | hi<<4
		frame += 2
	}
	return index
}
