// SPDX-License-Identifier: EPL-2.0

package wav

import "encoding/binary"

// Microsoft ADPCM (WAVE format tag 0x0002), mono. A block carries a 7-byte
// header (predictor coefficient index, initial delta, the first two PCM
// samples) and then one 4-bit code per frame, high nibble first. As with
// IMA, the header holds the complete decoder state, so blocks are
// independently decodable.

var msAdaptTable = [16]int{
	230, 230, 230, 230, 307, 409, 512, 614,
	768, 614, 512, 409, 307, 230, 230, 230,
}

var msCoefs = [7][2]int{
	{256, 0}, {512, -256}, {0, 0}, {192, 64},
	{240, 0}, {460, -208}, {392, -232},
}

const msHeaderSize = 7

func msFramesPerBlock(blockAlign int) int {
	return (blockAlign-msHeaderSize)*2 + 2
}

type msState struct {
	coef1, coef2 int
	delta        int
	sample1      int // previous frame
	sample2      int // frame before that
}

// decode advances the state by one 4-bit code.
func (st *msState) decode(code int) int16 {
	signed := code
	if signed >= 8 {
		signed -= 16
	}

	predicted := (st.sample1*st.coef1 + st.sample2*st.coef2) >> 8
	sample := clampInt16(predicted + signed*st.delta)

	st.delta = msAdaptTable[code] * st.delta >> 8
	if st.delta < 16 {
		st.delta = 16
	}
	st.sample2 = st.sample1
	st.sample1 = int(sample)
	return sample
}

// quantize turns the next input sample into a 4-bit code, updating the
// state the same way decode does.
func (st *msState) quantize(sample int16) int {
	predicted := (st.sample1*st.coef1 + st.sample2*st.coef2) >> 8
	code := (int(sample) - predicted) / st.delta
	if code > 7 {
		code = 7
	} else if code < -8 {
		code = -8
	}
	st.decode(code & 0x0f)
	return code & 0x0f
}

// msDecodeBlock decodes one mono block into dst and returns the number of
// frames produced.
func msDecodeBlock(block []byte, dst []int16) int {
	if len(block) < msHeaderSize {
		return 0
	}

	pred := int(block[0])
	if pred > 6 {
		pred = 6
	}
	st := msState{
		coef1:   msCoefs[pred][0],
		coef2:   msCoefs[pred][1],
		delta:   int(int16(binary.LittleEndian.Uint16(block[1:3]))),
		sample1: int(int16(binary.LittleEndian.Uint16(block[3:5]))),
		sample2: int(int16(binary.LittleEndian.Uint16(block[5:7]))),
	}
	if st.delta < 16 {
		st.delta = 16
	}

	n := 0
	if n < len(dst) {
		dst[n] = int16(st.sample2)
		n++
	}
	if n < len(dst) {
		dst[n] = int16(st.sample1)
		n++
	}

	for _, b := range block[msHeaderSize:] {
		if n >= len(dst) {
			break
		}
		dst[n] = st.decode(int(b >> 4))
		n++
		if n >= len(dst) {
			break
		}
		dst[n] = st.decode(int(b & 0x0f))
		n++
	}
	return n
}

// msPickPredictor trial-predicts the block with each coefficient set and
// returns the index with the smallest absolute residual, together with an
// initial delta derived from that residual.
func msPickPredictor(src []int16, sample func(int) int16, frames int) (int, int) {
	bestPred := 0
	bestErr := -1
	for p := range msCoefs {
		c1, c2 := msCoefs[p][0], msCoefs[p][1]
		total := 0
		for i := 2; i < frames; i++ {
			predicted := (int(sample(i-1))*c1 + int(sample(i-2))*c2) >> 8
			diff := int(sample(i)) - predicted
			if diff < 0 {
				diff = -diff
			}
			total += diff
		}
		if bestErr < 0 || total < bestErr {
			bestErr = total
			bestPred = p
		}
	}

	delta := 16
	if frames > 2 {
		delta = bestErr / (frames - 2) / 2
		if delta < 16 {
			delta = 16
		}
	}
	return bestPred, delta
}

// msEncodeBlock encodes up to msFramesPerBlock(len(block)) frames of src
// into block, zero-padding missing trailing frames.
func msEncodeBlock(src []int16, block []byte) {
	frames := msFramesPerBlock(len(block))
	sample := func(i int) int16 {
		if i < len(src) {
			return src[i]
		}
		return 0
	}

	pred, delta := msPickPredictor(src, sample, frames)
	st := msState{
		coef1:   msCoefs[pred][0],
		coef2:   msCoefs[pred][1],
		delta:   delta,
		sample1: int(sample(1)),
		sample2: int(sample(0)),
	}

	block[0] = byte(pred)
	binary.LittleEndian.PutUint16(block[1:3], uint16(int16(st.delta)))
	binary.LittleEndian.PutUint16(block[3:5], uint16(int16(st.sample1)))
	binary.LittleEndian.PutUint16(block[5:7], uint16(int16(st.sample2)))

	frame := 2
	for i := msHeaderSize; i < len(block); i++ {
		hi := st.quantize(sample(frame))
		lo := st.quantize(sample(frame + 1))
		block[i] = byte(hi<<4 | lo)
		frame += 2
	}
}
