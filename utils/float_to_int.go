// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM. Input is
// clamped to [-1, 1]; the scale is 32768 so the conversion inverts the
// 1/32768 read normalization exactly, with the positive end pinned to
// MaxInt16.
func Float32ToInt16(x float32) int16 {
	if x >= 1 {
		return 32767
	}
	if x <= -1 {
		return -32768
	}
	return int16(x * 32768)
}
