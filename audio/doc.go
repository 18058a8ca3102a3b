// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used by the conversion
// path: the Source interface, a cubic-interpolation Resampler, a MonoMixer
// that averages channels, and a Registry mapping format keys to decoders.
//
// Samples are interleaved float32 values in [-1.0, 1.0]. Sources return
// io.EOF when exhausted; processors can be chained freely since every stage
// is itself a Source.
package audio
