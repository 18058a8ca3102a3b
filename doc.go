// SPDX-License-Identifier: EPL-2.0

// Package audioseek provides constant-cost random access into
// block-compressed (ADPCM) WAV files.
//
// Two problems are covered. First, picking the best compressed subtype for
// a target bit depth, with a process-wide cache and a safe fallback to the
// nearest seekable format when fidelity and random access conflict. Second,
// extracting an arbitrary time window from a compressed file in time
// proportional to the window length, not the file length: the reader seeks
// straight to the enclosing block and decodes only the blocks covering the
// window.
//
// # Reading a segment
//
//	segment, err := audioseek.ReadAudioSegment("speech.wav", 0.2, 0.3)
//	// segment holds round(0.3 * sampleRate) mono float32 samples
//
// # Writing a seekable file
//
//	err := audioseek.Write("out.wav", samples, 16000, 4)
//
// Write resolves the best block-seekable subtype for the requested depth
// (IMA ADPCM for 4-bit) and encodes the samples into fixed-size blocks,
// each independently decodable.
//
// # Probing duration
//
//	seconds, err := audioseek.GetDuration("speech.wav")
//
// GetDuration reads only the container headers; it never decodes audio.
//
// # Converting other formats
//
// Convert feeds any audio.Source (WAV, MP3, Ogg Vorbis, AIFF decoders live
// under formats/) through a resample and mono down-mix pipeline into a
// seekable file:
//
//	f, _ := os.Open("music.mp3")
//	src, _ := mp3.Decoder{}.Decode(f)
//	err := audioseek.Convert(src, "music.wav", 16000, 4)
//
// See the subtype and segment packages for the lower-level APIs with
// injectable caches and diagnostic sinks.
package audioseek
