// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrNoDataChunk         = errors.New("no data chunk")
	ErrMalformedChunk      = errors.New("malformed WAV chunk")
	ErrUnsupportedSubtype  = errors.New("unsupported WAV subtype")
	ErrMonoOnly            = errors.New("only mono containers are supported")
	ErrInvalidBlock        = errors.New("invalid block index")
	ErrBlockBufferTooSmall = errors.New("block buffer too small")
	ErrOnlyPCMSupported    = errors.New("only PCM input supported")
)
