// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// ErrInvalidDstSize reports a destination buffer whose length is not a
// multiple of the stream's channel count.
var ErrInvalidDstSize = errors.New("dst length is not a multiple of the channel count")
