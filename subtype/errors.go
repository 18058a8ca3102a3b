// SPDX-License-Identifier: EPL-2.0

package subtype

import "errors"

var (
	// ErrNoSeekableSubtype means the capability table contains no seekable
	// subtype at all. This is a deployment condition of the codec backend,
	// not a per-call fallback.
	ErrNoSeekableSubtype = errors.New("no seekable subtype in capability table")
	// ErrEmptyTable means the capability table has no entries.
	ErrEmptyTable = errors.New("empty capability table")
)
