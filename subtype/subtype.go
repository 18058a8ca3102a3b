// SPDX-License-Identifier: EPL-2.0

package subtype

// ID identifies one of the supported compressed WAV subtypes.
type ID uint8

const (
	IMAADPCM ID = iota
	MSADPCM
	G721_32
	G726_32
)

// names are the external identifiers used by the codec layer and at the
// API boundary. They must stay stable.
var names = map[ID]string{
	IMAADPCM: "IMA_ADPCM",
	MSADPCM:  "MS_ADPCM",
	G721_32:  "G721_32",
	G726_32:  "G726_32",
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return "UNKNOWN"
}

// Parse maps an external subtype identifier back to its ID. Unknown names
// return ok=false; Parse never fails.
func Parse(name string) (ID, bool) {
	for id, n := range names {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// Capability describes what the codec backend can do with one subtype.
type Capability struct {
	Subtype ID
	// Bits is the subtype's native bit depth.
	Bits int
	// Seekable reports whether blocks can be decoded independently, so the
	// container supports block-aligned random access.
	Seekable bool
	// BlockFrames is the number of decoded frames per compressed block for
	// the writer's default block size. Zero for non-seekable subtypes.
	BlockFrames int
}

// DefaultTable returns the built-in capability table. Order matters: it is
// the preference order among candidates whose native depth is equally close
// to a requested depth.
func DefaultTable() []Capability {
	return []Capability{
		{Subtype: IMAADPCM, Bits: 4, Seekable: true, BlockFrames: 505},
		{Subtype: MSADPCM, Bits: 4, Seekable: true, BlockFrames: 500},
		{Subtype: G721_32, Bits: 4, Seekable: false},
		{Subtype: G726_32, Bits: 2, Seekable: false},
	}
}

// Info is the result of resolving a requested bit depth.
type Info struct {
	Subtype ID
	// Seekable is true whenever any seekable subtype exists in the table.
	Seekable bool
	// BitsPerSample is the depth that was requested, not the native depth of
	// the chosen subtype.
	BitsPerSample int
}
