// SPDX-License-Identifier: EPL-2.0

package subtype

import "fmt"

// Resolver picks the best compressed subtype for a requested bit depth,
// memoizing results in a Cache. The zero value is not usable; construct with
// NewResolver. All methods are safe for concurrent use.
type Resolver struct {
	table []Capability
	cache *Cache
	sink  Sink
}

// NewResolver builds a resolver over the given capability table. A nil table
// uses DefaultTable, a nil cache gets a fresh empty Cache and a nil sink
// logs through log/slog.
func NewResolver(table []Capability, cache *Cache, sink Sink) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	if cache == nil {
		cache = NewCache()
	}
	if sink == nil {
		sink = slogSink{}
	}
	return &Resolver{table: table, cache: cache, sink: sink}
}

// Cache returns the resolver's cache for inspection and clearing.
func (r *Resolver) Cache() *Cache { return r.cache }

// Capability looks up the table entry for a subtype.
func (r *Resolver) Capability(id ID) (Capability, bool) {
	for _, c := range r.table {
		if c.Subtype == id {
			return c, true
		}
	}
	return Capability{}, false
}

// ResolveBestSubtype returns the best subtype for the requested bit depth.
//
// The cache is consulted first; on a miss the capability table is searched
// for the candidate whose native depth is closest to the request, table
// order breaking ties. If that candidate is not block-seekable, the nearest
// seekable candidate is chosen instead and a single warning diagnostic is
// emitted, since depth fidelity was traded for random access. The result is
// cached under the requested depth before returning.
//
// ErrNoSeekableSubtype is returned, alongside the best non-seekable choice,
// only when the table contains no seekable entry at all.
func (r *Resolver) ResolveBestSubtype(bitsPerSample int) (Info, error) {
	if info, ok := r.cache.Get(bitsPerSample); ok {
		return info, nil
	}
	if len(r.table) == 0 {
		return Info{}, ErrEmptyTable
	}

	best := r.closest(bitsPerSample, false)
	if best.Seekable {
		info := Info{Subtype: best.Subtype, Seekable: true, BitsPerSample: bitsPerSample}
		r.cache.Put(bitsPerSample, info)
		return info, nil
	}

	fallback := r.closest(bitsPerSample, true)
	if !fallback.Seekable {
		// Nothing in the table seeks: a backend configuration condition,
		// reported distinctly from a per-call fallback.
		return Info{Subtype: best.Subtype, Seekable: false, BitsPerSample: bitsPerSample},
			ErrNoSeekableSubtype
	}

	r.sink.Emit(Event{
		Severity: SeverityWarning,
		Message: fmt.Sprintf(
			"no seekable %d-bit subtype; falling back to %s for compatibility",
			bitsPerSample, fallback.Subtype),
		BitsPerSample: bitsPerSample,
		Fallback:      fallback.Subtype,
	})

	info := Info{Subtype: fallback.Subtype, Seekable: true, BitsPerSample: bitsPerSample}
	r.cache.Put(bitsPerSample, info)
	return info, nil
}

// closest returns the table entry whose native depth is nearest to bits,
// earlier entries winning ties. With seekableOnly set, non-seekable entries
// are skipped; if none qualify the zero Capability is returned.
func (r *Resolver) closest(bits int, seekableOnly bool) Capability {
	var (
		best     Capability
		bestDist = -1
	)
	for _, c := range r.table {
		if seekableOnly && !c.Seekable {
			continue
		}
		dist := c.Bits - bits
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}

// TestSeekability reports whether the named subtype supports block-aligned
// random access. The lookup is total: unknown or misspelled names return
// false, never an error. It neither reads nor writes the cache.
func (r *Resolver) TestSeekability(name string) bool {
	id, ok := Parse(name)
	if !ok {
		return false
	}
	c, ok := r.Capability(id)
	return ok && c.Seekable
}

// defaultResolver backs the package-level functions. Its cache is process
// wide and shared by every caller that does not inject its own resolver.
var defaultResolver = NewResolver(nil, nil, nil)

// Default returns the process-wide resolver.
func Default() *Resolver { return defaultResolver }

// ResolveBestSubtype resolves through the process-wide resolver.
func ResolveBestSubtype(bitsPerSample int) (Info, error) {
	return defaultResolver.ResolveBestSubtype(bitsPerSample)
}

// TestSeekability queries the process-wide resolver's table.
func TestSeekability(name string) bool {
	return defaultResolver.TestSeekability(name)
}

// ClearCache empties the process-wide resolution cache.
func ClearCache() {
	defaultResolver.cache.Clear()
}
