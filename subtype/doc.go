// SPDX-License-Identifier: EPL-2.0

// Package subtype resolves the best block-compressed WAV subtype for a
// requested bit depth.
//
// The supported subtypes form a closed set (see ID). Each carries a
// Capability record: its native bit depth, whether its blocks can be decoded
// independently (which is what makes a file randomly accessible), and its
// block geometry. A Resolver picks the closest seekable match for a depth,
// falling back with a warning diagnostic when depth fidelity has to be
// traded for seekability, and memoizes results per requested depth in a
// concurrency-safe Cache.
//
// Resolution is deterministic: the same depth resolves to the same Info for
// the life of the process unless the cache is explicitly cleared.
package subtype
