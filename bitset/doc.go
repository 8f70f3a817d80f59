// SPDX-License-Identifier: MIT

// Package bitset implements a dense set-of-indices over a small, fixed
// universe [0, n), backed by a packed []uint64 word slice.
//
// It is the substrate every enumeration engine in this module is built on:
// formal-context derivations, lectic comparisons, dead-end attribute maps and
// concept extents/intents are all BitSets. Word-parallel Union/Intersect/
// Difference make the closure operators in cxt, nextclosure, fcbo and
// implication cheap even though each step recomputes several of them from
// scratch.
//
// Complexity: every operation is O(words) = O(n/64); Min/Each are O(words)
// worst case but typically O(1) amortized thanks to bits.TrailingZeros64.
//
// Concurrency: BitSet has no internal locking. Clone before sharing a value
// across goroutines that might mutate it; the engines in this module are
// single-threaded by design and never need to.
package bitset
