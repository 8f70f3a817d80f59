// SPDX-License-Identifier: MIT

// Package fcbo implements Fast Close-by-One: a worklist-driven enumeration
// of the formal concepts of a cxt.Context using two canonicity tests to
// prune equivalent branches, plus dead-end attribute sets inherited across
// branches to prune subtrees an ancestor has already shown unproductive.
//
// Engine emits the same set of concepts as package nextclosure but in a
// worklist-dependent order; sort through
// cxt.SortConcepts to recover NextClosure's lectic order. The worklist
// here is FIFO; either FIFO or LIFO discipline yields a correct
// enumeration, since canonicity is checked per branch regardless of
// visiting order.
//
// Complexity: O(|M|) canonicity probes per branch, each a hull; the
// dead-end maps bound redundant re-exploration across branches sharing an
// ancestor.
//
// Concurrency: an Engine is a single sequential cursor, not safe for
// concurrent use: the engine keeps a single sequential cursor.
package fcbo
