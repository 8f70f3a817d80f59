// SPDX-License-Identifier: MIT

// Package lattice builds the concept-lattice graph (C8): the upper-neighbor
// covering relation, a Hasse-diagram edge set discovered by worklist
// traversal from the lattice's smallest-extent concept, object/attribute
// node labels, and a pluggable layered-graph layout that turns the edge
// set into node coordinates.
//
// Complexity: one upper_neighbor probe costs O(|D|) object-hull calls
// where D = G\X; building the full Hasse diagram costs O(|concepts|·|D|)
// in the worst case.
// Concurrency: single-threaded; Build must not run concurrently with a
// mutation of the underlying context.
package lattice
