// Package fca is a Formal Concept Analysis library: build a formal
// context from objects, attributes and an incidence relation, enumerate
// its concepts, derive its Duquenne-Guigues implication basis, run
// interactive attribute exploration, and lay out the concept lattice.
//
// Everything is organized under small subpackages, one substrate type
// surrounded by satellite enumeration/inference packages:
//
//	bitset/      — dense bitset primitive (word-parallel set operations)
//	cxt/         — FormalContext: derivation/hull operators, Burmeister parser, lectic order
//	cxtgen/      — synthetic/random context generation for tests and demos
//	nextclosure/ — lectic-order concept enumeration (NextClosure)
//	fcbo/        — worklist-driven concept enumeration (Fast Close-by-One)
//	implication/ — implication closure, NextPreclosure, Duquenne-Guigues basis
//	explore/     — interactive attribute exploration against an oracle
//	lattice/     — concept-lattice graph: upper neighbors, Hasse edges, layout
//
// Extents are dense bitsets over [0,|G|) and intents dense bitsets over
// [0,|M|) throughout; engines are single-threaded and strictly sequential (see
// each subpackage's doc comment for its own complexity and concurrency
// notes).
//
//	go get github.com/conceptual/fca
package fca
