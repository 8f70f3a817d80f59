// SPDX-License-Identifier: MIT

// Package cxt implements the formal-context substrate of formal concept
// analysis: a finite set of objects G, a finite set of attributes M, and a
// binary incidence I ⊆ G×M, together with the derivation (′) and hull (″)
// operators every enumeration engine in this module (nextclosure, fcbo,
// implication, explore, lattice) is built on.
//
// Incidence is stored three ways at once, kept mutually consistent by every
// mutator:
//
//   - the pair set I itself;
//   - A[g], the atomic object derivation — attributes object g has;
//   - D[m], the atomic attribute derivation — objects attribute m has.
//
// Objects and attributes are identified by contiguous indices; names of an
// arbitrary type T are held in parallel, index-aligned slices. Removing an
// index shifts every strictly-greater stored index down by one, in I and in
// every A/D bitset, so indices stay a dense [0,count) range after mutation.
//
// Complexity: AttrDerivation/ObjDerivation are O(min(|Y|,|M|)·n/64) bitset
// intersections; Hull is two derivations. AddObject/AddAttribute and
// RemoveObject/RemoveAttribute are O(|G|·|M|/64) because every D (resp. A)
// bitset has to be rebuilt one size larger or smaller.
//
// Concurrency: Context has no internal locking. It is read-only from the
// perspective of every engine in this module, and the single writer
// (attribute exploration) never runs concurrently with a live enumerator
// over the same Context.
package cxt
