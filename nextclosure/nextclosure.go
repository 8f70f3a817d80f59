// SPDX-License-Identifier: MIT
package nextclosure

import (
	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/cxt"
)

// Successor computes the A⊕i successor of current under the given hull
// operator: the lectically-next fixed point of hull after current, or
// (nil, false) if current is the lectically-last one.
//
// This is the shared core of both NextClosure (hull = context.AttrHull)
// and NextPreclosure in package implication (hull = implication closure
// L*) — the two only differ in which closure operator drives ⊕.
//
// Complexity: O(numAttrs) candidate probes, each one hull call.
func Successor(current *bitset.BitSet, numAttrs int, hull func(*bitset.BitSet) *bitset.BitSet) (*bitset.BitSet, bool) {
	aPrime := current.Clone()
	for i := numAttrs - 1; i >= 0; i-- {
		if current.Contains(i) {
			aPrime.Clear(i)
			continue
		}
		candidate := aPrime.Clone()
		candidate.Set(i)
		b := hull(candidate)
		diff := b.Difference(aPrime)
		minAdded, ok := diff.Min()
		if !ok || minAdded >= i {
			return b, true
		}
	}
	return nil, false
}

// Engine produces the intents of a context in lectic order, one at a time.
// The zero value is not usable; construct with New.
type Engine[T any] struct {
	ctx      *cxt.Context[T]
	current  *bitset.BitSet // nil until the first Next call
	started  bool
	done     bool
	numAttrs int
}

// New returns an engine over ctx, positioned before the first concept.
func New[T any](ctx *cxt.Context[T]) *Engine[T] {
	return &Engine[T]{ctx: ctx, numAttrs: ctx.NumAttributes()}
}

// Next returns the next (extent, intent) concept in lectic order, or
// (zero value, false) once the enumeration is exhausted.
//
// Complexity: O(|M|) successor candidates per call, each a hull.
func (e *Engine[T]) Next() (cxt.Concept, bool) {
	if e.done {
		return cxt.Concept{}, false
	}
	if !e.started {
		e.started = true
		y := e.ctx.AttrHull(bitset.New(e.numAttrs))
		e.current = y
		x := e.ctx.AttrDerivation(y)
		return cxt.Concept{Extent: x, Intent: y}, true
	}
	b, ok := Successor(e.current, e.numAttrs, e.ctx.AttrHull)
	if !ok {
		e.done = true
		return cxt.Concept{}, false
	}
	e.current = b
	x := e.ctx.AttrDerivation(b)
	return cxt.Concept{Extent: x, Intent: b}, true
}

// All drains the engine into a plain owned slice of concepts, in lectic
// order. Convenience for callers that do not need lazy stepping.
func All[T any](ctx *cxt.Context[T]) []cxt.Concept {
	e := New(ctx)
	var out []cxt.Concept
	for {
		c, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}
