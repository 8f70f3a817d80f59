// SPDX-License-Identifier: MIT
package fcbo

import (
	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/cxt"
)

// node is one branch of the enumeration: the intent currently being
// extended, the lowest attribute index still permitted for extension, and
// the dead-end attribute sets collected during failed extensions.
//
// inherited holds a snapshot of the spawning node's deadEnd map taken at
// the moment this node was enqueued ("the node whose dead-end map
// was current when this branch was enqueued" — a snapshot, not a live
// reference, since the spawning node keeps mutating its own map after
// spawning a child). It is folded into deadEnd once, when this node is
// popped off the worklist and installed as current.
type node struct {
	inputAttrs *bitset.BitSet
	innerStart int
	deadEnd    map[int]*bitset.BitSet
	inherited  map[int]*bitset.BitSet
}

// Engine enumerates concepts via FCbO. The zero value is not usable;
// construct with New.
type Engine[T any] struct {
	ctx         *cxt.Context[T]
	numAttrs    int
	fullIntent  *bitset.BitSet
	prefixMasks []*bitset.BitSet // Y_j = [0,j), one per j in [0,numAttrs)

	started  bool
	done     bool
	current  *node
	worklist []*node
}

// New returns an engine over ctx, positioned before the root concept.
func New[T any](ctx *cxt.Context[T]) *Engine[T] {
	n := ctx.NumAttributes()
	masks := make([]*bitset.BitSet, n)
	for j := range masks {
		b := bitset.New(n)
		for i := 0; i < j; i++ {
			b.Set(i)
		}
		masks[j] = b
	}
	return &Engine[T]{
		ctx:         ctx,
		numAttrs:    n,
		fullIntent:  bitset.Full(n),
		prefixMasks: masks,
	}
}

func emptyOr(b *bitset.BitSet, n int) *bitset.BitSet {
	if b != nil {
		return b
	}
	return bitset.New(n)
}

func copyDeadEnd(m map[int]*bitset.BitSet) map[int]*bitset.BitSet {
	out := make(map[int]*bitset.BitSet, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Next returns the next (extent, intent) concept, or (zero value, false)
// once the enumeration is exhausted. Concepts are not emitted in lectic
// order; use cxt.SortConcepts to normalize.
func (e *Engine[T]) Next() (cxt.Concept, bool) {
	if e.done {
		return cxt.Concept{}, false
	}
	if !e.started {
		e.started = true
		y := e.ctx.AttrHull(bitset.New(e.numAttrs))
		x := e.ctx.AttrDerivation(y)
		e.current = &node{inputAttrs: y, deadEnd: map[int]*bitset.BitSet{}}
		return cxt.Concept{Extent: x, Intent: y}, true
	}

	for {
		if concept, ok := e.stepCurrent(); ok {
			return concept, true
		}
		if len(e.worklist) == 0 {
			e.done = true
			return cxt.Concept{}, false
		}
		e.current = e.worklist[0]
		e.worklist = e.worklist[1:]
		for j := e.current.innerStart; j < e.numAttrs; j++ {
			if _, ok := e.current.deadEnd[j]; ok {
				continue
			}
			if d, ok := e.current.inherited[j]; ok {
				e.current.deadEnd[j] = d
			}
		}
		e.current.inherited = nil
	}
}

// stepCurrent runs the current branch's extension loop to completion,
// either emitting one concept (possibly spawning a child branch onto the
// worklist) or exhausting the branch.
func (e *Engine[T]) stepCurrent() (cxt.Concept, bool) {
	n := e.current
	for j := n.innerStart; j < e.numAttrs; j++ {
		if n.inputAttrs.Contains(j) {
			continue
		}
		yj := e.prefixMasks[j]
		dj := emptyOr(n.deadEnd[j], e.numAttrs)

		// Canonicity test 1 (new): D_j ∩ Y_j ⊆ input_attrs ∩ Y_j.
		if !dj.Intersect(yj).IsSubsetOf(n.inputAttrs.Intersect(yj)) {
			continue
		}

		nextExt := e.ctx.AttrDerivation(n.inputAttrs)
		nextExt.IntersectWith(e.ctx.AttrObjs(j))
		nextInt := e.ctx.ObjDerivation(nextExt)

		// Canonicity test 2 (classical): input_attrs ∩ Y_j == next_int ∩ Y_j.
		if n.inputAttrs.Intersect(yj).Equal(nextInt.Intersect(yj)) {
			n.innerStart = j + 1
			if j < e.numAttrs-1 && !nextInt.Equal(e.fullIntent) {
				e.worklist = append(e.worklist, &node{
					inputAttrs: nextInt,
					innerStart: j + 1,
					deadEnd:    map[int]*bitset.BitSet{},
					inherited:  copyDeadEnd(n.deadEnd),
				})
			}
			return cxt.Concept{Extent: nextExt, Intent: nextInt}, true
		}

		n.deadEnd[j] = nextInt
		n.innerStart = j + 1
	}
	return cxt.Concept{}, false
}

// All drains the engine into a plain owned slice of concepts, in whatever
// order the worklist discipline produces. Sort with cxt.SortConcepts to
// compare against nextclosure.All.
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
