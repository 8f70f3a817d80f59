// SPDX-License-Identifier: MIT
package lattice

import (
	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/cxt"
)

// Build discovers every concept reachable by repeated upper-neighbor steps
// from the lattice's smallest-extent concept (the concept whose extent is
// the set of objects sharing every attribute — always a valid, closed
// extent) and records the Hasse covering edges between them. Node labels
// are attached once every concept is known.
//
// Complexity: O(|concepts|·|G|) object-hull probes in the worst case; an
// explicit FIFO worklist is used rather than recursion, matching this
// library's worklist-over-recursion convention (as in fcbo).
func Build[T any](ctx *cxt.Context[T]) *Graph[T] {
	numAttrs := ctx.NumAttributes()
	start := ctx.AttrDerivation(bitset.Full(numAttrs))
	startIntent := bitset.Full(numAttrs)

	var nodes []Node[T]
	var edges []Edge
	index := make(map[string]int)
	var queue []int

	addNode := func(extent, intent *bitset.BitSet) int {
		key := extent.String()
		if id, ok := index[key]; ok {
			return id
		}
		id := len(nodes)
		nodes = append(nodes, Node[T]{ID: id, Extent: extent, Intent: intent})
		index[key] = id
		queue = append(queue, id)
		return id
	}

	addNode(start, startIntent)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		current := nodes[id]

		for _, ext := range UpperNeighborExtents(ctx, current.Extent) {
			intent := ctx.ObjDerivation(ext)
			neighborID := addNode(ext, intent)
			edges = append(edges, Edge{Child: id, Parent: neighborID})
		}
	}

	g := &Graph[T]{Nodes: nodes, Edges: edges}
	labelNodes(ctx, g)
	return g
}

// labelNodes attaches object labels ({g}″ = node extent) and attribute
// labels (D[m] = node extent) to every node that matches.
func labelNodes[T any](ctx *cxt.Context[T], g *Graph[T]) {
	byExtent := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		byExtent[n.Extent.String()] = n.ID
	}

	numObjects := ctx.NumObjects()
	for gIdx := 0; gIdx < numObjects; gIdx++ {
		ext := ctx.ObjHull(bitset.Of(numObjects, gIdx))
		if id, ok := byExtent[ext.String()]; ok {
			g.Nodes[id].ObjectLabels = append(g.Nodes[id].ObjectLabels, ctx.Object(gIdx))
		}
	}
	for m := 0; m < ctx.NumAttributes(); m++ {
		ext := ctx.AttrObjs(m)
		if id, ok := byExtent[ext.String()]; ok {
			g.Nodes[id].AttrLabels = append(g.Nodes[id].AttrLabels, ctx.Attribute(m))
		}
	}
}
