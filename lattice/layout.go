// SPDX-License-Identifier: MIT
package lattice

// Point is a 2D coordinate assigned to a node by a LayoutFunc.
type Point struct {
	X, Y float64
}

// LayoutResult is a layout engine's pure output: a position per node id
// plus the overall drawing bounds.
type LayoutResult struct {
	Positions map[int]Point
	Width     float64
	Height    float64
}

// LayoutFunc is an external-collaborator contract: a pure
// function of the Hasse edge set and node count. LayeredLayout is the
// built-in binding; any Sugiyama-family replacement with this signature is
// a drop-in substitute.
type LayoutFunc func(edges []Edge, numNodes int) LayoutResult

// layoutConfig holds LayeredLayout's tunables.
type layoutConfig struct {
	nodeSpacing  float64
	layerSpacing float64
}

// LayoutOption customizes LayeredLayout's spacing.
type LayoutOption func(*layoutConfig)

// WithNodeSpacing sets the horizontal gap between same-layer nodes. Panics
// on a non-positive value.
func WithNodeSpacing(v float64) LayoutOption {
	if v <= 0 {
		panic("lattice: WithNodeSpacing(non-positive)")
	}
	return func(c *layoutConfig) { c.nodeSpacing = v }
}

// WithLayerSpacing sets the vertical gap between layers. Panics on a
// non-positive value.
func WithLayerSpacing(v float64) LayoutOption {
	if v <= 0 {
		panic("lattice: WithLayerSpacing(non-positive)")
	}
	return func(c *layoutConfig) { c.layerSpacing = v }
}

// LayeredLayout builds a LayoutFunc that assigns each node a layer equal to
// the length (in covering-edge hops) of the longest path to it from node 0
// — the smallest-extent concept Build starts from — so every parent lies at
// least one layer past its child, and lays out each layer as an evenly
// spaced horizontal row, later layers placed further down. This is the built-in
// Sugiyama-style layered-graph layout; any replacement with the same
// signature is a drop-in substitute.
func LayeredLayout(opts ...LayoutOption) LayoutFunc {
	cfg := &layoutConfig{nodeSpacing: 80, layerSpacing: 120}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(edges []Edge, numNodes int) LayoutResult {
		adjacency := make(map[int][]int, numNodes)
		for _, e := range edges {
			adjacency[e.Child] = append(adjacency[e.Child], e.Parent)
		}

		layer := make([]int, numNodes)
		queue := []int{0}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for _, next := range adjacency[id] {
				if layer[next] > layer[id] {
					continue
				}
				layer[next] = layer[id] + 1
				queue = append(queue, next)
			}
		}

		byLayer := make(map[int][]int)
		maxLayer := 0
		for id := 0; id < numNodes; id++ {
			byLayer[layer[id]] = append(byLayer[layer[id]], id)
			if layer[id] > maxLayer {
				maxLayer = layer[id]
			}
		}

		positions := make(map[int]Point, numNodes)
		maxWidth := 0.0
		for l, ids := range byLayer {
			rowWidth := float64(len(ids)-1) * cfg.nodeSpacing
			if rowWidth > maxWidth {
				maxWidth = rowWidth
			}
			for i, id := range ids {
				positions[id] = Point{X: float64(i) * cfg.nodeSpacing, Y: float64(l) * cfg.layerSpacing}
			}
		}

		return LayoutResult{
			Positions: positions,
			Width:     maxWidth,
			Height:    float64(maxLayer) * cfg.layerSpacing,
		}
	}
}

// PositionedNode is a Hasse node once a layout has assigned it coordinates.
type PositionedNode[T any] struct {
	ID           int
	X, Y         float64
	ObjectLabels []T
	AttrLabels   []T
}

// Layout is the final, renderable concept-lattice diagram: positioned
// nodes plus overall bounds.
type Layout[T any] struct {
	Nodes  []PositionedNode[T]
	Width  float64
	Height float64
}

// Position runs layout over g's edge set and attaches each node's labels
// to its assigned coordinates.
func Position[T any](g *Graph[T], layout LayoutFunc) Layout[T] {
	res := layout(g.Edges, len(g.Nodes))
	nodes := make([]PositionedNode[T], len(g.Nodes))
	for i, n := range g.Nodes {
		p := res.Positions[n.ID]
		nodes[i] = PositionedNode[T]{
			ID:           n.ID,
			X:            p.X,
			Y:            p.Y,
			ObjectLabels: n.ObjectLabels,
			AttrLabels:   n.AttrLabels,
		}
	}
	return Layout[T]{Nodes: nodes, Width: res.Width, Height: res.Height}
}
