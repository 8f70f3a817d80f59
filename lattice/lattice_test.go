// SPDX-License-Identifier: MIT
package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/cxt"
	"github.com/conceptual/fca/internal/testdata"
	"github.com/conceptual/fca/lattice"
	"github.com/conceptual/fca/nextclosure"
)

// TestUpperNeighborOfTopIsNonEmptyWhenMultipleConceptsExist checks that the
// concept Build starts from (the smallest extent) has a non-empty
// upper-neighbor set when the lattice has at least two distinct concepts,
// while the universal concept (extent = G) has none, since upper neighbors
// only ever grow the extent.
func TestUpperNeighborOfTopIsNonEmptyWhenMultipleConceptsExist(t *testing.T) {
	ctx, err := testdata.Triangles()
	require.NoError(t, err)

	start := ctx.AttrDerivation(bitset.Full(ctx.NumAttributes()))
	assert.NotEmpty(t, lattice.UpperNeighborExtents(ctx, start), "the smallest-extent concept has upper neighbors")

	full := bitset.Full(ctx.NumObjects())
	neighbors := lattice.UpperNeighborExtents(ctx, full)
	assert.Empty(t, neighbors, "the universal concept (extent=G) has no upper neighbors")

	concepts := nextclosure.All(ctx)
	assert.Greater(t, len(concepts), 1)
}

// TestBuildReachesTheUniversalConceptOnTriangles checks that repeated
// upper-neighbor steps from the smallest extent eventually discover the
// concept with extent = full G.
func TestBuildReachesTheUniversalConceptOnTriangles(t *testing.T) {
	ctx, err := testdata.Triangles()
	require.NoError(t, err)

	g := lattice.Build(ctx)
	full := bitset.Full(ctx.NumObjects())

	found := false
	for _, n := range g.Nodes {
		if n.Extent.Equal(full) {
			found = true
			break
		}
	}
	assert.True(t, found, "Build must discover the universal concept")
}

// TestBuildDiscoversSameConceptCountAsNextClosure cross-checks the number
// of concepts Build's traversal reaches against the independently-verified
// NextClosure enumeration.
func TestBuildDiscoversSameConceptCountAsNextClosure(t *testing.T) {
	for _, name := range []string{"triangles", "living_beings_and_water"} {
		ctx, err := loadFixture(name)
		require.NoError(t, err)

		g := lattice.Build(ctx)
		want := nextclosure.All(ctx)
		assert.Len(t, g.Nodes, len(want), "%s: concept count mismatch", name)
	}
}

// TestNodeLabelsMatchObjectAndAttributeIntents checks the label
// rule directly: every object's {g}″ concept carries that object's label,
// every attribute's D[m] concept carries that attribute's label.
func TestNodeLabelsMatchObjectAndAttributeIntents(t *testing.T) {
	ctx, err := testdata.Triangles()
	require.NoError(t, err)

	g := lattice.Build(ctx)
	byExtent := make(map[string]lattice.Node[string])
	for _, n := range g.Nodes {
		byExtent[n.Extent.String()] = n
	}

	for gi := 0; gi < ctx.NumObjects(); gi++ {
		ext := ctx.ObjHull(bitset.Of(ctx.NumObjects(), gi))
		node, ok := byExtent[ext.String()]
		require.True(t, ok, "no node for object %d's closed extent", gi)
		assert.Contains(t, node.ObjectLabels, ctx.Object(gi))
	}
	for m := 0; m < ctx.NumAttributes(); m++ {
		ext := ctx.AttrObjs(m)
		node, ok := byExtent[ext.String()]
		require.True(t, ok, "no node for attribute %d's extent", m)
		assert.Contains(t, node.AttrLabels, ctx.Attribute(m))
	}
}

// TestPositionAssignsDistinctLayersAlongEveryEdge checks that LayeredLayout
// always places a parent strictly below its child.
func TestPositionAssignsDistinctLayersAlongEveryEdge(t *testing.T) {
	ctx, err := testdata.Triangles()
	require.NoError(t, err)

	g := lattice.Build(ctx)
	layout := lattice.Position(g, lattice.LayeredLayout())

	byID := make(map[int]lattice.PositionedNode[string], len(layout.Nodes))
	for _, n := range layout.Nodes {
		byID[n.ID] = n
	}
	for _, e := range g.Edges {
		child, parent := byID[e.Child], byID[e.Parent]
		assert.Greater(t, parent.Y, child.Y, "parent must be laid out below its child")
	}
	assert.GreaterOrEqual(t, layout.Width, 0.0)
	assert.GreaterOrEqual(t, layout.Height, 0.0)
}

func loadFixture(name string) (*cxt.Context[string], error) {
	if name == "triangles" {
		return testdata.Triangles()
	}
	return testdata.LivingBeingsAndWater()
}
