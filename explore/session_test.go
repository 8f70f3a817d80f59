// SPDX-License-Identifier: MIT
package explore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptual/fca/cxt"
	"github.com/conceptual/fca/explore"
	"github.com/conceptual/fca/implication"
	"github.com/conceptual/fca/internal/testdata"
)

// alwaysAcceptOracle validates every proposal immediately, so the
// exploration loop degenerates to exactly the stock canonical-basis walk.
type alwaysAcceptOracle struct{ t *testing.T }

func (o alwaysAcceptOracle) Validate(premise, conclusion []string) bool { return true }
func (o alwaysAcceptOracle) Counterexample() (string, []string) {
	o.t.Fatal("Counterexample called after an accepted Validate")
	return "", nil
}

func TestSessionWithOmniscientOracleMatchesCanonicalBasis(t *testing.T) {
	ctx, err := testdata.Triangles()
	require.NoError(t, err)

	want := implication.CanonicalBasis(ctx)

	// A second, independent context so the session's own mutations (none,
	// in this scenario) don't alias the comparison basis.
	ctx2, err := testdata.Triangles()
	require.NoError(t, err)

	sess := explore.New(ctx2, alwaysAcceptOracle{t: t})
	got := sess.Run()

	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Premise.Equal(got[i].Premise), "implication %d premise", i)
		assert.True(t, want[i].Conclusion.Equal(got[i].Conclusion), "implication %d conclusion", i)
	}
}

// rejectThenAcceptOracle rejects the first proposal it ever sees, supplies
// one counterexample, then accepts everything afterwards.
type rejectThenAcceptOracle struct {
	rejected     bool
	counterName  string
	counterAttrs []string
}

func (o *rejectThenAcceptOracle) Validate(premise, conclusion []string) bool {
	if !o.rejected {
		o.rejected = true
		return false
	}
	return true
}

func (o *rejectThenAcceptOracle) Counterexample() (string, []string) {
	return o.counterName, o.counterAttrs
}

func TestSessionGrowsContextOnRejection(t *testing.T) {
	// Single object g1 possessing both attributes a0, a1: attr_hull(empty)
	// is {a0,a1} immediately, so the very first proposal is
	// empty -> {a0,a1}.
	objects := []string{"g1"}
	attributes := []string{"a0", "a1"}
	ctx := cxt.New(objects, attributes, []cxt.Pair{{G: 0, M: 0}, {G: 0, M: 1}})

	oracle := &rejectThenAcceptOracle{counterName: "g2", counterAttrs: []string{"a0"}}
	sess := explore.New(ctx, oracle)
	l := sess.Run()

	require.True(t, oracle.rejected)
	assert.Equal(t, 2, ctx.NumObjects(), "counterexample object must be added")
	assert.Equal(t, "g2", ctx.Object(1))

	for _, imp := range l {
		assert.True(t, imp.Sound(ctx.AttrHull), "implication %v unsound against final context", imp)
	}
}

func TestLoadScriptedOracleDrivesSession(t *testing.T) {
	script := strings.NewReader(`
steps:
  - accept: false
    name: g2
    attrs: [a0]
  - accept: true
  - accept: true
`)
	oracle, err := explore.LoadScriptedOracle(script)
	require.NoError(t, err)

	objects := []string{"g1"}
	attributes := []string{"a0", "a1"}
	ctx := cxt.New(objects, attributes, []cxt.Pair{{G: 0, M: 0}, {G: 0, M: 1}})

	sess := explore.New(ctx, oracle)
	l := sess.Run()

	assert.Equal(t, 2, ctx.NumObjects())
	for _, imp := range l {
		assert.True(t, imp.Sound(ctx.AttrHull))
	}
}
