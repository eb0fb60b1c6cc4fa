package algorithms

import (
	"testing"

	"github.com/katalvlaran/debruijn/core"
	"github.com/stretchr/testify/require"
)

// buildCycleWithSpur wires a balanced 4-node cycle AA->AB->BB->BA->AA plus
// a 3-edge dead-end spur AB->V1->V2->Dx hanging off the branch point AB
// (out-degree 2). Dx has out-degree 0 and never merges back.
func buildCycleWithSpur(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	labels := []string{"AA", "AB", "BB", "BA", "V1", "V2", "Dx"}
	ids := make(map[string]core.NodeID, len(labels))
	for _, l := range labels {
		id, err := g.Intern(l)
		require.NoError(t, err)
		ids[l] = id
	}

	edges := [][2]string{
		{"AA", "AB"}, {"AB", "BB"}, {"BB", "BA"}, {"BA", "AA"},
		{"AB", "V1"}, {"V1", "V2"}, {"V2", "Dx"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(ids[e[0]], ids[e[1]]))
	}

	return g
}

func TestRemoveTipsZeroThresholdRemovesNothing(t *testing.T) {
	g := buildCycleWithSpur(t)
	before := g.EdgeCount()

	removed := RemoveTips(g, 0)
	require.Equal(t, 0, removed)
	require.Equal(t, before, g.EdgeCount())
}

func TestRemoveTipsPrunesDeadEndSpurLeavesCycleIntact(t *testing.T) {
	g := buildCycleWithSpur(t)

	removed := RemoveTips(g, 2)
	require.Equal(t, 3, removed) // AB-V1, V1-V2, V2-Dx
	require.Equal(t, 4, g.EdgeCount())

	aa, _ := g.Intern("AA")
	ab, _ := g.Intern("AB")
	bb, _ := g.Intern("BB")
	ba, _ := g.Intern("BA")
	require.True(t, g.HasEdge(aa, ab))
	require.True(t, g.HasEdge(ab, bb))
	require.True(t, g.HasEdge(bb, ba))
	require.True(t, g.HasEdge(ba, aa))
	require.Equal(t, 1, g.OutDegree(ab))

	checkInvariants(t, g)
}

func TestRemoveTipsBalancedCycleAloneUntouched(t *testing.T) {
	g := core.NewGraph()
	labels := []string{"AA", "AB", "BB", "BA"}
	ids := make(map[string]core.NodeID, len(labels))
	for _, l := range labels {
		id, err := g.Intern(l)
		require.NoError(t, err)
		ids[l] = id
	}
	edges := [][2]string{{"AA", "AB"}, {"AB", "BB"}, {"BB", "BA"}, {"BA", "AA"}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(ids[e[0]], ids[e[1]]))
	}

	removed := RemoveTips(g, 10)
	require.Equal(t, 0, removed)
}

func TestRemoveTipsSourceChainRespectsDepthBound(t *testing.T) {
	// S(out1,in0) -> T1 -> T2 -> Dx(out0), a 3-edge inward tip. Confirming
	// it requires walking 2 steps past the first neighbor, so a threshold
	// of 2 leaves it alone but 3 removes the whole chain.
	build := func(t *testing.T) (*core.Graph, map[string]core.NodeID) {
		t.Helper()
		g := core.NewGraph()
		ids := make(map[string]core.NodeID)
		for _, l := range []string{"S", "T1", "T2", "Dx"} {
			id, err := g.Intern(l)
			require.NoError(t, err)
			ids[l] = id
		}
		require.NoError(t, g.AddEdge(ids["S"], ids["T1"]))
		require.NoError(t, g.AddEdge(ids["T1"], ids["T2"]))
		require.NoError(t, g.AddEdge(ids["T2"], ids["Dx"]))

		return g, ids
	}

	g, _ := build(t)
	require.Equal(t, 0, RemoveTips(g, 2))
	require.Equal(t, 3, g.EdgeCount())

	g2, ids := build(t)
	require.Equal(t, 3, RemoveTips(g2, 3))
	require.Equal(t, 0, g2.EdgeCount())
	require.Equal(t, 0, g2.OutDegree(ids["S"]))
}
