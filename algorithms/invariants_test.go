package algorithms

import (
	"testing"

	"github.com/katalvlaran/debruijn/core"
	"github.com/stretchr/testify/assert"
)

// checkInvariants re-derives the graph's universal structural invariants
// against the public core.Graph API, since core's own helper of the same
// name is unexported to that package.
func checkInvariants(t *testing.T, g *core.Graph) {
	t.Helper()

	var sumOut, sumIn int
	for _, id := range g.Nodes() {
		sumOut += g.OutDegree(id)
		for _, nbr := range g.OutNeighbors(id) {
			assert.NotEqual(t, id, nbr, "no self-loops")
		}
	}
	for _, id := range g.Nodes() {
		sumIn += g.InDegree(id)
	}
	assert.Equal(t, sumOut, sumIn)
	assert.Equal(t, sumOut, g.EdgeCount())
}
