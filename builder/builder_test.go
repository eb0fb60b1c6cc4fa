package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKmersReadMajorLeftToRight(t *testing.T) {
	got := Kmers([]string{"ACGT", "AC"}, 3)
	assert.Equal(t, []string{"ACG", "CGT"}, got)
}

func TestKmersShortReadsYieldNothing(t *testing.T) {
	assert.Nil(t, Kmers([]string{"AC"}, 5))
}

func TestBuildRejectsEmptyReads(t *testing.T) {
	_, err := Build(nil, WithK(4))
	assert.ErrorIs(t, err, ErrNoReads)
}

func TestBuildRejectsBadK(t *testing.T) {
	_, err := Build([]string{"ACGT"})
	assert.ErrorIs(t, err, ErrKTooSmall)
}

func TestBuildInsertOrBumpCoverage(t *testing.T) {
	// Two reads sharing the k-mer "ACGT" should bump coverage, not
	// create a duplicate edge.
	g, err := Build([]string{"ACGTAC", "ACGTAC"}, WithK(4))
	require.NoError(t, err)

	u, err := g.Intern("ACG")
	require.NoError(t, err)
	v, err := g.Intern("CGT")
	require.NoError(t, err)

	cov, ok := g.CoverageOf(u, v)
	assert.True(t, ok)
	assert.Equal(t, 2, cov)
}

func TestBuildSkipsSelfLoopKmers(t *testing.T) {
	// k=1: left and right are always the empty string, so every k-mer
	// is a self-loop and the graph must stay completely empty without
	// panicking.
	g, err := Build([]string{"AAAA"}, WithK(1))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuildDeterministicUpToIDRenaming(t *testing.T) {
	reads := []string{"ACGTACGT", "CGTACGTA"}
	g1, err := Build(reads, WithK(4))
	require.NoError(t, err)
	g2, err := Build(reads, WithK(4))
	require.NoError(t, err)

	assert.Equal(t, g1.NodeCount(), g2.NodeCount())
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
}
