package overlap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapLengthFindsLongestSuffixPrefixMatch(t *testing.T) {
	assert.Equal(t, 3, overlapLength("AAGCT", "GCTTT"))
	assert.Equal(t, 0, overlapLength("AAAAA", "GGGGG"))
}

func TestReverseReversesBytes(t *testing.T) {
	assert.Equal(t, "CBA", reverse("ABC"))
	assert.Equal(t, "", reverse(""))
}

func TestPrefixTrieMatchesOverlapsAtOrAboveThreshold(t *testing.T) {
	// read0's suffix (its last 75 chars) equals read1's prefix (its first
	// 75 chars), both safely above MinOverlapLength (70).
	shared := strings.Repeat("G", 75)
	read0 := strings.Repeat("A", 20) + shared
	read1 := shared + strings.Repeat("T", 20)

	trie := NewPrefixTrie()
	trie.Add(read0, 0)
	trie.Add(read1, 1)

	matches := trie.Match(read0)
	require.NotEmpty(t, matches)

	best := matches[0]
	for _, m := range matches {
		if m.Length > best.Length {
			best = m
		}
	}
	assert.Equal(t, 1, best.Index)
	assert.Equal(t, 75, best.Length)
}

func TestAssembleGreedyConcatenatesAndTrimsWrapAround(t *testing.T) {
	reads := []string{"AAABBB", "BBBCCC", "CCCAAA"}
	path := []Overlap{
		{Index: 0, Length: 0},
		{Index: 1, Length: 3}, // "BBB" shared with read 0's suffix
		{Index: 2, Length: 3}, // "CCC" shared with read 1's suffix
	}

	genome := AssembleGreedy(path, reads)
	assert.Equal(t, "AAABBBCCC", genome)
}

func TestAssembleGreedyEmptyInputs(t *testing.T) {
	assert.Equal(t, "", AssembleGreedy(nil, nil))
	assert.Equal(t, "", Assemble(nil))
}
