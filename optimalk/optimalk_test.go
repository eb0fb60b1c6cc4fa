package optimalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOptimalTrueForCleanCircularComposition(t *testing.T) {
	// 3-mers of circular "ACGT": ACG, CGT, GTA, TAC. Prefixes {AC,CG,GT,TA}
	// equal suffixes {CG,GT,TA,AC}.
	reads := []string{"ACGTACG"}
	assert.True(t, IsOptimal(reads, 3))
}

func TestIsOptimalFalseWhenSetsDiffer(t *testing.T) {
	reads := []string{"AAAA"}
	// 2-mers: AA only. prefixes={A}, suffixes={A} -> actually equal here,
	// so use a case that genuinely differs: a single non-circular read.
	reads = []string{"ACGTT"}
	assert.False(t, IsOptimal(reads, 3))
}

func TestFindReturnsLargestOptimalK(t *testing.T) {
	reads := []string{"ACGTACG"}
	k, ok := Find(reads)
	assert.True(t, ok)
	assert.Equal(t, 4, k) // k = 7, 6, 5 fail; the 4-mers close the cycle ACGT
	assert.True(t, IsOptimal(reads, k))
}

func TestFindEmptyReadsNotOk(t *testing.T) {
	_, ok := Find(nil)
	assert.False(t, ok)
}
