package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newClassic returns an allocator over 50,100,200,300,500 with 5 blocks each.
func newClassic(t *testing.T) *QuickFit {
	t.Helper()
	qf, err := New(DefaultConfig())
	require.NoError(t, err)
	return qf
}

// freeCounts extracts the free-count column of Status.
func freeCounts(a Allocator) []int {
	rows := a.Status()
	counts := make([]int, len(rows))
	for i, row := range rows {
		counts[i] = row.FreeCount
	}
	return counts
}

// mustAllocate allocates size and requires success in the given category.
func mustAllocate(t *testing.T, a Allocator, size, wantCategory int) {
	t.Helper()
	res, err := a.Allocate(size)
	require.NoError(t, err)
	require.True(t, res.OK, "allocate(%d) should succeed", size)
	require.Equal(t, wantCategory, res.Category, "allocate(%d) category", size)
}
