package fdspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TestNQueensTenIsSatisfiableAndValid is spec §8 end-to-end scenario 6.
// BinarySplit's fixed left-first child order (distributor.go) makes the
// first solution found by FirstSmallestVar + BinarySplit deterministic
// across runs; this test checks the solution's validity rather than
// hardcoding the specific permutation, since that permutation is an
// artifact of the exact heuristic interaction and is pinned by the
// implementation, not restated by spec.md.
func TestNQueensTenIsSatisfiableAndValid(t *testing.T) {
	sp, queens := NQueens(10)
	engine := OneSolutionEngine()
	engine.Start(sp)
	result, status := engine.Enter(sp)
	require.True(t, status.IsSatisfiable())

	cols := make([]int, len(queens))
	seen := make(map[int]bool)
	for i, id := range queens {
		d := result.VStore.Read(id)
		require.True(t, d.IsSingleton())
		cols[i] = d.Lo
		assert.False(t, seen[cols[i]], "column %d reused", cols[i])
		seen[cols[i]] = true
		assert.GreaterOrEqual(t, cols[i], 1)
		assert.LessOrEqual(t, cols[i], 10)
	}
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			assert.NotEqual(t, abs(cols[i]-cols[j]), abs(i-j), "queens %d and %d share a diagonal", i, j)
		}
	}
}

// TestNQueensDeterministicAcrossRuns exercises spec §8's determinism
// requirement directly: re-running the same model must reproduce the
// same first solution, since nothing in the engine is randomized.
func TestNQueensDeterministicAcrossRuns(t *testing.T) {
	run := func() []int {
		sp, queens := NQueens(10)
		engine := OneSolutionEngine()
		engine.Start(sp)
		result, status := engine.Enter(sp)
		require.True(t, status.IsSatisfiable())
		cols := make([]int, len(queens))
		for i, id := range queens {
			cols[i] = result.VStore.Read(id).Lo
		}
		return cols
	}
	first := run()
	second := run()
	assert.Equal(t, first, second)
}

func TestNQueensFourIsSatisfiable(t *testing.T) {
	sp, queens := NQueens(4)
	engine := OneSolutionEngine()
	engine.Start(sp)
	result, status := engine.Enter(sp)
	require.True(t, status.IsSatisfiable())
	assert.Len(t, queens, 4)
	for _, id := range queens {
		assert.True(t, result.VStore.Read(id).IsSingleton())
	}
}
