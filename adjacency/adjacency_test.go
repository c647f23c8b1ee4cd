package adjacency_test

import (
	"testing"

	"github.com/mosaicwave/wfc/adjacency"
	"github.com/mosaicwave/wfc/pattern"
	"github.com/stretchr/testify/require"
)

func checkerboardSet(t *testing.T) *pattern.Set {
	t.Helper()
	const A, B = 0, 1
	s := pattern.Sample{Width: 2, Height: 2, Pixels: []int{A, B, B, A}}
	set, err := pattern.Extract(s, pattern.ExtractOptions{N: 2, Symmetry: 1, PeriodicInput: true})
	require.NoError(t, err)
	require.Len(t, set.Patterns, 2)
	return set
}

func TestCompatibilitySymmetry(t *testing.T) {
	set := checkerboardSet(t)
	table := adjacency.Build(set)

	dirs := []adjacency.Direction{adjacency.Right, adjacency.Left, adjacency.Down, adjacency.Up}
	for p := 0; p < table.P(); p++ {
		for q := 0; q < table.P(); q++ {
			for _, d := range dirs {
				require.Equal(t,
					table.Compatible(p, q, d),
					table.Compatible(q, p, d.Opposite()),
					"compat(%d,%d,%v) should equal compat(%d,%d,%v)", p, q, d, q, p, d.Opposite())
			}
		}
	}
}

func TestOppositeInvolution(t *testing.T) {
	require.Equal(t, adjacency.Right, adjacency.Left.Opposite())
	require.Equal(t, adjacency.Left, adjacency.Right.Opposite())
	require.Equal(t, adjacency.Down, adjacency.Up.Opposite())
	require.Equal(t, adjacency.Up, adjacency.Down.Opposite())
}

// TestContradictionForcingAdjacency covers scenario 4 of spec.md §8: in the
// checkerboard sample, no pattern places A to the right of A.
func TestContradictionForcingAdjacency(t *testing.T) {
	set := checkerboardSet(t)
	table := adjacency.Build(set)

	// Identify the pattern whose top-left pixel is A (=0).
	aPattern := -1
	for i, p := range set.Patterns {
		if p.At(0, 0) == 0 {
			aPattern = i
			break
		}
	}
	require.GreaterOrEqual(t, aPattern, 0)
	require.False(t, table.Compatible(aPattern, aPattern, adjacency.Right))
}
