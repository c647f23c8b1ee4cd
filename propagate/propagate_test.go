package propagate_test

import (
	"testing"

	"github.com/mosaicwave/wfc/adjacency"
	"github.com/mosaicwave/wfc/pattern"
	"github.com/mosaicwave/wfc/propagate"
	"github.com/mosaicwave/wfc/wave"
	"github.com/stretchr/testify/require"
)

func roomsSample() pattern.Sample {
	// A small sample with enough internal variety to exercise real
	// propagation without being trivial (checkerboard-like with a wall).
	const (
		Floor = 0
		Wall  = 1
	)
	px := []int{
		Wall, Wall, Wall, Wall,
		Wall, Floor, Floor, Wall,
		Wall, Floor, Floor, Wall,
		Wall, Wall, Wall, Wall,
	}
	return pattern.Sample{Width: 4, Height: 4, Pixels: px}
}

// supportConsistent directly checks spec.md §8's "Support consistency"
// property: support[c][q][d] == |{p in neighbor(c,d).domain : compat(p,q,-d)}|
// for every cell and every q still in that cell's domain.
func supportConsistent(t *testing.T, w *wave.Wave, table *adjacency.Table, numCells int) {
	t.Helper()
	dirs := []adjacency.Direction{adjacency.Right, adjacency.Left, adjacency.Down, adjacency.Up}
	for c := 0; c < numCells; c++ {
		for q := 0; q < table.P(); q++ {
			if !w.Possible(c, q) {
				continue
			}
			for _, d := range dirs {
				neighbor, ok := w.Neighbor(c, d)
				got := w.Support(c, q, d)
				if !ok {
					require.Equal(t, wave.Infinite, got)
					continue
				}
				want := int32(0)
				for p := 0; p < table.P(); p++ {
					if w.Possible(neighbor, p) && table.Compatible(p, q, d.Opposite()) {
						want++
					}
				}
				require.Equal(t, want, got, "cell=%d q=%d d=%v", c, q, d)
			}
		}
	}
}

func TestPropagateQuiescentSupportConsistency(t *testing.T) {
	set, err := pattern.Extract(roomsSample(), pattern.ExtractOptions{N: 2, Symmetry: 8, PeriodicInput: false})
	require.NoError(t, err)
	table := adjacency.Build(set)

	w := wave.New(6, 6, set, table, false, 42)
	supportConsistent(t, w, table, 36)

	// Force a removal and drain propagation; consistency must still hold.
	w.Remove(0, 0)
	require.NoError(t, propagate.Run(w, table))
	supportConsistent(t, w, table, 36)
}

// TestPropagateContradiction covers scenario 4 of spec.md §8: pinning
// cell (0,0) and cell (0,1) to patterns agreeing on A at both top-lefts
// forces a contradiction because no pattern places A to the right of A.
func TestPropagateContradiction(t *testing.T) {
	const A, B = 0, 1
	s := pattern.Sample{Width: 2, Height: 2, Pixels: []int{A, B, B, A}}
	set, err := pattern.Extract(s, pattern.ExtractOptions{N: 2, Symmetry: 1, PeriodicInput: true})
	require.NoError(t, err)
	table := adjacency.Build(set)

	w := wave.New(2, 1, set, table, true, 1)

	aPattern := -1
	for i, p := range set.Patterns {
		if p.At(0, 0) == A {
			aPattern = i
			break
		}
	}
	require.GreaterOrEqual(t, aPattern, 0)

	// Pin both cells to the "A" pattern by removing every other pattern.
	for _, cell := range []int{0, 1} {
		for q := 0; q < set.P(); q++ {
			if q != aPattern {
				w.Remove(cell, q)
			}
		}
	}

	err = propagate.Run(w, table)
	require.ErrorIs(t, err, wave.ErrContradiction)
}

func TestPropagateMonotonicity(t *testing.T) {
	set, err := pattern.Extract(roomsSample(), pattern.ExtractOptions{N: 2, Symmetry: 4, PeriodicInput: false})
	require.NoError(t, err)
	table := adjacency.Build(set)
	w := wave.New(5, 5, set, table, false, 7)

	before := make([][]bool, 25)
	for c := range before {
		before[c] = make([]bool, set.P())
		for q := 0; q < set.P(); q++ {
			before[c][q] = w.Possible(c, q)
		}
	}

	w.Remove(12, 0)
	_ = propagate.Run(w, table)

	for c := range before {
		for q := 0; q < set.P(); q++ {
			if !before[c][q] {
				require.False(t, w.Possible(c, q), "bit should never flip 0->1")
			}
		}
	}
}
