// Package propagate implements the constraint propagation step: given one
// or more pattern removals already queued on a wave.Wave, it iteratively
// removes neighbors that lose all support, to a fixed point or a
// contradiction (spec.md §4.D).
//
// Direction reconciliation. Spec.md §4.D's step text reads "decrement
// c'.support[q'][d]" for c'=neighbor(c,d), but spec.md §3's own support
// definition and its invariant (support[q][d] counts patterns in
// neighbor(cell,d) compatible with q on side -d) only close consistently
// if the decremented slot is c'.support[q'][d.Opposite()] — c is the
// neighbor of c' in direction d.Opposite(), not d. This package
// implements the invariant-consistent form (verified by
// TestPropagateQuiescentSupportConsistency in propagate_test.go), since spec.md §8 makes
// support-consistency, not the literal step wording, the tested contract.
package propagate

import (
	"github.com/mosaicwave/wfc/adjacency"
	"github.com/mosaicwave/wfc/wave"
)

// Run drains w's pending-removal queue to a fixed point, cascading
// removals through the compatibility table. It returns wave.ErrContradiction
// the first time any removal empties a cell's domain; propagation still
// finishes draining events already queued up to that point is not
// required by the contract, so Run returns immediately on contradiction
// (spec.md §4.D "Terminate ... when any Wave.remove produced a
// contradiction, surface to Driver").
//
// Complexity: each dequeued event costs O(P/64) words per direction plus
// O(popcount) decrements (spec.md §4.D "Why bitsets").
func Run(w *wave.Wave, table *adjacency.Table) error {
	dirs := [4]adjacency.Direction{adjacency.Right, adjacency.Left, adjacency.Down, adjacency.Up}

	for {
		cell, q, ok := w.Dequeue()
		if !ok {
			return nil
		}

		for _, d := range dirs {
			neighborCell, exists := w.Neighbor(cell, d)
			if !exists {
				continue
			}
			opp := d.Opposite()
			row := table.Row(q, d)
			contradicted := false
			row.Each(func(qPrime int) {
				if contradicted {
					return
				}
				newVal := w.DecrementSupport(neighborCell, qPrime, opp)
				if newVal == 0 && w.Possible(neighborCell, qPrime) {
					if w.Remove(neighborCell, qPrime) {
						contradicted = true
					}
				}
			})
			if contradicted {
				return wave.ErrContradiction
			}
		}
	}
}
