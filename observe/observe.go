// Package observe implements cell selection and weighted collapse
// (spec.md §4.E): picking the lowest-entropy uncollapsed cell and forcing
// it to one pattern sampled by weight.
package observe

import (
	"math"
	"math/rand"

	"github.com/mosaicwave/wfc/wave"
)

// SelectCell scans every selectable cell (|domain| > 1, not contradicted)
// and returns the one minimizing entropy (ties broken by the wave's fixed
// per-cell noise, already folded into Entropy). A cell with |domain| <= 1
// is never selectable (spec.md §4.C): it is already collapsed or it never
// had more than one pattern to begin with, as happens for every cell when
// pattern extraction yields a single pattern. ok is false once no cell is
// selectable, meaning the run is complete (spec.md §4.E).
//
// Complexity: O(W*H).
func SelectCell(w *wave.Wave) (cell int, ok bool) {
	best := math.Inf(1)
	found := false
	n := w.W * w.H
	for c := 0; c < n; c++ {
		if w.Collapsed(c) || w.Contradicted(c) || w.DomainSize(c) <= 1 {
			continue
		}
		e := w.Entropy(c)
		if math.IsInf(e, -1) {
			continue
		}
		if e < best {
			best = e
			cell = c
			found = true
		}
	}
	return cell, found
}

// Collapse samples one pattern from cell's domain with probability
// proportional to its weight, then removes every other pattern still
// possible there (spec.md §4.E). The caller is responsible for running
// propagate.Run afterward to restore the Wave's invariants.
//
// Determinism: exactly one draw is consumed from rng per call, keeping
// the seed stream's draw order fixed (spec.md §4.E "Determinism": one
// collapse draw per observation).
func Collapse(w *wave.Wave, cell int, rng *rand.Rand) {
	target := rng.Float64() * w.SumWeights(cell)

	chosen := -1
	var acc float64
	w.ForEachInDomain(cell, func(q int, weight float64) {
		if chosen != -1 {
			return
		}
		acc += weight
		if acc >= target {
			chosen = q
		}
	})
	if chosen == -1 {
		// Floating-point rounding landed target exactly at the sum; fall
		// back to the last pattern in domain order.
		w.ForEachInDomain(cell, func(q int, _ float64) {
			chosen = q
		})
	}

	w.ForEachInDomain(cell, func(q int, _ float64) {
		if q != chosen {
			w.Remove(cell, q)
		}
	})
}
