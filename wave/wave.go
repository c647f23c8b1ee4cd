// Package wave implements the per-cell domain representation: for every
// output cell, the set of still-possible patterns, plus the incremental
// statistics the Observer needs for entropy-based selection (spec.md §3,
// §4.C).
//
// Support-array direction convention: support[cell][q][d] counts patterns
// still present in neighbor(cell, d) that are compatible with q on side
// -d (spec.md §3). The Propagator (package propagate) is the only other
// package that touches support directly; see its doc comment for how it
// reconciles this with spec.md §4.D's step description.
package wave

import (
	"math"

	"github.com/mosaicwave/wfc/adjacency"
	"github.com/mosaicwave/wfc/bitset"
	"github.com/mosaicwave/wfc/pattern"
	"github.com/mosaicwave/wfc/rng"
)

// Infinite marks a support slot with no neighbor on that side (boundary of
// a non-periodic output): it can never reach zero, so it never triggers a
// removal (spec.md §4.D "Boundary policy").
const Infinite int32 = math.MaxInt32

// noiseEpsilon bounds the per-cell entropy tie-break perturbation to
// [0, epsilon) so floating-point ties never stall the Observer (spec.md
// §9).
const noiseEpsilon = 1e-6

// event is one pending removal, (cell, pattern), queued by Remove and
// drained by the Propagator.
type event struct {
	cell    int
	pattern int
}

// Wave is the W x H grid of pattern domains. It is created once per
// synthesis attempt, mutated monotonically (domains only shrink), and
// either yields a final pattern grid or is discarded on contradiction.
type Wave struct {
	W, H, P int
	periodicOutput bool

	weights    []float64 // per pattern, w_q
	logWeights []float64 // per pattern, w_q * log(w_q)

	domain      []bitset.Set // per cell
	domainCount []int        // per cell, |domain|
	support     []int32      // flat: cell*P*4 + q*4 + int(d)

	sumWeights    []float64 // per cell, Sigma w_q over q in domain
	sumWeightsLog []float64 // per cell, Sigma w_q*log(w_q) over q in domain
	noise         []float64 // per cell, fixed at init

	collapsed    []bool
	contradicted []bool
	anyContra    bool

	queue  []event
	qHead  int
}

// supportIndex maps (cell, q, d) to its flat offset.
func (w *Wave) supportIndex(cell, q int, d adjacency.Direction) int {
	return cell*w.P*4 + q*4 + int(d)
}

// Neighbor returns the cell index of the neighbor of cell in direction d,
// honoring the periodic-output boundary policy (spec.md §4.D).
func (w *Wave) Neighbor(cell int, d adjacency.Direction) (int, bool) {
	x, y := cell%w.W, cell/w.W
	nx, ny := x+d.DX(), y+d.DY()
	if w.periodicOutput {
		nx = ((nx % w.W) + w.W) % w.W
		ny = ((ny % w.H) + w.H) % w.H
		return ny*w.W + nx, true
	}
	if nx < 0 || nx >= w.W || ny < 0 || ny >= w.H {
		return 0, false
	}
	return ny*w.W + nx, true
}

// New allocates and initializes a Wave: every cell's domain starts full,
// support counts are derived uniformly from the compatibility table
// (spec.md §4.C "init"), and per-cell noise is drawn once, in row-major
// order, from the seeded stream (spec.md §4.E "Determinism").
func New(width, height int, set *pattern.Set, table *adjacency.Table, periodicOutput bool, seed int64) *Wave {
	p := set.P()
	numCells := width * height

	w := &Wave{
		W: width, H: height, P: p,
		periodicOutput: periodicOutput,
		weights:        make([]float64, p),
		logWeights:     make([]float64, p),
		domain:         make([]bitset.Set, numCells),
		domainCount:    make([]int, numCells),
		support:        make([]int32, numCells*p*4),
		sumWeights:     make([]float64, numCells),
		sumWeightsLog:  make([]float64, numCells),
		noise:          make([]float64, numCells),
		collapsed:      make([]bool, numCells),
		contradicted:   make([]bool, numCells),
	}

	var totalWeight, totalWeightLog float64
	for q, wt := range set.Weights {
		fw := float64(wt)
		w.weights[q] = fw
		lw := fw * math.Log(fw)
		w.logWeights[q] = lw
		totalWeight += fw
		totalWeightLog += lw
	}

	// Uniform initial support: support[q][d] = |{p : compat(p,q,-d)}|,
	// computed once in O(P * set-bit count) via table.Row(p, Dopp) and
	// assigned under d = Dopp.Opposite() (see package doc comment).
	initSupport := make([][4]int32, p)
	dirs := [4]adjacency.Direction{adjacency.Right, adjacency.Left, adjacency.Down, adjacency.Up}
	for pi := 0; pi < p; pi++ {
		for _, dopp := range dirs {
			row := table.Row(pi, dopp)
			d := dopp.Opposite()
			row.Each(func(q int) {
				initSupport[q][d]++
			})
		}
	}

	noiseRNG := rng.FromSeed(seed)
	for c := 0; c < numCells; c++ {
		dom := bitset.New(p)
		dom.SetAll()
		w.domain[c] = dom
		w.domainCount[c] = p
		w.sumWeights[c] = totalWeight
		w.sumWeightsLog[c] = totalWeightLog
		w.noise[c] = noiseRNG.Float64() * noiseEpsilon
		if p <= 1 {
			// A single-pattern extraction starts every cell already
			// collapsed; Remove never runs to flip this flag.
			w.collapsed[c] = true
		}

		for q := 0; q < p; q++ {
			for _, d := range dirs {
				val := initSupport[q][d]
				if _, ok := w.Neighbor(c, d); !ok {
					val = Infinite
				}
				w.support[w.supportIndex(c, q, d)] = val
			}
		}
	}

	return w
}

// Possible reports whether pattern q is still in cell's domain.
func (w *Wave) Possible(cell, q int) bool {
	return w.domain[cell].Test(q)
}

// DomainSize returns |domain| for cell.
func (w *Wave) DomainSize(cell int) int {
	return w.domainCount[cell]
}

// Collapsed reports whether cell's domain has exactly one pattern left.
func (w *Wave) Collapsed(cell int) bool {
	return w.collapsed[cell]
}

// Contradicted reports whether cell's domain is empty.
func (w *Wave) Contradicted(cell int) bool {
	return w.contradicted[cell]
}

// AnyContradiction reports whether any Remove call has emptied a domain.
func (w *Wave) AnyContradiction() bool {
	return w.anyContra
}

// CollapsedPattern returns the single surviving pattern of a collapsed
// cell. ok is false if the cell is not collapsed.
func (w *Wave) CollapsedPattern(cell int) (int, bool) {
	if !w.collapsed[cell] {
		return 0, false
	}
	q, ok := w.domain[cell].NextSet(0)
	return q, ok
}

// Support returns the current support[cell][q][d] count, exported for the
// Propagator and for tests asserting support-consistency (spec.md §8).
func (w *Wave) Support(cell, q int, d adjacency.Direction) int32 {
	return w.support[w.supportIndex(cell, q, d)]
}

// DecrementSupport decrements support[cell][q][d] by one (unless it is
// Infinite, the non-periodic boundary sentinel) and returns the new
// value. Only the Propagator calls this.
func (w *Wave) DecrementSupport(cell, q int, d adjacency.Direction) int32 {
	idx := w.supportIndex(cell, q, d)
	if w.support[idx] == Infinite {
		return Infinite
	}
	w.support[idx]--
	return w.support[idx]
}

// Remove clears pattern q from cell's domain, updates the running entropy
// sums, and enqueues (cell, q) for the Propagator. It is idempotent: if q
// is already absent, it is a no-op (propagation may legitimately attempt
// to remove an already-removed pattern along two different paths).
// Returns true iff this call newly contradicted the cell (domain reached
// zero).
func (w *Wave) Remove(cell, q int) bool {
	if !w.domain[cell].Test(q) {
		return false
	}
	w.domain[cell].Clear(q)
	w.domainCount[cell]--
	w.sumWeights[cell] -= w.weights[q]
	w.sumWeightsLog[cell] -= w.logWeights[q]
	w.queue = append(w.queue, event{cell: cell, pattern: q})

	switch w.domainCount[cell] {
	case 0:
		w.contradicted[cell] = true
		w.collapsed[cell] = false
		w.anyContra = true
		return true
	case 1:
		w.collapsed[cell] = true
	}
	return false
}

// Dequeue pops the oldest pending removal event (FIFO, spec.md §4.D /
// §9 Open Question resolution documented in DESIGN.md). ok is false once
// the queue is drained to a fixed point.
func (w *Wave) Dequeue() (cell, q int, ok bool) {
	if w.qHead >= len(w.queue) {
		return 0, 0, false
	}
	e := w.queue[w.qHead]
	w.qHead++
	return e.cell, e.pattern, true
}

// Entropy computes the Shannon entropy of cell's current distribution
// plus its fixed tie-break noise (spec.md §4.C, §9). Cells with
// |domain| <= 1 are not selectable and report -Inf.
func (w *Wave) Entropy(cell int) float64 {
	if w.domainCount[cell] <= 1 {
		return math.Inf(-1)
	}
	s := w.sumWeights[cell]
	return math.Log(s) - w.sumWeightsLog[cell]/s + w.noise[cell]
}

// SumWeights returns the running Sigma w_q over q in cell's domain, used
// by the Observer's weighted sampling draw.
func (w *Wave) SumWeights(cell int) float64 {
	return w.sumWeights[cell]
}

// Weight returns the extraction-time weight of pattern q.
func (w *Wave) Weight(q int) float64 {
	return w.weights[q]
}

// ForEachInDomain calls fn(q, weight) for every pattern still possible in
// cell, in ascending pattern order. Used by progress-snapshot rendering to
// compute a weighted-average preview color without exposing the domain
// bitset itself.
func (w *Wave) ForEachInDomain(cell int, fn func(q int, weight float64)) {
	w.domain[cell].Each(func(q int) {
		fn(q, w.weights[q])
	})
}
