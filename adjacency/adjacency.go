// Package adjacency builds the compatibility table between extracted
// patterns: for every ordered pair (p, q) and every offset direction, it
// decides whether their NxN windows agree on their overlap (spec.md §3,
// §4.B).
//
// The table is built once from an immutable pattern.Set and never mutated
// afterward, the same "build once, immutable thereafter" discipline the
// teacher corpus uses for its adjacency-matrix conversions
// (matrix/impl_adjacency.go).
package adjacency

import (
	"github.com/mosaicwave/wfc/bitset"
	"github.com/mosaicwave/wfc/pattern"
)

// Direction is one of the four cardinal offsets a neighbor can sit at.
type Direction int

const (
	// Right is the +x offset: the neighbor sits one cell to the right.
	Right Direction = iota
	// Left is the -x offset.
	Left
	// Down is the +y offset: the neighbor sits one cell below.
	Down
	// Up is the -y offset.
	Up
)

// NumDirections is the fixed direction count (spec.md §3: 4 directions).
const NumDirections = 4

// Opposite returns the reverse of d (Right<->Left, Down<->Up).
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Down:
		return Up
	default:
		return Down
	}
}

// DX, DY return the unit cell offset for d.
func (d Direction) DX() int {
	switch d {
	case Right:
		return 1
	case Left:
		return -1
	default:
		return 0
	}
}

func (d Direction) DY() int {
	switch d {
	case Down:
		return 1
	case Up:
		return -1
	default:
		return 0
	}
}

// Table is the compatibility predicate compat(p, q, d), stored as one
// bitset per (p, d) whose q-th bit is set iff compat(p, q, d) holds
// (spec.md §4.B: bitsets preferred over adjacency lists for propagation
// throughput).
type Table struct {
	p    int
	rows [][NumDirections]bitset.Set // rows[p][d]
}

// P returns the number of patterns the table was built over.
func (t *Table) P() int { return t.p }

// Row returns the read-only compatibility bitset for (p, d): bit q is set
// iff compat(p, q, d). This is the propagator's canonical inner-loop input
// (spec.md §4.D / §9 "iterate set bits of adj[q][d]").
func (t *Table) Row(p int, d Direction) *bitset.Set {
	return &t.rows[p][d]
}

// Compatible reports compat(p, q, d) directly.
func (t *Table) Compatible(p, q int, d Direction) bool {
	return t.rows[p][d].Test(q)
}

// Build constructs the compatibility table for every ordered pattern pair
// and direction (spec.md §4.B). Complexity: O(P^2 * N^2).
//
// Compatibility symmetry compat(p,q,d) == compat(q,p,-d) holds by
// construction: Right/Left and Down/Up are each computed from the same
// overlap test evaluated in opposite order (see overlapRight/overlapDown).
func Build(set *pattern.Set) *Table {
	p := set.P()
	n := set.N
	t := &Table{p: p}
	t.rows = make([][NumDirections]bitset.Set, p)
	for i := range t.rows {
		for d := 0; d < NumDirections; d++ {
			t.rows[i][d] = bitset.New(p)
		}
	}

	for i := 0; i < p; i++ {
		pi := set.Patterns[i]
		for j := 0; j < p; j++ {
			pj := set.Patterns[j]
			if overlapRight(pi, pj, n) {
				t.rows[i][Right].Set(j)
				t.rows[j][Left].Set(i)
			}
			if overlapDown(pi, pj, n) {
				t.rows[i][Down].Set(j)
				t.rows[j][Up].Set(i)
			}
		}
	}

	return t
}

// overlapRight reports whether placing q one cell to the right of p
// produces no pixel conflict: columns 1..N-1 of p equal columns 0..N-2 of
// q (spec.md §4.B, concrete d=+x case).
func overlapRight(p, q pattern.Pattern, n int) bool {
	for y := 0; y < n; y++ {
		for x := 0; x < n-1; x++ {
			if p.At(x+1, y) != q.At(x, y) {
				return false
			}
		}
	}
	return true
}

// overlapDown reports whether placing q one cell below p produces no
// pixel conflict: rows 1..N-1 of p equal rows 0..N-2 of q.
func overlapDown(p, q pattern.Pattern, n int) bool {
	for y := 0; y < n-1; y++ {
		for x := 0; x < n; x++ {
			if p.At(x, y+1) != q.At(x, y) {
				return false
			}
		}
	}
	return true
}
