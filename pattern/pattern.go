package pattern

// Pattern is a canonical NxN array of color indices extracted from a
// Sample (spec.md §3). Cells is row-major, length N*N.
type Pattern struct {
	N     int
	Cells []int
}

// At returns the color index at local coordinate (x, y) within the pattern.
func (p Pattern) At(x, y int) int {
	return p.Cells[y*p.N+x]
}

// Equal reports structural equality. Patterns are deduplicated by this,
// never by a canonical-minimum rewrite (spec.md §9 "Symmetry
// canonicalization": canonicalizing to a lexicographic minimum would
// collapse distinct orbit members and corrupt the weight counts).
func (p Pattern) Equal(o Pattern) bool {
	if p.N != o.N || len(p.Cells) != len(o.Cells) {
		return false
	}
	for i, v := range p.Cells {
		if o.Cells[i] != v {
			return false
		}
	}
	return true
}

// rotate90 returns p rotated 90 degrees clockwise.
func rotate90(p Pattern) Pattern {
	n := p.N
	out := Pattern{N: n, Cells: make([]int, n*n)}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			// (x, y) -> (n-1-y, x)
			out.Cells[x*n+(n-1-y)] = p.Cells[y*n+x]
		}
	}
	return out
}

// reflect returns p mirrored across its vertical axis (columns reversed).
func reflect(p Pattern) Pattern {
	n := p.N
	out := Pattern{N: n, Cells: make([]int, n*n)}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out.Cells[y*n+(n-1-x)] = p.Cells[y*n+x]
		}
	}
	return out
}

// orbit generates the symmetry-group variants of p, exactly `symmetry`
// tiles (spec.md §4.A / §9): the identity, plus rotations and/or
// reflections as configured. Variants are not deduplicated here; the
// caller's Set construction deduplicates by structural equality so that
// orbit multiplicity is preserved in the weight count.
func orbit(p Pattern, symmetry int) []Pattern {
	r0 := p
	r90 := rotate90(r0)
	r180 := rotate90(r90)
	r270 := rotate90(r180)

	switch symmetry {
	case 1:
		return []Pattern{r0}
	case 2:
		return []Pattern{r0, reflect(r0)}
	case 4:
		return []Pattern{r0, r90, r180, r270}
	case 8:
		return []Pattern{
			r0, r90, r180, r270,
			reflect(r0), reflect(r90), reflect(r180), reflect(r270),
		}
	default:
		return []Pattern{r0}
	}
}

// Set is the deduplicated collection of patterns extracted from a sample,
// with their occurrence weights (spec.md §3: weights[p] >= 1).
type Set struct {
	N        int
	Patterns []Pattern
	Weights  []uint32
}

// P returns the number of distinct patterns.
func (s *Set) P() int { return len(s.Patterns) }
