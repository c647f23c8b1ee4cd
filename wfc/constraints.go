package wfc

import "github.com/mosaicwave/wfc/pattern"

// Pin pins one output cell to a restricted set of allowed pattern
// indices, applied before the first observation (spec.md §4.F
// "Pre-imposed constraints"): every non-matching pattern is removed from
// the cell before propagation runs.
type Pin struct {
	Cell    int
	Allowed []int
}

// ConstraintNone imposes no pins (spec.md §6 predicate 1, "None").
func ConstraintNone(_ *pattern.Set, _ pattern.Sample, _, _ int) []Pin {
	return nil
}

// ConstraintVertical pins the output's top row to patterns whose top row
// matches some slice of the sample's own top edge, and the bottom row
// symmetrically against the sample's bottom edge (spec.md §6 predicate 2,
// "Vertical").
func ConstraintVertical(set *pattern.Set, sample pattern.Sample, width, height int) []Pin {
	n := set.N
	top := allowedByEdge(set, edgeRowSlices(sample, n, 0), patternTopRow)
	bottom := allowedByEdge(set, edgeRowSlices(sample, n, sample.Height-1), patternBottomRow)
	var pins []Pin
	for x := 0; x < width; x++ {
		pins = append(pins, Pin{Cell: x, Allowed: top})
		pins = append(pins, Pin{Cell: (height-1)*width + x, Allowed: bottom})
	}
	return pins
}

// ConstraintVerticalSides adds left/right column pins to
// ConstraintVertical, matching the sample's left and right edges (spec.md
// §6 predicate 3, "Vertical + sides").
func ConstraintVerticalSides(set *pattern.Set, sample pattern.Sample, width, height int) []Pin {
	pins := ConstraintVertical(set, sample, width, height)
	n := set.N
	left := allowedByEdge(set, edgeColSlices(sample, n, 0), patternLeftCol)
	right := allowedByEdge(set, edgeColSlices(sample, n, sample.Width-1), patternRightCol)
	for y := 0; y < height; y++ {
		pins = append(pins, Pin{Cell: y*width, Allowed: left})
		pins = append(pins, Pin{Cell: y*width + (width - 1), Allowed: right})
	}
	return pins
}

// edgeRowSlices returns every length-n, non-wrapped horizontal slice of
// sample row y.
func edgeRowSlices(sample pattern.Sample, n, y int) [][]int {
	if sample.Width < n {
		return nil
	}
	var slices [][]int
	for ox := 0; ox <= sample.Width-n; ox++ {
		s := make([]int, n)
		for i := 0; i < n; i++ {
			s[i] = sample.At(ox+i, y, false)
		}
		slices = append(slices, s)
	}
	return slices
}

// edgeColSlices returns every length-n, non-wrapped vertical slice of
// sample column x.
func edgeColSlices(sample pattern.Sample, n, x int) [][]int {
	if sample.Height < n {
		return nil
	}
	var slices [][]int
	for oy := 0; oy <= sample.Height-n; oy++ {
		s := make([]int, n)
		for i := 0; i < n; i++ {
			s[i] = sample.At(x, oy+i, false)
		}
		slices = append(slices, s)
	}
	return slices
}

// patternTopRow / patternBottomRow / patternLeftCol / patternRightCol
// extract one edge of an NxN pattern for comparison against sample edge
// slices.
func patternTopRow(p pattern.Pattern) []int {
	return p.Cells[0:p.N]
}

func patternBottomRow(p pattern.Pattern) []int {
	return p.Cells[(p.N-1)*p.N : p.N*p.N]
}

func patternLeftCol(p pattern.Pattern) []int {
	col := make([]int, p.N)
	for y := 0; y < p.N; y++ {
		col[y] = p.At(0, y)
	}
	return col
}

func patternRightCol(p pattern.Pattern) []int {
	col := make([]int, p.N)
	for y := 0; y < p.N; y++ {
		col[y] = p.At(p.N-1, y)
	}
	return col
}

func sliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// allowedByEdge returns the indices of patterns whose edge (as extracted
// by edgeOf) structurally matches any of slices.
func allowedByEdge(set *pattern.Set, slices [][]int, edgeOf func(pattern.Pattern) []int) []int {
	var allowed []int
	for i, p := range set.Patterns {
		edge := edgeOf(p)
		for _, s := range slices {
			if sliceEqual(edge, s) {
				allowed = append(allowed, i)
				break
			}
		}
	}
	return allowed
}
