package pattern

import "strconv"

// ExtractOptions configures the Pattern Extractor (spec.md §4.A).
type ExtractOptions struct {
	// N is the side length of the extracted window. Must be >= 2.
	N int
	// PeriodicInput wraps window origins modulo the sample dimensions.
	// When false, only origins with x+N<=Width, y+N<=Height are read.
	PeriodicInput bool
	// Symmetry selects the orbit size: one of 1, 2, 4, 8.
	Symmetry int
}

// Validate checks N and Symmetry against spec.md §4.A / §7
// (ErrInvalidParameters-class conditions, surfaced at init).
func (o ExtractOptions) Validate() error {
	if o.N < 2 {
		return ErrInvalidN
	}
	switch o.Symmetry {
	case 1, 2, 4, 8:
	default:
		return ErrInvalidSymmetry
	}
	return nil
}

// Extract slides an NxN window over sample, applies the configured
// symmetry orbit to each window, deduplicates by structural equality, and
// accumulates per-pattern occurrence weights (spec.md §4.A).
//
// Complexity: O(Width*Height*Symmetry*N^2) time, O(P*N^2) space for the
// distinct pattern set.
func Extract(sample Sample, opts ExtractOptions) (*Set, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := opts.N
	maxX, maxY := sample.Width, sample.Height
	if !opts.PeriodicInput {
		maxX = sample.Width - n + 1
		maxY = sample.Height - n + 1
	}
	if maxX <= 0 || maxY <= 0 {
		return nil, ErrEmptySample
	}

	set := &Set{N: n}
	seen := make(map[string]int, maxX*maxY)

	windowAt := func(ox, oy int) Pattern {
		cells := make([]int, n*n)
		for dy := 0; dy < n; dy++ {
			for dx := 0; dx < n; dx++ {
				cells[dy*n+dx] = sample.At(ox+dx, oy+dy, opts.PeriodicInput)
			}
		}
		return Pattern{N: n, Cells: cells}
	}

	windows := 0
	for oy := 0; oy < maxY; oy++ {
		for ox := 0; ox < maxX; ox++ {
			windows++
			base := windowAt(ox, oy)
			for _, variant := range orbit(base, opts.Symmetry) {
				key := patternKey(variant)
				if idx, ok := seen[key]; ok {
					set.Weights[idx]++
					continue
				}
				idx := len(set.Patterns)
				seen[key] = idx
				set.Patterns = append(set.Patterns, variant)
				set.Weights = append(set.Weights, 1)
			}
		}
	}
	if windows == 0 {
		return nil, ErrEmptySample
	}

	var total uint32
	for _, w := range set.Weights {
		total += w
	}
	if total == 0 {
		return nil, ErrDegenerateWeights
	}

	return set, nil
}

// patternKey builds a dedup key from a pattern's cells. N is folded in so
// patterns of different size never collide (Extract always produces one
// fixed N per call, but the key stays defensively unambiguous).
func patternKey(p Pattern) string {
	buf := make([]byte, 0, len(p.Cells)*4+4)
	buf = strconv.AppendInt(buf, int64(p.N), 10)
	buf = append(buf, ':')
	for _, c := range p.Cells {
		buf = strconv.AppendInt(buf, int64(c), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}
