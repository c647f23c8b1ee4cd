// Package wfc is the public facade and orchestration driver (spec.md
// §4.F, component F): seeding, the observe/propagate loop, termination,
// full-restart retry on contradiction, and result decoding.
//
// Like the teacher's core/api.go "thin deterministic public facade"
// policy, this file holds no algorithmic logic beyond the state machine
// itself; pattern extraction, adjacency, propagation, and observation each
// live in their own package.
package wfc

import (
	"context"

	"github.com/mosaicwave/wfc/adjacency"
	"github.com/mosaicwave/wfc/observe"
	"github.com/mosaicwave/wfc/pattern"
	"github.com/mosaicwave/wfc/propagate"
	"github.com/mosaicwave/wfc/rng"
	"github.com/mosaicwave/wfc/wave"
)

// Result is the output of a successful run (spec.md §6 "Outputs from the
// core").
type Result struct {
	// Patterns[y*Width+x] is the collapsed pattern index at cell (x,y).
	Patterns []int
	// Pixels[y*Width+x] is the decoded color index at cell (x,y): the
	// top-left pixel of Patterns[y*Width+x] (spec.md §4.F "Decoding").
	Pixels []int
	Width  int
	Height int
	// Attempts is the number of restart attempts consumed, including the
	// successful one (1 if the very first attempt succeeded).
	Attempts int
}

// Run extracts patterns from sample, builds the compatibility table, then
// drives the observe/propagate state machine to completion, to a
// contradiction (after exhausting cfg.MaxAttempts retries), or to
// cancellation via ctx (spec.md §4.F, §5, §7).
func Run(ctx context.Context, sample pattern.Sample, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	set, err := pattern.Extract(sample, pattern.ExtractOptions{
		N:             cfg.N,
		PeriodicInput: cfg.PeriodicInput,
		Symmetry:      cfg.Symmetry,
	})
	if err != nil {
		return nil, err
	}

	table := adjacency.Build(set)

	constraint := cfg.Constraint
	if constraint == nil {
		constraint = ConstraintNone
	}
	pins := constraint(set, sample, cfg.Width, cfg.Height)

	attempts := cfg.maxAttempts()
	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = rng.DefaultSeed
	}
	for attempt := 0; attempt < attempts; attempt++ {
		seed := rng.DeriveSeed(baseSeed, uint64(attempt))
		result, err := runAttempt(ctx, set, table, cfg, pins, seed, attempt)
		if err == nil {
			result.Attempts = attempt + 1
			return result, nil
		}
		if err == ErrCancelled {
			return nil, ErrCancelled
		}
		// Contradiction: fall through to the next attempt.
	}

	return nil, ErrContradiction
}

// runAttempt runs exactly one full observe/propagate attempt from a fresh
// Wave. It returns wave.ErrContradiction-wrapped-as-nil-result on
// contradiction (signaled by a nil *Result and non-nil, non-Cancelled
// error) so the caller retries.
func runAttempt(ctx context.Context, set *pattern.Set, table *adjacency.Table, cfg Config, pins []Pin, seed int64, attempt int) (*Result, error) {
	w := wave.New(cfg.Width, cfg.Height, set, table, cfg.PeriodicOutput, seed)
	collapseRNG := rng.Derive(rng.FromSeed(seed), 1)

	// Pre-imposed constraints: remove every non-matching pattern from
	// pinned cells, then propagate immediately (spec.md §4.F).
	for _, pin := range pins {
		allowed := make(map[int]bool, len(pin.Allowed))
		for _, q := range pin.Allowed {
			allowed[q] = true
		}
		for q := 0; q < set.P(); q++ {
			if !allowed[q] {
				w.Remove(pin.Cell, q)
			}
		}
	}
	if err := propagate.Run(w, table); err != nil {
		return nil, err
	}

	observations := 0
	for {
		if ctx != nil && ctx.Err() != nil {
			return nil, ErrCancelled
		}

		cell, ok := observe.SelectCell(w)
		if !ok {
			return decode(w, set, cfg.Width, cfg.Height), nil
		}

		observe.Collapse(w, cell, collapseRNG)
		if err := propagate.Run(w, table); err != nil {
			return nil, err
		}
		observations++

		if cfg.OnObserve != nil {
			cfg.OnObserve(buildSnapshot(w, set, cfg, attempt, observations))
		}
	}
}

// decode reads every cell's single surviving pattern and produces the
// pattern grid and the decoded pixel grid (spec.md §4.F "Decoding").
func decode(w *wave.Wave, set *pattern.Set, width, height int) *Result {
	n := width * height
	patterns := make([]int, n)
	pixels := make([]int, n)
	for c := 0; c < n; c++ {
		p, _ := w.CollapsedPattern(c)
		patterns[c] = p
		pixels[c] = set.Patterns[p].At(0, 0)
	}
	return &Result{Patterns: patterns, Pixels: pixels, Width: width, Height: height}
}

// buildSnapshot renders the current Wave state for OnObserve (spec.md §6
// "On progress"). Collapsed cells report their decoded color; uncollapsed
// cells report the weight-averaged RGBA of their surviving patterns'
// top-left pixel, resolved through cfg.Palette when provided (the §9 Open
// Question resolution documented in DESIGN.md).
func buildSnapshot(w *wave.Wave, set *pattern.Set, cfg Config, attempt, observations int) Snapshot {
	n := cfg.Width * cfg.Height
	snap := Snapshot{
		Attempt:      attempt,
		Observations: observations,
		DomainSizes:  make([]int, n),
		AvgColor:     make([]uint32, n),
	}

	for c := 0; c < n; c++ {
		snap.DomainSizes[c] = w.DomainSize(c)
		if p, ok := w.CollapsedPattern(c); ok {
			colorIdx := set.Patterns[p].At(0, 0)
			snap.AvgColor[c] = resolveColor(cfg.Palette, colorIdx)
			continue
		}

		var sumW, r, g, b, a float64
		w.ForEachInDomain(c, func(q int, weight float64) {
			colorIdx := set.Patterns[q].At(0, 0)
			raw := resolveColor(cfg.Palette, colorIdx)
			pr, pg, pb, pa := pattern.UnpackRGBA(raw)
			sumW += weight
			r += weight * float64(pr)
			g += weight * float64(pg)
			b += weight * float64(pb)
			a += weight * float64(pa)
		})
		if sumW == 0 {
			continue
		}
		snap.AvgColor[c] = pattern.PackRGBA(
			uint8(r/sumW), uint8(g/sumW), uint8(b/sumW), uint8(a/sumW),
		)
	}
	return snap
}

// resolveColor maps a color index through pal when provided, or folds it
// into a grayscale RGBA otherwise (no palette means no known RGB mapping;
// the index itself is the best available signal).
func resolveColor(pal *pattern.Palette, colorIdx int) uint32 {
	if pal != nil && colorIdx < pal.Len() {
		return pal.Color(colorIdx)
	}
	v := uint8(colorIdx)
	return pattern.PackRGBA(v, v, v, 0xff)
}
