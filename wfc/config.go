package wfc

import "github.com/mosaicwave/wfc/pattern"

// ConstraintFunc derives the pre-imposed edge/region pins for a run from
// the extracted pattern set and the original sample (spec.md §6 "edge
// constraints"). Returning nil means no pins.
type ConstraintFunc func(set *pattern.Set, sample pattern.Sample, width, height int) []Pin

// Snapshot is a read-only progress report handed to OnObserve after each
// observation (spec.md §5, §6). DomainSizes and AvgColor are freshly
// allocated for every snapshot, so a callback may retain them.
type Snapshot struct {
	// Attempt is the zero-based retry attempt this snapshot belongs to.
	Attempt int
	// Observations counts completed observations within this attempt.
	Observations int
	// DomainSizes[cell] is |domain| at the time of the callback.
	DomainSizes []int
	// AvgColor[cell] is the collapsed pixel's color if the cell is
	// collapsed, or the weight-averaged RGBA of its surviving patterns'
	// top-left pixel otherwise (spec.md §6, the chosen resolution of the
	// §9 Open Question on partial-snapshot rendering).
	AvgColor []uint32
}

// Config configures a synthesis run (spec.md §6 "Inputs to the core").
type Config struct {
	// N is the pattern window side length. Must be >= 2.
	N int
	// Width, Height are the output grid dimensions. Width*Height must be > 0.
	Width, Height int
	// PeriodicInput wraps sample window origins.
	PeriodicInput bool
	// PeriodicOutput wraps output-grid neighbor lookups.
	PeriodicOutput bool
	// Symmetry selects the pattern-extraction orbit size: 1, 2, 4, or 8.
	Symmetry int
	// Seed drives the entire deterministic draw sequence. Seed==0 uses
	// rng.DefaultSeed (spec.md §4.E "Determinism").
	Seed int64
	// MaxAttempts bounds the full-restart retry policy (spec.md §4.F).
	// Values < 1 are treated as 1.
	MaxAttempts int
	// Constraint derives pre-imposed pins, or nil for no pins.
	Constraint ConstraintFunc
	// Palette, if non-nil, is used to render Snapshot.AvgColor in the
	// sample's actual RGBA space instead of raw color-index units.
	Palette *pattern.Palette
	// OnObserve is called after each observation with a fresh Snapshot,
	// on the same goroutine, before the next observation begins (spec.md
	// §5 "Suspension / progress reporting"). May be nil.
	OnObserve func(Snapshot)
}

// Validate checks parameter-class conditions (spec.md §7
// ErrInvalidParameters), surfaced before any pattern extraction runs.
func (c Config) Validate() error {
	if c.N < 2 {
		return ErrInvalidParameters
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidParameters
	}
	switch c.Symmetry {
	case 1, 2, 4, 8:
	default:
		return ErrInvalidParameters
	}
	return nil
}

// maxAttempts returns the effective retry bound (at least 1).
func (c Config) maxAttempts() int {
	if c.MaxAttempts < 1 {
		return 1
	}
	return c.MaxAttempts
}
