// SPDX-License-Identifier: MIT
package pattern

import "errors"

// Sentinel errors for pattern extraction. Callers branch with errors.Is;
// algorithms never panic on caller-triggered conditions.
var (
	// ErrInvalidN indicates N < 2 (spec.md §4.A requires N >= 2).
	ErrInvalidN = errors.New("pattern: N must be >= 2")

	// ErrInvalidSymmetry indicates symmetry not in {1,2,4,8}.
	ErrInvalidSymmetry = errors.New("pattern: symmetry must be one of 1, 2, 4, 8")

	// ErrEmptySample indicates fewer than one NxN window exists in the sample.
	ErrEmptySample = errors.New("pattern: sample yields no NxN window")

	// ErrDegenerateWeights indicates all extracted weights summed to zero.
	// Spec.md §4.A notes this "cannot happen with valid extraction —
	// asserted"; it is returned rather than panicked so a caller-supplied
	// malformed Sample never crashes the process.
	ErrDegenerateWeights = errors.New("pattern: extracted weights sum to zero")

	// ErrEmptyPalette indicates Quantize was called on a zero-size grid.
	ErrEmptyPalette = errors.New("pattern: sample grid is empty")

	// ErrDimensionMismatch indicates width*height does not match len(raw).
	ErrDimensionMismatch = errors.New("pattern: width*height does not match pixel count")
)
