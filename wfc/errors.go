// SPDX-License-Identifier: MIT
package wfc

import "errors"

// Sentinel errors for the public driver surface (spec.md §7).
var (
	// ErrInvalidParameters covers N<2, W*H=0, symmetry not in {1,2,4,8}.
	// Surfaced at init, before any pattern extraction runs.
	ErrInvalidParameters = errors.New("wfc: invalid parameters")

	// ErrContradiction is surfaced once every retry attempt has
	// contradicted (spec.md §4.F "Retry policy").
	ErrContradiction = errors.New("wfc: contradiction, all attempts exhausted")

	// ErrCancelled is surfaced the next time the cancellation token is
	// polled after the caller cancels ctx (spec.md §5, §7).
	ErrCancelled = errors.New("wfc: cancelled")
)
