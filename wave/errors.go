package wave

import "errors"

// ErrContradiction is returned when a Remove empties a cell's domain
// (spec.md §3 item 3, §7).
var ErrContradiction = errors.New("wave: cell domain is empty")

// ErrAlreadyCollapsed names the condition of observing a cell that is not
// selectable. No function in this module returns it.
var ErrAlreadyCollapsed = errors.New("wave: cell already collapsed")
