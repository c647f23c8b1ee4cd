// Package mosaicwave is the repository root for the wfc overlapping-model
// image synthesizer.
//
// 🧩 What is this?
//
//	A deterministic, seedable implementation of the overlapping Wave
//	Function Collapse algorithm: extract NxN patterns from a sample image,
//	build their adjacency compatibility, then collapse an output grid one
//	cell at a time under constraint propagation until every cell holds
//	exactly one pattern or the run contradicts and restarts.
//
// Under the hood, everything is organized under focused subpackages:
//
//	bitset/     — dense bit vectors for pattern domains and adjacency rows
//	rng/        — deterministic seeded randomness shared across the pipeline
//	pattern/    — sample quantization, pattern extraction, palette
//	adjacency/  — pattern compatibility tables
//	wave/       — per-cell domain state and the propagation queue
//	propagate/  — fixed-point constraint propagation
//	observe/    — minimum-entropy cell selection and weighted collapse
//	wfc/        — the public Run/Config/Result facade
//	imageio/    — image.Image <-> pattern.Sample adapters
//	wfcviz/     — HTML charting of a recorded run's progress
//	cmd/wfcgen/   — demo CLI
//	cmd/wfcbench/ — propagation profiling harness
//
// See SPEC_FULL.md and DESIGN.md for the full design and grounding notes.
package mosaicwave
