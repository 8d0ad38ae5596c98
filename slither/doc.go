// Package slither is the solver's public entry point: Solve finds the
// unique solution to a Puzzle (or reports why none exists), and Solutions
// lazily enumerates every solution. Ported from the collaborator-facing
// surface of original_source/srither-solver/src/lib.rs (not itself present
// in original_source after the prep cap, so its shape follows spec.md §6's
// entry-point descriptions directly).
package slither
