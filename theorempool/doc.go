// Package theorempool instantiates a database of theorem.Theorem values
// against one puzzle.Puzzle and drives their repeated application to a
// sidemap.SideMap to fixpoint, per original_source's
// srither-solver/src/step/apply_theorem.rs.
//
// Pool.results is read-only after NewPool returns; Clone shares it (a Go
// slice header copy shares the backing array) and deep-copies only the
// per-branch mutable counts and indexByEdge state, matching spec.md §5's
// "shared immutable result tables across clones" requirement without
// needing reference counting.
package theorempool
