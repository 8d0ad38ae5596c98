// Package search drives a puzzle.Puzzle to a fixpoint of theorem and
// connectivity deductions, then, when undetermined cells remain, explores
// both sides of one cell at a time and recombines the results. Ported from
// original_source/srither-solver/src/solver.rs (the Solver struct and its
// mark_common/connect_analysis wiring) and spec.md §4.I for the outer
// recursive-split loop, which did not survive extraction into
// original_source/lib.rs.
package search
