// Package theorems supplies a small literal database of classic Slitherlink
// theorems, standing in for the text-format theorem loader that spec.md §6
// leaves to the collaborator layer. Each theorem is transcribed from the
// worked examples in original_source/src/slither/solver/theorem.rs's test
// module, re-expressed directly as theorem.Pattern/theorem.Theorem values
// instead of parsed from the original's ASCII diagram format.
package theorems
