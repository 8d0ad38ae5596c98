// Package connectivity finds forced side assignments from the topology of
// same-side regions: a region unreachable from the rest of its side (and
// carrying no hints) must belong to the other side, and a region whose
// removal would disconnect two already-fixed regions of one side must
// itself belong to that side. Ported from
// original_source/solver/src/step/connect_analysis.rs.
package connectivity
