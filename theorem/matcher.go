package theorem

import (
	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/sidemap"
)

// EdgeFact is a Theorem's Edge pattern after shifting to a concrete board
// position: an assertion that the edge between P0 and P1 must be Edge.
type EdgeFact struct {
	Edge   puzzle.Edge
	P0, P1 geom.Point
}

// Matcher is a Theorem instantiated at one board position: Pending holds the
// Edge facts not yet confirmed by the SideMap; Result holds the Edge facts
// to apply, once every Pending fact is confirmed, as the theorem's forced
// deduction.
type Matcher struct {
	Pending []EdgeFact
	Result  []EdgeFact
}

// OutcomeKind tags the result of instantiating a Theorem at one position.
type OutcomeKind int

const (
	// Complete means every matcher pattern already holds; Result should be
	// applied immediately.
	Complete OutcomeKind = iota
	// Partial means some matcher patterns are still Unknown; the returned
	// Matcher should be retained and re-tested as the SideMap changes.
	Partial
	// Discard means this placement does not apply here (a Hint pattern's
	// cell doesn't carry the expected value, or an Edge pattern is already
	// proven to the wrong value) — this is a routine non-match, not a board
	// error.
	Discard
	// BoardConflict means a query returned puzzle.Conflict — the SideMap
	// itself already holds a self-contradiction, independent of this
	// theorem. Callers should surface this as an invalid-board error.
	BoardConflict
)

// Outcome is the classification of one Theorem placement.
type Outcome struct {
	Kind    OutcomeKind
	Matcher Matcher
}

// Instantiate tries theo shifted by d against puzzle pz and side map sm,
// classifying it as Complete, Partial, Discard or BoardConflict.
//
// spec.md §4.E/§4.F additionally describe a hint-sum feasibility check
// (reject placements whose local Line-edge count would force the loop's
// total length to disagree with the puzzle's sum of hints, passed in per
// §4.F). It is a genuine gap, not just a documented omission: no concrete
// formula for it survived extraction into original_source, and guessing one
// risks wrongly rejecting valid deductions, so Instantiate does not gate on
// it — this is a missing prune, not a missing correctness check. Correctness
// for hint counts does not depend on it: search.Driver.ValidateResult
// independently counts each hinted cell's incident Line edges against its
// hint once a branch is fully filled, so an unsound placement here cannot
// produce a wrong final answer, only a slower search.
func Instantiate(theo Theorem, d geom.Move, pz *puzzle.Puzzle, sm *sidemap.SideMap) Outcome {
	var pending []EdgeFact
	for _, pat := range theo.Matcher() {
		shifted := pat.Shift(d)
		switch shifted.Kind {
		case HintPattern:
			h := pz.Hint(shifted.P0)
			if !h.HasHint || h.Value != shifted.HintValue {
				return Outcome{Kind: Discard}
			}
		case EdgePattern:
			st := sm.GetEdge(shifted.P0, shifted.P1)
			switch st.Kind {
			case puzzle.Conflict:
				return Outcome{Kind: BoardConflict}
			case puzzle.Fixed:
				if st.Value != shifted.EdgeKind {
					return Outcome{Kind: Discard}
				}
			case puzzle.Unknown:
				pending = append(pending, EdgeFact{Edge: shifted.EdgeKind, P0: shifted.P0, P1: shifted.P1})
			}
		}
	}

	result := make([]EdgeFact, len(theo.Result()))
	for i, pat := range theo.Result() {
		shifted := pat.Shift(d)
		result[i] = EdgeFact{Edge: shifted.EdgeKind, P0: shifted.P0, P1: shifted.P1}
	}

	if len(pending) == 0 {
		return Outcome{Kind: Complete, Matcher: Matcher{Result: result}}
	}
	return Outcome{Kind: Partial, Matcher: Matcher{Pending: pending, Result: result}}
}

// Apply asserts every one of m's Result facts onto sm.
func (m Matcher) Apply(sm *sidemap.SideMap) {
	for _, f := range m.Result {
		sm.SetEdgeID(geom.PointToCellID(sm.Size(), f.P0), geom.PointToCellID(sm.Size(), f.P1), f.Edge)
	}
}

// Retest re-evaluates m.Pending against the current SideMap, shrinking it to
// the facts still Unknown. It reports Complete if every pending fact has
// since become Fixed-true, Discard if any became Fixed to the wrong value,
// BoardConflict if any is now Conflict, and Partial (with the narrowed
// Matcher) otherwise.
func (m Matcher) Retest(sm *sidemap.SideMap) Outcome {
	var pending []EdgeFact
	for _, f := range m.Pending {
		st := sm.GetEdgeID(geom.PointToCellID(sm.Size(), f.P0), geom.PointToCellID(sm.Size(), f.P1))
		switch st.Kind {
		case puzzle.Conflict:
			return Outcome{Kind: BoardConflict}
		case puzzle.Fixed:
			if st.Value != f.Edge {
				return Outcome{Kind: Discard}
			}
		case puzzle.Unknown:
			pending = append(pending, f)
		}
	}
	if len(pending) == 0 {
		return Outcome{Kind: Complete, Matcher: Matcher{Result: m.Result}}
	}
	return Outcome{Kind: Partial, Matcher: Matcher{Pending: pending, Result: m.Result}}
}
