package theorempool

import (
	"sort"

	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/sidemap"
	"github.com/gifnksm/srither/theorem"
)

type edgeIndex struct {
	p0, p1      geom.Point
	expectLine  []int
	expectCross []int
}

// Pool holds every theorem instantiation still pending against one puzzle,
// indexed by the edge each one is next waiting on.
type Pool struct {
	counts      []int
	results     [][]theorem.EdgeFact
	indexByEdge []edgeIndex
}

// NewPool instantiates every theorem (and its rotations) against pz and sm,
// applies every immediately-complete deduction, propagates to fixpoint, and
// merges and indexes whatever remains still pending.
func NewPool(theos []theorem.Theorem, pz *puzzle.Puzzle, sm *sidemap.SideMap) (*Pool, error) {
	matchers, err := createMatcherList(theos, pz, sm)
	if err != nil {
		return nil, err
	}

	for {
		rev := sm.Revision()
		matchers, err = applyAllMatchers(matchers, sm)
		if err != nil {
			return nil, err
		}
		if sm.Revision() == rev {
			break
		}
	}

	matchers = mergeDuplicateMatchers(matchers)

	index := map[edgeKey]*edgeIndex{}
	var order []edgeKey
	for i, m := range matchers {
		for _, f := range m.Pending {
			k := edgeKey{f.P0, f.P1}
			e, ok := index[k]
			if !ok {
				e = &edgeIndex{p0: f.P0, p1: f.P1}
				index[k] = e
				order = append(order, k)
			}
			if f.Edge == puzzle.Line {
				e.expectLine = append(e.expectLine, i)
			} else {
				e.expectCross = append(e.expectCross, i)
			}
		}
	}

	indexByEdge := make([]edgeIndex, 0, len(order))
	for _, k := range order {
		indexByEdge = append(indexByEdge, *index[k])
	}

	counts := make([]int, len(matchers))
	results := make([][]theorem.EdgeFact, len(matchers))
	for i, m := range matchers {
		counts[i] = len(m.Pending)
		results[i] = m.Result
	}

	return &Pool{counts: counts, results: results, indexByEdge: indexByEdge}, nil
}

type edgeKey struct {
	p0, p1 geom.Point
}

func createMatcherList(theos []theorem.Theorem, pz *puzzle.Puzzle, sm *sidemap.SideMap) ([]theorem.Matcher, error) {
	var hintTheorem [4][]theorem.Theorem
	var nonHint []theorem.Theorem
	for _, theo := range theos {
		for _, rot := range theo.AllRotations() {
			head := rot.Head()
			if head.Kind == theorem.HintPattern {
				hintTheorem[head.HintValue] = append(hintTheorem[head.HintValue], rot)
			} else {
				nonHint = append(nonHint, rot)
			}
		}
	}

	var matchers []theorem.Matcher
	size := pz.Size()

	for _, p := range pz.Points() {
		h := pz.Hint(p)
		if !h.HasHint {
			continue
		}
		for _, theo := range hintTheorem[h.Value] {
			d := p.Sub(theo.Head().P0)
			outcome := theorem.Instantiate(theo, d, pz, sm)
			kept, err := absorb(outcome, sm)
			if err != nil {
				return nil, err
			}
			if kept != nil {
				matchers = append(matchers, *kept)
			}
		}
	}

	for _, theo := range nonHint {
		sz := theo.Size()
		for r := 1 - sz.Rows; r < size.Rows+sz.Rows-1; r++ {
			for c := 1 - sz.Cols; c < size.Cols+sz.Cols-1; c++ {
				d := geom.Move{DRow: r, DCol: c}
				outcome := theorem.Instantiate(theo, d, pz, sm)
				kept, err := absorb(outcome, sm)
				if err != nil {
					return nil, err
				}
				if kept != nil {
					matchers = append(matchers, *kept)
				}
			}
		}
	}

	return matchers, nil
}

// absorb applies an immediately-Complete outcome to sm and reports the
// Matcher to retain for a Partial outcome (nil otherwise).
func absorb(outcome theorem.Outcome, sm *sidemap.SideMap) (*theorem.Matcher, error) {
	switch outcome.Kind {
	case theorem.BoardConflict:
		return nil, ErrInvalidBoard
	case theorem.Discard:
		return nil, nil
	case theorem.Complete:
		outcome.Matcher.Apply(sm)
		return nil, nil
	default: // Partial
		m := outcome.Matcher
		return &m, nil
	}
}

func applyAllMatchers(matchers []theorem.Matcher, sm *sidemap.SideMap) ([]theorem.Matcher, error) {
	kept := matchers[:0]
	for _, m := range matchers {
		outcome := m.Retest(sm)
		next, err := absorb(outcome, sm)
		if err != nil {
			return nil, err
		}
		if next != nil {
			kept = append(kept, *next)
		}
	}
	return kept, nil
}

func edgeFactLess(a, b theorem.EdgeFact) bool {
	if a.P0 != b.P0 {
		return a.P0.Less(b.P0)
	}
	if a.P1 != b.P1 {
		return a.P1.Less(b.P1)
	}
	return a.Edge < b.Edge
}

func sortEdgeFacts(facts []theorem.EdgeFact) []theorem.EdgeFact {
	sort.Slice(facts, func(i, j int) bool { return edgeFactLess(facts[i], facts[j]) })
	return facts
}

func pendingEqual(a, b []theorem.EdgeFact) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mergeResults(a, b []theorem.EdgeFact) []theorem.EdgeFact {
	merged := sortEdgeFacts(append(append([]theorem.EdgeFact(nil), a...), b...))
	out := merged[:0]
	for i, f := range merged {
		if i == 0 || f != out[len(out)-1] {
			out = append(out, f)
		}
	}
	return out
}

// mergeDuplicateMatchers sorts matchers by their (sorted) Pending set and
// merges the Result sets of adjacent matchers whose Pending sets are
// identical. This is spec.md §4.F step 5's O(M log M) pass, and resolves
// the rotation-time dedup open question noted in spec.md §9: colliding
// matcher sets with different results are unioned here rather than dropped.
func mergeDuplicateMatchers(matchers []theorem.Matcher) []theorem.Matcher {
	for i := range matchers {
		matchers[i].Pending = sortEdgeFacts(matchers[i].Pending)
	}
	sort.Slice(matchers, func(i, j int) bool {
		a, b := matchers[i].Pending, matchers[j].Pending
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return edgeFactLess(a[k], b[k])
			}
		}
		return len(a) < len(b)
	})

	out := matchers[:0]
	for i, m := range matchers {
		if i > 0 && pendingEqual(m.Pending, out[len(out)-1].Pending) {
			out[len(out)-1].Result = mergeResults(out[len(out)-1].Result, m.Result)
			continue
		}
		out = append(out, m)
	}
	return out
}

func (p *Pool) invalidate(i int) {
	p.counts[i] = 0
}

func (p *Pool) update(i int, sm *sidemap.SideMap) {
	switch p.counts[i] {
	case 0:
		return
	case 1:
		p.counts[i] = 0
		for _, f := range p.results[i] {
			sm.SetEdgeID(geom.PointToCellID(sm.Size(), f.P0), geom.PointToCellID(sm.Size(), f.P1), f.Edge)
		}
	default:
		p.counts[i]--
	}
}

// ApplyAll runs one compacting pass over every still-pending edge: edges
// resolved since the last pass invalidate or confirm the theorems waiting
// on them, and settled edges are dropped from the index.
func (p *Pool) ApplyAll(sm *sidemap.SideMap) error {
	w := 0
	for r := 0; r < len(p.indexByEdge); r++ {
		ibe := p.indexByEdge[r]
		st := sm.GetEdge(ibe.p0, ibe.p1)
		switch st.Kind {
		case puzzle.Conflict:
			return ErrInvalidBoard
		case puzzle.Fixed:
			if st.Value == puzzle.Cross {
				for _, i := range ibe.expectLine {
					p.invalidate(i)
				}
				for _, i := range ibe.expectCross {
					p.update(i, sm)
				}
			} else {
				for _, i := range ibe.expectLine {
					p.update(i, sm)
				}
				for _, i := range ibe.expectCross {
					p.invalidate(i)
				}
			}
		case puzzle.Unknown:
			p.indexByEdge[w] = ibe
			w++
		}
	}
	p.indexByEdge = p.indexByEdge[:w]
	return nil
}

// Clone returns an independent Pool for a hypothetical search branch. The
// results table is immutable after NewPool, so it is shared (a slice header
// copy); only counts and indexByEdge, which ApplyAll mutates, are deep
// copied.
func (p *Pool) Clone() *Pool {
	counts := make([]int, len(p.counts))
	copy(counts, p.counts)
	idx := make([]edgeIndex, len(p.indexByEdge))
	copy(idx, p.indexByEdge)
	return &Pool{counts: counts, results: p.results, indexByEdge: idx}
}
