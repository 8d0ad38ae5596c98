package search

import (
	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/theorem"
)

// branch pairs a pending Driver with the number of case-splits already
// taken to reach it, for WithMaxDepth to bound against.
type branch struct {
	d     *Driver
	depth int
}

// SolutionIter lazily enumerates every solution of a puzzle, via the
// recursive split-and-mark_common procedure of spec.md §4.I. Go has no
// native coroutines, so the recursion is reified as an explicit stack of
// pending branches rather than a generator function.
type SolutionIter struct {
	stack   []branch
	opts    Options
	emitted int
	err     error
}

// NewSolutionIter starts an iteration from d's current state. d is consumed
// (its first Propagate call happens on the first call to Next).
func NewSolutionIter(d *Driver, opts ...Option) *SolutionIter {
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	return &SolutionIter{stack: []branch{{d: d}}, opts: cfg}
}

// Solutions builds the SolutionIter for pz and theos. A failure building the
// initial Driver (pz's hints are already self-contradictory) is surfaced
// through the first call to Next rather than here, so this constructor never
// needs its own error return.
func Solutions(pz *puzzle.Puzzle, theos []theorem.Theorem, opts ...Option) *SolutionIter {
	d, err := New(pz, theos)
	if err != nil {
		return &SolutionIter{err: err}
	}
	return NewSolutionIter(d, opts...)
}

// Next advances the search and returns the next solution, or ok=false once
// every branch has been explored (or, with WithMaxSolutions, once the cap
// has been reached). err is reserved for failures that are not local to a
// single branch; mid-search InvalidBoard never reaches it (spec.md §7: it is
// caught at each split and treated as branch elimination) — only a root
// puzzle that was already self-contradictory before the first Propagate
// call surfaces here.
func (it *SolutionIter) Next() (solved *puzzle.Puzzle, ok bool, err error) {
	if it.err != nil {
		err, it.err = it.err, nil
		return nil, false, err
	}

	if it.opts.MaxSolutions > 0 && it.emitted >= it.opts.MaxSolutions {
		return nil, false, nil
	}

	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		br := it.stack[top]
		it.stack = it.stack[:top]
		d, depth := br.d, br.depth

		if err := d.Propagate(); err != nil {
			continue // branch eliminated, per spec.md §4.I step 5
		}
		if d.AllFilled() {
			if err := d.ValidateResult(); err != nil {
				continue
			}
			it.emitted++
			return d.Solution(), true, nil
		}

		if it.opts.MaxDepth > 0 && depth >= it.opts.MaxDepth {
			continue // depth guard: abandon rather than split further
		}

		cells, err := d.UnknownCells()
		if err != nil {
			continue
		}
		p := geom.CellIDToPoint(d.Size(), cells[0])

		d0, d1 := d.Clone(), d.Clone()
		d0.SetInside(p)
		d1.SetOutside(p)
		err0 := d0.Propagate()
		err1 := d1.Propagate()

		switch {
		case err0 != nil && err1 != nil:
			continue // both contradictory: this branch has no solution
		case err0 != nil:
			it.stack = append(it.stack, branch{d1, depth + 1})
		case err1 != nil:
			it.stack = append(it.stack, branch{d0, depth + 1})
		case markCommon(d, d0, d1):
			it.stack = append(it.stack, branch{d, depth}) // parent improved; retry before splitting further
		default:
			// Descend into one branch, then the other (LIFO: d0 runs first).
			it.stack = append(it.stack, branch{d1, depth + 1}, branch{d0, depth + 1})
		}
	}
	return nil, false, nil
}

// markCommon copies every side and edge both a and b agree is Fixed into
// parent, and reports whether parent's SideMap changed as a result (spec.md
// §4.I step 6). The id-pair enumeration mirrors solver.rs's mark_common: it
// walks consecutive and row-apart CellIds without checking true geometric
// adjacency, since copying an agreement between two non-adjacent ids is
// always either meaningful (a transitively-derived relation) or a harmless
// no-op (both sides still Unknown there).
func markCommon(parent, a, b *Driver) bool {
	before := parent.sm.Revision()

	n := parent.pz.CellLen()
	for i := 0; i < n; i++ {
		id := geom.CellID(i)
		v, ok := a.sm.GetSideID(id).IsFixed()
		if !ok {
			continue
		}
		if v2, ok2 := b.sm.GetSideID(id).IsFixed(); ok2 && v2 == v {
			parent.sm.SetSideID(id, v)
		}
	}

	cols := parent.pz.Size().Cols
	for i := 0; i < n-1; i++ {
		markCommonEdge(parent, a, b, geom.CellID(i), geom.CellID(i+1))
	}
	for i := 0; i < n-cols; i++ {
		markCommonEdge(parent, a, b, geom.CellID(i), geom.CellID(i+cols))
	}

	return parent.sm.Revision() != before
}

func markCommonEdge(parent, a, b *Driver, id0, id1 geom.CellID) {
	v, ok := a.sm.GetEdgeID(id0, id1).IsFixed()
	if !ok {
		return
	}
	if v2, ok2 := b.sm.GetEdgeID(id0, id1).IsFixed(); ok2 && v2 == v {
		parent.sm.SetEdgeID(id0, id1, v)
	}
}
