package sidemap

import (
	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/unionfind"
)

// SideMap derives, for every cell, a puzzle.State[puzzle.Side] and for
// every adjacent cell pair a puzzle.State[puzzle.Edge], from a parity
// unionfind.UnionFind over 2*(N+1) nodes (item 0 is the outside cell).
//
// The grid's border is fixed to Out "at construction" per spec.md §3/§4.D
// automatically: every point outside the grid already maps to CellID 0 (the
// outside cell) via geom.PointToCellID, so there is nothing further for New
// to union — the single outside cell is trivially same-side as itself, and
// every interior cell starts Unknown.
type SideMap struct {
	size     geom.Size
	uf       *unionfind.UnionFind
	revision uint64
}

// New builds a SideMap for a grid of the given size, with every interior
// cell Unknown and the outside cell fixed Out.
func New(size geom.Size) *SideMap {
	n := geom.NumCells(size) + 1 // +1 for the outside cell
	return &SideMap{
		size: size,
		uf:   unionfind.New(2 * n),
	}
}

// Revision returns the monotonically non-decreasing change counter.
func (sm *SideMap) Revision() uint64 {
	return sm.revision
}

func key0(id geom.CellID) int { return int(id) * 2 }
func key1(id geom.CellID) int { return int(id)*2 + 1 }

func (sm *SideMap) cellID(p geom.Point) geom.CellID {
	return geom.PointToCellID(sm.size, p)
}

func (sm *SideMap) isSameID(a, b geom.CellID) bool {
	return sm.uf.Find(key0(a), key0(b))
}

func (sm *SideMap) isDifferentID(a, b geom.CellID) bool {
	return sm.uf.Find(key0(a), key1(b))
}

// SetSameID asserts that cells a and b lie on the same side. Returns true
// iff the structure changed.
func (sm *SideMap) SetSameID(a, b geom.CellID) bool {
	c1 := sm.uf.Union(key0(a), key0(b))
	c2 := sm.uf.Union(key1(a), key1(b))
	changed := c1 || c2
	if changed {
		sm.revision++
	}
	return changed
}

// SetDifferentID asserts that cells a and b lie on opposite sides. Returns
// true iff the structure changed.
func (sm *SideMap) SetDifferentID(a, b geom.CellID) bool {
	c1 := sm.uf.Union(key0(a), key1(b))
	c2 := sm.uf.Union(key1(a), key0(b))
	changed := c1 || c2
	if changed {
		sm.revision++
	}
	return changed
}

// SetInsideID asserts cell a is inside the loop.
func (sm *SideMap) SetInsideID(a geom.CellID) bool {
	return sm.SetDifferentID(a, geom.OutsideCellID)
}

// SetOutsideID asserts cell a is outside the loop.
func (sm *SideMap) SetOutsideID(a geom.CellID) bool {
	return sm.SetSameID(a, geom.OutsideCellID)
}

// SetSideID dispatches to SetInsideID/SetOutsideID. It panics if side is not
// puzzle.In or puzzle.Out (callers must never pass an unresolved state).
func (sm *SideMap) SetSideID(a geom.CellID, side puzzle.Side) bool {
	switch side {
	case puzzle.In:
		return sm.SetInsideID(a)
	case puzzle.Out:
		return sm.SetOutsideID(a)
	default:
		panic("sidemap: SetSideID requires puzzle.In or puzzle.Out")
	}
}

// GetSideID returns the current State of cell a.
func (sm *SideMap) GetSideID(a geom.CellID) puzzle.State[puzzle.Side] {
	in := sm.isDifferentID(a, geom.OutsideCellID)
	out := sm.isSameID(a, geom.OutsideCellID)
	switch {
	case in && out:
		return puzzle.ConflictState[puzzle.Side]()
	case in:
		return puzzle.FixedState(puzzle.In)
	case out:
		return puzzle.FixedState(puzzle.Out)
	default:
		return puzzle.UnknownState[puzzle.Side]()
	}
}

// GetEdgeID returns the current State of the edge between a and b: Line iff
// they are proven to differ, Cross iff proven same, Conflict iff both hold.
func (sm *SideMap) GetEdgeID(a, b geom.CellID) puzzle.State[puzzle.Edge] {
	same := sm.isSameID(a, b)
	diff := sm.isDifferentID(a, b)
	switch {
	case same && diff:
		return puzzle.ConflictState[puzzle.Edge]()
	case diff:
		return puzzle.FixedState(puzzle.Line)
	case same:
		return puzzle.FixedState(puzzle.Cross)
	default:
		return puzzle.UnknownState[puzzle.Edge]()
	}
}

// SetEdgeID applies an edge assertion between a and b: Line asserts
// different sides, Cross asserts same side.
func (sm *SideMap) SetEdgeID(a, b geom.CellID, e puzzle.Edge) bool {
	if e == puzzle.Line {
		return sm.SetDifferentID(a, b)
	}
	return sm.SetSameID(a, b)
}

// adjacent reports whether a and b are either two geometrically adjacent
// grid cells, or one interior boundary cell and the outside cell.
func (sm *SideMap) adjacent(a, b geom.CellID) bool {
	if a == geom.OutsideCellID || b == geom.OutsideCellID {
		inner := a
		if inner == geom.OutsideCellID {
			inner = b
		}
		p := geom.CellIDToPoint(sm.size, inner)
		return p.Row == 0 || p.Row == sm.size.Rows-1 || p.Col == 0 || p.Col == sm.size.Cols-1
	}
	pa := geom.CellIDToPoint(sm.size, a)
	pb := geom.CellIDToPoint(sm.size, b)
	m := pa.Sub(pb)
	for _, d := range geom.AllDirections {
		if d == m {
			return true
		}
	}
	return false
}

// SetEdge is the Point-based counterpart of SetEdgeID; it additionally
// validates that p and q are adjacent grid cells (or a boundary cell and a
// point outside the grid), returning ErrNotAdjacent otherwise.
func (sm *SideMap) SetEdge(p, q geom.Point, e puzzle.Edge) (bool, error) {
	a, b := sm.cellID(p), sm.cellID(q)
	if !sm.adjacent(a, b) {
		return false, ErrNotAdjacent
	}
	return sm.SetEdgeID(a, b, e), nil
}

// SetSame asserts p and q lie on the same side.
func (sm *SideMap) SetSame(p, q geom.Point) bool {
	return sm.SetSameID(sm.cellID(p), sm.cellID(q))
}

// SetDifferent asserts p and q lie on opposite sides.
func (sm *SideMap) SetDifferent(p, q geom.Point) bool {
	return sm.SetDifferentID(sm.cellID(p), sm.cellID(q))
}

// SetInside asserts p is inside the loop.
func (sm *SideMap) SetInside(p geom.Point) bool {
	return sm.SetInsideID(sm.cellID(p))
}

// SetOutside asserts p is outside the loop.
func (sm *SideMap) SetOutside(p geom.Point) bool {
	return sm.SetOutsideID(sm.cellID(p))
}

// SetSide dispatches to SetInside/SetOutside.
func (sm *SideMap) SetSide(p geom.Point, side puzzle.Side) bool {
	return sm.SetSideID(sm.cellID(p), side)
}

// GetSide returns the current State of p.
func (sm *SideMap) GetSide(p geom.Point) puzzle.State[puzzle.Side] {
	return sm.GetSideID(sm.cellID(p))
}

// GetEdge returns the current State of the edge between p and q.
func (sm *SideMap) GetEdge(p, q geom.Point) puzzle.State[puzzle.Edge] {
	return sm.GetEdgeID(sm.cellID(p), sm.cellID(q))
}

// AllFilled reports whether every interior cell (CellID 1..N) has a side
// other than Unknown.
func (sm *SideMap) AllFilled() bool {
	n := geom.NumCells(sm.size)
	for i := 1; i <= n; i++ {
		if s := sm.GetSideID(geom.CellID(i)); s.Kind == puzzle.Unknown {
			return false
		}
	}
	return true
}

// Size returns the grid size this SideMap was built for.
func (sm *SideMap) Size() geom.Size {
	return sm.size
}

// Clone returns a deep, independent copy, used by the search driver to
// explore hypothetical branches.
func (sm *SideMap) Clone() *SideMap {
	return &SideMap{
		size:     sm.size,
		uf:       sm.uf.Clone(),
		revision: sm.revision,
	}
}
