package connectmap

import (
	"sort"

	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/sidemap"
	"github.com/gifnksm/srither/unionfind"
)

// Record is one same-side region: the cells reachable from each other
// purely through proven-Cross edges.
type Record struct {
	// Coord is the region's representative CellId.
	Coord geom.CellID
	// Side is the region's current State<Side>.
	Side puzzle.State[puzzle.Side]
	// SumOfHint is the sum of the hints of every interior cell in the
	// region.
	SumOfHint int
	// UnknownEdge lists (as a multiset) the representatives of every
	// neighboring region still reachable via an Unknown edge.
	UnknownEdge []geom.CellID
}

type cellPair struct {
	a, b geom.CellID
}

// ConnectMap groups a Puzzle's cells into same-side regions, lazily
// recomputed from a sidemap.SideMap.
type ConnectMap struct {
	pz       *puzzle.Puzzle
	pairs    []cellPair
	uf       *unionfind.UnionFind
	records  map[geom.CellID]*Record
	revision uint64
	synced   bool
}

// New builds an (unsynced) ConnectMap for pz. Call Sync before using Get or
// CountArea.
func New(pz *puzzle.Puzzle) *ConnectMap {
	size := pz.Size()
	var pairs []cellPair
	for _, p := range pz.Points() {
		pid := geom.PointToCellID(size, p)
		for _, d := range geom.AllDirections {
			q := p.Add(d)
			qid := geom.PointToCellID(size, q)
			if qid != geom.OutsideCellID && pid >= qid {
				continue // interior pair already counted from the other side
			}
			pairs = append(pairs, cellPair{pid, qid})
		}
	}
	return &ConnectMap{pz: pz, pairs: pairs}
}

func combineSide(a, b puzzle.State[puzzle.Side]) puzzle.State[puzzle.Side] {
	switch {
	case a.Kind == puzzle.Conflict || b.Kind == puzzle.Conflict:
		return puzzle.ConflictState[puzzle.Side]()
	case a.Kind == puzzle.Fixed && b.Kind == puzzle.Fixed:
		if a.Value != b.Value {
			return puzzle.ConflictState[puzzle.Side]()
		}
		return a
	case a.Kind == puzzle.Fixed:
		return a
	case b.Kind == puzzle.Fixed:
		return b
	default:
		return puzzle.UnknownState[puzzle.Side]()
	}
}

// Sync refreshes every Record from the current SideMap state. It is a
// no-op if sm's revision has not advanced since the last successful Sync.
func (cm *ConnectMap) Sync(sm *sidemap.SideMap) error {
	if cm.synced && sm.Revision() == cm.revision {
		return nil
	}

	n := cm.pz.CellLen()
	uf := unionfind.New(n)
	for _, pr := range cm.pairs {
		e := sm.GetEdgeID(pr.a, pr.b)
		if e.Kind == puzzle.Fixed && e.Value == puzzle.Cross {
			uf.Union(int(pr.a), int(pr.b))
		}
	}

	records := map[geom.CellID]*Record{}
	for i := 0; i < n; i++ {
		id := geom.CellID(i)
		rep := geom.CellID(uf.Repr(i))
		rec, ok := records[rep]
		if !ok {
			rec = &Record{Coord: rep}
			records[rep] = rec
		}
		if id != geom.OutsideCellID {
			if h := cm.pz.HintByID(id); h.HasHint {
				rec.SumOfHint += h.Value
			}
		}
		rec.Side = combineSide(rec.Side, sm.GetSideID(id))
	}

	for _, pr := range cm.pairs {
		e := sm.GetEdgeID(pr.a, pr.b)
		if e.Kind != puzzle.Unknown {
			continue
		}
		ra := geom.CellID(uf.Repr(int(pr.a)))
		rb := geom.CellID(uf.Repr(int(pr.b)))
		if ra == rb {
			continue
		}
		records[ra].UnknownEdge = append(records[ra].UnknownEdge, rb)
		records[rb].UnknownEdge = append(records[rb].UnknownEdge, ra)
	}

	for _, rec := range records {
		if rec.Side.Kind == puzzle.Conflict {
			return ErrInvalidBoard
		}
	}

	cm.uf = uf
	cm.records = records
	cm.revision = sm.Revision()
	cm.synced = true
	return nil
}

// Clone returns an independent copy for a hypothetical search branch. pairs
// is immutable after New and is shared; uf and records are replaced wholesale
// (never mutated in place) by the next Sync, so sharing them read-only here
// is also safe until then.
func (cm *ConnectMap) Clone() *ConnectMap {
	return &ConnectMap{
		pz:       cm.pz,
		pairs:    cm.pairs,
		uf:       cm.uf,
		records:  cm.records,
		revision: cm.revision,
		synced:   cm.synced,
	}
}

// CellLen returns 1 (outside cell) plus the puzzle's interior cell count.
func (cm *ConnectMap) CellLen() int {
	return cm.pz.CellLen()
}

// Get returns the Record for p's region.
func (cm *ConnectMap) Get(p geom.CellID) Record {
	rep := geom.CellID(cm.uf.Repr(int(p)))
	return *cm.records[rep]
}

// CountArea returns the number of distinct regions.
func (cm *ConnectMap) CountArea() int {
	return len(cm.records)
}

// UnknownCells returns every interior cell whose region Side is still
// Unknown, sorted by ascending number of unknown boundary edges (cells with
// the fewest alternatives first), per spec.md §4.I step 3.
func (cm *ConnectMap) UnknownCells() []geom.CellID {
	var cells []geom.CellID
	for i := 1; i < cm.pz.CellLen(); i++ {
		id := geom.CellID(i)
		if cm.Get(id).Side.Kind == puzzle.Unknown {
			cells = append(cells, id)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		return len(cm.Get(cells[i]).UnknownEdge) < len(cm.Get(cells[j]).UnknownEdge)
	})
	return cells
}
