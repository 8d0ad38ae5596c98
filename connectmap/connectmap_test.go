package connectmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/srither/connectmap"
	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/sidemap"
)

func TestSyncGroupsCrossConnectedCells(t *testing.T) {
	pz, err := puzzle.New(geom.Size{Rows: 1, Cols: 2}, [][]puzzle.Hint{{puzzle.NoHint, puzzle.NoHint}})
	require.NoError(t, err)

	sm := sidemap.New(pz.Size())
	a := geom.Point{Row: 0, Col: 0}
	b := geom.Point{Row: 0, Col: 1}
	sm.SetSame(a, b)

	cm := connectmap.New(pz)
	require.NoError(t, cm.Sync(sm))

	aID := geom.PointToCellID(pz.Size(), a)
	bID := geom.PointToCellID(pz.Size(), b)
	assert.Equal(t, cm.Get(aID).Coord, cm.Get(bID).Coord, "cross-connected cells must share a region")
}

func TestCountAreaAfterFullSolve(t *testing.T) {
	// 1x1 hint 0: the cell is Out, merged with the outside region -> 1 region total.
	pz, err := puzzle.New(geom.Size{Rows: 1, Cols: 1}, [][]puzzle.Hint{{puzzle.HintOf(0)}})
	require.NoError(t, err)

	sm := sidemap.New(pz.Size())
	p := geom.Point{Row: 0, Col: 0}
	sm.SetOutside(p)

	cm := connectmap.New(pz)
	require.NoError(t, cm.Sync(sm))
	assert.Equal(t, 1, cm.CountArea())
}

func TestSyncDetectsConflict(t *testing.T) {
	pz, err := puzzle.New(geom.Size{Rows: 1, Cols: 1}, [][]puzzle.Hint{{puzzle.NoHint}})
	require.NoError(t, err)

	sm := sidemap.New(pz.Size())
	p := geom.Point{Row: 0, Col: 0}
	sm.SetInside(p)
	sm.SetOutside(p)

	cm := connectmap.New(pz)
	err = cm.Sync(sm)
	assert.ErrorIs(t, err, connectmap.ErrInvalidBoard)
}

func TestUnknownCellsSortedByUnknownEdgeCount(t *testing.T) {
	pz, err := puzzle.New(geom.Size{Rows: 1, Cols: 3}, [][]puzzle.Hint{{puzzle.NoHint, puzzle.NoHint, puzzle.NoHint}})
	require.NoError(t, err)

	sm := sidemap.New(pz.Size())
	a := geom.Point{Row: 0, Col: 0}
	b := geom.Point{Row: 0, Col: 1}
	c := geom.Point{Row: 0, Col: 2}
	// Fix the a-b edge Cross: a and b merge into one region whose unknown
	// edges are both cells' remaining ones (6), while c keeps its own 4, so
	// c sorts first.
	sm.SetSame(a, b)

	cm := connectmap.New(pz)
	require.NoError(t, cm.Sync(sm))

	cells := cm.UnknownCells()
	require.NotEmpty(t, cells)
	require.Len(t, cells, 3)
	assert.Equal(t, geom.PointToCellID(pz.Size(), c), cells[0])
	for i := 1; i < len(cells); i++ {
		assert.LessOrEqual(t, len(cm.Get(cells[i-1]).UnknownEdge), len(cm.Get(cells[i]).UnknownEdge))
	}
}
