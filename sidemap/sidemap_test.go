package sidemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/sidemap"
)

func TestNewAllUnknown(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 2, Cols: 2})
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			s := sm.GetSide(geom.Point{Row: r, Col: c})
			assert.Equal(t, puzzle.Unknown, s.Kind)
		}
	}
	assert.False(t, sm.AllFilled())
}

func TestSetSideRoundTrip(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 2, Cols: 2})
	p := geom.Point{Row: 0, Col: 0}

	changed := sm.SetSide(p, puzzle.In)
	assert.True(t, changed)
	s := sm.GetSide(p)
	require.Equal(t, puzzle.Fixed, s.Kind)
	assert.Equal(t, puzzle.In, s.Value)

	assert.False(t, sm.SetSide(p, puzzle.In), "re-asserting the same side is a no-op")
}

func TestConflictingSidesDetectedLazily(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 1, Cols: 1})
	p := geom.Point{Row: 0, Col: 0}

	sm.SetInside(p)
	// Union always succeeds; the contradiction only surfaces on query.
	sm.SetOutside(p)

	s := sm.GetSide(p)
	assert.Equal(t, puzzle.Conflict, s.Kind)
}

func TestSetSameAndDifferentDeriveEdge(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 1, Cols: 2})
	p := geom.Point{Row: 0, Col: 0}
	q := geom.Point{Row: 0, Col: 1}

	e := sm.GetEdge(p, q)
	assert.Equal(t, puzzle.Unknown, e.Kind)

	sm.SetSame(p, q)
	e = sm.GetEdge(p, q)
	require.Equal(t, puzzle.Fixed, e.Kind)
	assert.Equal(t, puzzle.Cross, e.Value)

	sm2 := sidemap.New(geom.Size{Rows: 1, Cols: 2})
	sm2.SetDifferent(p, q)
	e2 := sm2.GetEdge(p, q)
	require.Equal(t, puzzle.Fixed, e2.Kind)
	assert.Equal(t, puzzle.Line, e2.Value)
}

func TestSetEdgeRejectsNonAdjacentPoints(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 2, Cols: 2})
	p := geom.Point{Row: 0, Col: 0}
	q := geom.Point{Row: 1, Col: 1}

	_, err := sm.SetEdge(p, q, puzzle.Line)
	assert.ErrorIs(t, err, sidemap.ErrNotAdjacent)
}

func TestSetEdgeAcceptsBorderPair(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 2, Cols: 2})
	p := geom.Point{Row: 0, Col: 0}
	outside := geom.OutsidePoint

	changed, err := sm.SetEdge(p, outside, puzzle.Cross)
	require.NoError(t, err)
	assert.True(t, changed)

	s := sm.GetSide(p)
	require.Equal(t, puzzle.Fixed, s.Kind)
	assert.Equal(t, puzzle.Out, s.Value)
}

func TestTransitiveSameSide(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 1, Cols: 3})
	a := geom.Point{Row: 0, Col: 0}
	b := geom.Point{Row: 0, Col: 1}
	c := geom.Point{Row: 0, Col: 2}

	sm.SetSame(a, b)
	sm.SetDifferent(b, c)

	e := sm.GetEdge(a, c)
	require.Equal(t, puzzle.Fixed, e.Kind)
	assert.Equal(t, puzzle.Line, e.Value)
}

func TestRevisionIncreasesOnlyOnChange(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 1, Cols: 2})
	p := geom.Point{Row: 0, Col: 0}
	q := geom.Point{Row: 0, Col: 1}

	start := sm.Revision()
	sm.SetSame(p, q)
	afterFirst := sm.Revision()
	assert.Greater(t, afterFirst, start)

	sm.SetSame(p, q)
	assert.Equal(t, afterFirst, sm.Revision(), "redundant assertion must not bump the revision")
}

func TestCloneIsIndependent(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 1, Cols: 2})
	p := geom.Point{Row: 0, Col: 0}
	q := geom.Point{Row: 0, Col: 1}
	sm.SetSame(p, q)

	clone := sm.Clone()
	clone.SetInside(p)

	assert.Equal(t, puzzle.Unknown, sm.GetSide(p).Kind, "mutating the clone must not affect the original")
	assert.Equal(t, puzzle.In, clone.GetSide(p).Value)
}

func TestAllFilled(t *testing.T) {
	sm := sidemap.New(geom.Size{Rows: 1, Cols: 2})
	p := geom.Point{Row: 0, Col: 0}
	q := geom.Point{Row: 0, Col: 1}

	assert.False(t, sm.AllFilled())
	sm.SetInside(p)
	assert.False(t, sm.AllFilled())
	sm.SetOutside(q)
	assert.True(t, sm.AllFilled())
}
