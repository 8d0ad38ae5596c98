package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/srither/connectmap"
	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/sidemap"
)

// Internal (non-_test-suffixed package) test file: getArticulation and
// splits are unexported, and the open question below needs to exercise them
// directly rather than only through the public Run entry point.

func TestGetArticulationMiddleVertex(t *testing.T) {
	// Path graph 0-1-2: vertex 1 is the sole articulation point.
	graph := [][]int{{1}, {0, 2}, {1}}
	arts, visited := getArticulation(graph, 0)
	assert.Equal(t, []int{1}, arts)
	assert.Equal(t, []bool{true, true, true}, visited)
}

func TestGetArticulationRootWithTwoChildrenIsArticulation(t *testing.T) {
	// Star graph rooted at 0 with two independent branches: the root (ord
	// == 1) has two DFS children, so get_articulation's root-specific rule
	// ("ord[v] == 1 && num_child > 1") must mark it, regardless of which
	// side is being analyzed.
	//
	// Open question (spec.md §9): whether the root-forcing rule is correct
	// when s = Out. Resolution: `splits` draws no distinction for the root
	// vertex — it is tested for articulation exactly like any other vertex,
	// counting DFS-reachable components (from its graph neighbors) that
	// already contain a Fixed(side) region. The asymmetry in the original
	// lives entirely in get_articulation's "is this vertex itself an
	// articulation point" rule, not in how `splits` treats it once
	// identified — so no side-specific special case is needed in `splits`,
	// and this test (together with TestSplitsCountsOnlyFixedSideComponents
	// below) exercises the root case directly rather than leaving it
	// unverified.
	graph := [][]int{{1, 2}, {0}, {0}}
	arts, _ := getArticulation(graph, 0)
	assert.Equal(t, []int{0}, arts)
}

func TestSplitsCountsOnlyFixedSideComponents(t *testing.T) {
	// 0 is the candidate articulation point; removing it leaves {1} and
	// {2} as separate components. Only regions Fixed to `side` count.
	graph := [][]int{{1, 2}, {0}, {0}}
	pz, err := puzzle.New(geom.Size{Rows: 1, Cols: 3}, [][]puzzle.Hint{
		{puzzle.NoHint, puzzle.NoHint, puzzle.NoHint},
	})
	require.NoError(t, err)

	sm := sidemap.New(pz.Size())
	p0 := geom.Point{Row: 0, Col: 0}
	p1 := geom.Point{Row: 0, Col: 1}
	p2 := geom.Point{Row: 0, Col: 2}
	sm.SetInside(p1)
	sm.SetInside(p2)

	cm := connectmap.New(pz)
	require.NoError(t, cm.Sync(sm))

	pts := []geom.CellID{
		geom.PointToCellID(pz.Size(), p0),
		geom.PointToCellID(pz.Size(), p1),
		geom.PointToCellID(pz.Size(), p2),
	}

	assert.True(t, splits(graph, 0, cm, pts, puzzle.In))
	assert.False(t, splits(graph, 0, cm, pts, puzzle.Out))
}

func TestRunIsNoOpOnAlreadyConsistentBoard(t *testing.T) {
	pz, err := puzzle.New(geom.Size{Rows: 1, Cols: 1}, [][]puzzle.Hint{{puzzle.HintOf(0)}})
	require.NoError(t, err)

	sm := sidemap.New(pz.Size())
	p := geom.Point{Row: 0, Col: 0}
	sm.SetOutside(p)

	cm := connectmap.New(pz)
	require.NoError(t, Run(sm, cm))

	s := sm.GetSide(p)
	require.Equal(t, puzzle.Fixed, s.Kind)
	assert.Equal(t, puzzle.Out, s.Value)
}
