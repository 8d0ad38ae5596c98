package theorems

import (
	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/theorem"
)

// Default returns the built-in theorem set: every rotation of each of these
// is tried by theorempool.NewPool, so only one canonical orientation of each
// theorem needs to be listed here.
func Default() []theorem.Theorem {
	return []theorem.Theorem{
		hint0(),
		hint0Hint3Corner(),
		hint1WithLineDiagonal(),
		hint3WithCrossDiagonal(),
	}
}

// hint0 forces every edge around a hint-0 cell to Cross: a hint-0 cell has
// no Line edges at all, so it agrees in Side with all four neighbors.
// Unlike hint-3 (3 of 4 edges Line, but which one varies), this is the one
// single-cell hint value fully determined on its own.
func hint0() theorem.Theorem {
	p := geom.Point{}
	var result []theorem.Pattern
	for _, d := range geom.AllDirections {
		result = append(result, theorem.NewCrossPattern(p, p.Add(d)))
	}
	return theorem.New(geom.Size{Rows: 1, Cols: 1},
		[]theorem.Pattern{theorem.NewHintPattern(0, p)},
		result,
	)
}

// hint0Hint3Corner handles a hint-0 cell directly left of a hint-3 cell:
// the hint-0 cell's Out forces all four of its own edges Cross, and
// combined with the hint-3 cell needing 3 Line edges out of 4, the
// surrounding ring of cells is fully determined.
func hint0Hint3Corner() theorem.Theorem {
	pt := func(r, c int) geom.Point { return geom.Point{Row: r, Col: c} }
	return theorem.New(geom.Size{Rows: 3, Cols: 3},
		[]theorem.Pattern{
			theorem.NewHintPattern(0, pt(1, 0)),
			theorem.NewHintPattern(3, pt(1, 1)),
		},
		[]theorem.Pattern{
			theorem.NewCrossPattern(pt(1, 0), pt(1, -1)),
			theorem.NewCrossPattern(pt(1, 0), pt(1, 1)),
			theorem.NewCrossPattern(pt(1, 0), pt(0, 0)),
			theorem.NewCrossPattern(pt(1, 0), pt(2, 0)),
			theorem.NewCrossPattern(pt(0, 1), pt(0, 2)),
			theorem.NewCrossPattern(pt(1, 2), pt(0, 2)),
			theorem.NewCrossPattern(pt(1, 2), pt(2, 2)),
			theorem.NewCrossPattern(pt(2, 1), pt(2, 2)),
			theorem.NewLinePattern(pt(0, 0), pt(0, 1)),
			theorem.NewLinePattern(pt(0, 1), pt(1, 1)),
			theorem.NewLinePattern(pt(1, 1), pt(1, 2)),
			theorem.NewLinePattern(pt(1, 1), pt(2, 1)),
			theorem.NewLinePattern(pt(2, 0), pt(2, 1)),
		},
	)
}

// hint1WithLineDiagonal handles a hint-1 cell whose diagonal neighbors
// across a 2x2 block are already known to differ (a Line runs between
// them): the hint's single Line edge is already accounted for, so both of
// the hint cell's other two edges must be Cross.
func hint1WithLineDiagonal() theorem.Theorem {
	pt := func(r, c int) geom.Point { return geom.Point{Row: r, Col: c} }
	return theorem.New(geom.Size{Rows: 2, Cols: 2},
		[]theorem.Pattern{
			theorem.NewHintPattern(1, pt(1, 1)),
			theorem.NewLinePattern(pt(1, 0), pt(0, 1)),
		},
		[]theorem.Pattern{
			theorem.NewCrossPattern(pt(1, 1), pt(1, 2)),
			theorem.NewCrossPattern(pt(1, 1), pt(2, 1)),
		},
	)
}

// hint3WithCrossDiagonal is the dual of hint1WithLineDiagonal: a hint-3
// cell whose diagonal neighbors are already known to agree (Cross between
// them) needs both other edges Line, which in turn forces the rest of the
// corner.
func hint3WithCrossDiagonal() theorem.Theorem {
	pt := func(r, c int) geom.Point { return geom.Point{Row: r, Col: c} }
	return theorem.New(geom.Size{Rows: 3, Cols: 3},
		[]theorem.Pattern{
			theorem.NewHintPattern(3, pt(1, 1)),
			theorem.NewCrossPattern(pt(1, 0), pt(0, 1)),
		},
		[]theorem.Pattern{
			theorem.NewCrossPattern(pt(0, 0), pt(0, 1)),
			theorem.NewCrossPattern(pt(0, 0), pt(1, 0)),
			theorem.NewLinePattern(pt(0, 1), pt(1, 1)),
			theorem.NewLinePattern(pt(1, 0), pt(1, 1)),
			theorem.NewLinePattern(pt(1, 2), pt(2, 1)),
		},
	)
}
