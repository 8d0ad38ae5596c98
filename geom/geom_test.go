package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/srither/geom"
)

// TestRotationGroupClosure checks spec law 1: for the four axial rotations
// R0,R90,R180,R270, Ri*Rj == R(i+j mod 4), and Ri applied to a Move equals
// the i-fold application of R90 to that Move.
func TestRotationGroupClosure(t *testing.T) {
	rots := []geom.Rotation{geom.RotUCW0, geom.RotUCW90, geom.RotUCW180, geom.RotUCW270}
	for i := range rots {
		for j := range rots {
			want := rots[(i+j)%len(rots)]
			assert.Equal(t, want, rots[i].Mul(rots[j]), "R%d*R%d", i*90, j*90)
		}
	}

	for i, r := range rots {
		v := geom.Up
		for k := 0; k < i; k++ {
			v = geom.RotUCW90.Apply(v)
		}
		assert.Equal(t, v, r.Apply(geom.Up), "R%d * Up", i*90)
	}
}

func TestAllRotationsAreDistinct(t *testing.T) {
	rots := geom.AllRotations()
	seen := map[geom.Rotation]bool{}
	for _, r := range rots {
		seen[r] = true
	}
	// Eight distinct matrices in the dihedral group.
	assert.Len(t, seen, 8)
}

func TestPointMoveArithmetic(t *testing.T) {
	p := geom.Point{Row: 2, Col: 3}
	m := geom.Move{DRow: 1, DCol: -1}
	q := p.Add(m)
	assert.Equal(t, geom.Point{Row: 3, Col: 2}, q)
	assert.Equal(t, m, q.Sub(p))
	assert.Equal(t, m.Neg(), geom.Move{DRow: -1, DCol: 1})
	assert.Equal(t, geom.Move{DRow: 2, DCol: -2}, m.Scale(2))
}

func TestCellIDRoundTrip(t *testing.T) {
	sz := geom.Size{Rows: 3, Cols: 4}
	for r := 0; r < sz.Rows; r++ {
		for c := 0; c < sz.Cols; c++ {
			p := geom.Point{Row: r, Col: c}
			id := geom.PointToCellID(sz, p)
			require.NotEqual(t, geom.OutsideCellID, id)
			assert.Equal(t, p, geom.CellIDToPoint(sz, id))
		}
	}

	assert.Equal(t, geom.OutsideCellID, geom.PointToCellID(sz, geom.Point{Row: -1, Col: 0}))
	assert.Equal(t, geom.OutsideCellID, geom.PointToCellID(sz, geom.Point{Row: 0, Col: 4}))
	assert.Equal(t, geom.OutsidePoint, geom.CellIDToPoint(sz, geom.OutsideCellID))
}

func TestTableOutsideSentinel(t *testing.T) {
	sz := geom.Size{Rows: 2, Cols: 2}
	tbl := geom.NewEmptyTable(sz, "OUT", "in")
	assert.Equal(t, "in", tbl.At(geom.Point{Row: 0, Col: 0}))
	assert.Equal(t, "OUT", tbl.At(geom.Point{Row: -1, Col: 0}))

	tbl.Set(geom.Point{Row: 1, Col: 1}, "changed")
	assert.Equal(t, "changed", tbl.At(geom.Point{Row: 1, Col: 1}))
}
