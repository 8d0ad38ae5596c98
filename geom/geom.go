package geom

// Point is a lattice coordinate (Row, Col). Both axes may be negative;
// OutsidePoint is the canonical out-of-grid point.
type Point struct {
	Row, Col int
}

// Move is a displacement between two Points.
type Move struct {
	DRow, DCol int
}

// Size is the (Rows, Cols) extent of a rectangular grid. Both must be > 0
// for any grid constructed from it.
type Size struct {
	Rows, Cols int
}

// OutsidePoint is the sentinel Point used for coordinates outside the grid.
var OutsidePoint = Point{Row: -1, Col: -1}

// Named single-step moves.
var (
	Up    = Move{DRow: -1, DCol: 0}
	Right = Move{DRow: 0, DCol: 1}
	Down  = Move{DRow: 1, DCol: 0}
	Left  = Move{DRow: 0, DCol: -1}
)

// AllDirections lists the four axis-aligned unit moves, in the teacher's
// clockwise-from-up order.
var AllDirections = [4]Move{Up, Right, Down, Left}

// Add returns p shifted by m.
func (p Point) Add(m Move) Point {
	return Point{Row: p.Row + m.DRow, Col: p.Col + m.DCol}
}

// Sub returns the Move that takes q to p (p - q).
func (p Point) Sub(q Point) Move {
	return Move{DRow: p.Row - q.Row, DCol: p.Col - q.Col}
}

// Less reports whether p sorts strictly before q in row-major order,
// matching the original source's derived Ord on Point.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Add returns the sum of two Moves.
func (m Move) Add(n Move) Move {
	return Move{DRow: m.DRow + n.DRow, DCol: m.DCol + n.DCol}
}

// Sub returns the difference of two Moves.
func (m Move) Sub(n Move) Move {
	return Move{DRow: m.DRow - n.DRow, DCol: m.DCol - n.DCol}
}

// Neg returns the inverse Move.
func (m Move) Neg() Move {
	return Move{DRow: -m.DRow, DCol: -m.DCol}
}

// Scale returns m multiplied by a scalar factor.
func (m Move) Scale(k int) Move {
	return Move{DRow: m.DRow * k, DCol: m.DCol * k}
}

// Rotation is a 2x2 integer matrix drawn from the 8-element dihedral group
// (the four axial rotations composed with an optional flip).
type Rotation struct {
	a, b, c, d int
}

// Named elements of the dihedral group: the four axial rotations and the
// two axis flips. AllRotations builds the remaining flip compositions.
var (
	RotUCW0   = Rotation{1, 0, 0, 1}
	RotUCW90  = Rotation{0, -1, 1, 0}
	RotUCW180 = Rotation{-1, 0, 0, -1}
	RotUCW270 = Rotation{0, 1, -1, 0}
	HFlip     = Rotation{1, 0, 0, -1}
	VFlip     = Rotation{-1, 0, 0, 1}
)

// AllRotations lists all eight elements of the dihedral group: the four
// axial rotations, then HFlip.Mul(r) for each of them.
func AllRotations() [8]Rotation {
	h0 := HFlip
	return [8]Rotation{
		RotUCW0, RotUCW90, RotUCW180, RotUCW270,
		h0, h0.Mul(RotUCW90), h0.Mul(RotUCW180), h0.Mul(RotUCW270),
	}
}

// Mul composes two rotations (matrix product, r then other is NOT the same
// as other then r — Mul follows matrix-multiplication order: r.Mul(other)
// applies other first, then r, matching the Rust `self * other` operator).
func (r Rotation) Mul(other Rotation) Rotation {
	return Rotation{
		a: r.a*other.a + r.b*other.c,
		b: r.a*other.b + r.b*other.d,
		c: r.c*other.a + r.d*other.c,
		d: r.c*other.b + r.d*other.d,
	}
}

// Apply rotates a Move by r (matrix-vector product).
func (r Rotation) Apply(m Move) Move {
	return Move{
		DRow: r.a*m.DRow + r.b*m.DCol,
		DCol: r.c*m.DRow + r.d*m.DCol,
	}
}

// Equal reports whether two rotations are the same matrix.
func (r Rotation) Equal(other Rotation) bool {
	return r == other
}
