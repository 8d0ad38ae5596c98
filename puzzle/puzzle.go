package puzzle

import "github.com/gifnksm/srither/geom"

// Side is whether a cell lies inside (In) or outside (Out) the loop.
type Side int

const (
	In Side = iota
	Out
)

func (s Side) String() string {
	if s == In {
		return "In"
	}
	return "Out"
}

// Opposite returns the other Side.
func (s Side) Opposite() Side {
	if s == In {
		return Out
	}
	return In
}

// Edge is whether the loop passes between two adjacent cells (Line) or not
// (Cross). Equivalently: Line iff the two sides differ, Cross iff they
// agree.
type Edge int

const (
	Line Edge = iota
	Cross
)

func (e Edge) String() string {
	if e == Line {
		return "Line"
	}
	return "Cross"
}

// Hint is an optional integer in {0,1,2,3}. A missing hint is represented by
// HasHint == false; Value is meaningless otherwise.
type Hint struct {
	Value   int
	HasHint bool
}

// NoHint is the absent-hint value.
var NoHint = Hint{}

// HintOf returns a present Hint with the given value.
func HintOf(v int) Hint {
	return Hint{Value: v, HasHint: true}
}

// Puzzle is an immutable rectangular board of hints. Once constructed, a
// Puzzle never changes; all solver state lives alongside it. side is nil for
// a Puzzle built directly by New, and populated only by WithSides, which
// the search package uses to attach a solved Side assignment to a fresh copy
// rather than mutate the original.
type Puzzle struct {
	size geom.Size
	hint geom.Table[Hint]
	side *geom.Table[Side]
}

// New builds a Puzzle of the given size from a row-major slice of hint rows.
// Returns ErrEmptySize, ErrHintRowMismatch, ErrHintColMismatch or
// ErrHintOutOfRange for invalid input.
func New(size geom.Size, rows [][]Hint) (*Puzzle, error) {
	if size.Rows <= 0 || size.Cols <= 0 {
		return nil, ErrEmptySize
	}
	if len(rows) != size.Rows {
		return nil, ErrHintRowMismatch
	}
	flat := make([]Hint, 0, size.Rows*size.Cols)
	for _, row := range rows {
		if len(row) != size.Cols {
			return nil, ErrHintColMismatch
		}
		for _, h := range row {
			if h.HasHint && (h.Value < 0 || h.Value > 3) {
				return nil, ErrHintOutOfRange
			}
			flat = append(flat, h)
		}
	}
	return &Puzzle{
		size: size,
		hint: geom.NewTable(size, NoHint, flat),
	}, nil
}

// Size returns the puzzle's grid size.
func (p *Puzzle) Size() geom.Size { return p.size }

// Hint returns the hint at pt (NoHint if pt carries none or lies outside
// the grid).
func (p *Puzzle) Hint(pt geom.Point) Hint {
	return p.hint.At(pt)
}

// HintByID returns the hint for a CellID.
func (p *Puzzle) HintByID(id geom.CellID) Hint {
	return p.hint.AtID(id)
}

// CellLen returns 1 (the outside cell) plus the number of interior cells.
func (p *Puzzle) CellLen() int {
	return geom.NumCells(p.size) + 1
}

// Points yields every interior Point in row-major order.
func (p *Puzzle) Points() []geom.Point {
	return p.hint.Points()
}

// WithSides returns a copy of p with a solved per-cell Side assignment
// attached. p itself is left untouched.
func (p *Puzzle) WithSides(sides geom.Table[Side]) *Puzzle {
	cp := *p
	cp.side = &sides
	return &cp
}

// Side returns the solved Side of pt and true, or (0, false) if p carries no
// solved assignment (every Puzzle built directly by New).
func (p *Puzzle) Side(pt geom.Point) (Side, bool) {
	if p.side == nil {
		return 0, false
	}
	return p.side.At(pt), true
}

// SumOfHints returns the sum of every present hint value on the board.
func (p *Puzzle) SumOfHints() int {
	sum := 0
	for _, pt := range p.Points() {
		if h := p.Hint(pt); h.HasHint {
			sum += h.Value
		}
	}
	return sum
}
