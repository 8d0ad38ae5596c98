package theorem

import (
	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
)

// PatternKind tags a Pattern's variant.
type PatternKind int

const (
	// HintPattern asserts that a cell carries a specific hint value.
	HintPattern PatternKind = iota
	// EdgePattern asserts that an adjacent cell pair has a specific Edge.
	EdgePattern
)

// Pattern is the Hint(value, point) | Edge(kind, p0, p1) sum type described
// in spec.md §3. Edge patterns are normalized so P0 sorts no later than P1
// (geom.Point.Less), matching the original's `Ord`-based normalization.
type Pattern struct {
	Kind      PatternKind
	HintValue int
	EdgeKind  puzzle.Edge
	P0, P1    geom.Point
}

// NewHintPattern builds a normalized Hint pattern.
func NewHintPattern(value int, p geom.Point) Pattern {
	return Pattern{Kind: HintPattern, HintValue: value, P0: p}
}

// NewEdgePattern builds a normalized Edge pattern.
func NewEdgePattern(kind puzzle.Edge, p0, p1 geom.Point) Pattern {
	return Pattern{Kind: EdgePattern, EdgeKind: kind, P0: p0, P1: p1}.normalized()
}

// NewCrossPattern builds a normalized Cross edge pattern.
func NewCrossPattern(p0, p1 geom.Point) Pattern {
	return NewEdgePattern(puzzle.Cross, p0, p1)
}

// NewLinePattern builds a normalized Line edge pattern.
func NewLinePattern(p0, p1 geom.Point) Pattern {
	return NewEdgePattern(puzzle.Line, p0, p1)
}

func (p Pattern) normalized() Pattern {
	if p.Kind == EdgePattern && p.P1.Less(p.P0) {
		p.P0, p.P1 = p.P1, p.P0
	}
	return p
}

// Rotate rotates a Pattern's points about the origin.
func (p Pattern) Rotate(rot geom.Rotation) Pattern {
	var origin geom.Point
	rotate := func(pt geom.Point) geom.Point {
		return origin.Add(rot.Apply(pt.Sub(origin)))
	}
	switch p.Kind {
	case HintPattern:
		p.P0 = rotate(p.P0)
	case EdgePattern:
		p.P0 = rotate(p.P0)
		p.P1 = rotate(p.P1)
	}
	return p.normalized()
}

// Shift translates a Pattern's points by d.
func (p Pattern) Shift(d geom.Move) Pattern {
	switch p.Kind {
	case HintPattern:
		p.P0 = p.P0.Add(d)
	case EdgePattern:
		p.P0 = p.P0.Add(d)
		p.P1 = p.P1.Add(d)
	}
	return p.normalized()
}

// Less orders patterns: HintPattern sorts before EdgePattern; within a kind,
// fields compare in declaration order. Order has no semantic meaning beyond
// giving Theorem a stable sort/dedup key.
func (p Pattern) Less(other Pattern) bool {
	if p.Kind != other.Kind {
		return p.Kind < other.Kind
	}
	switch p.Kind {
	case HintPattern:
		if p.HintValue != other.HintValue {
			return p.HintValue < other.HintValue
		}
		return p.P0.Less(other.P0)
	default:
		if p.EdgeKind != other.EdgeKind {
			return p.EdgeKind < other.EdgeKind
		}
		if p.P0 != other.P0 {
			return p.P0.Less(other.P0)
		}
		return p.P1.Less(other.P1)
	}
}
