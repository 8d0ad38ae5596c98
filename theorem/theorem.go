package theorem

import (
	"sort"

	"github.com/gifnksm/srither/geom"
)

// Theorem is a local deduction rule: if every matcher Pattern holds within a
// bounding box of the given Size, every result Pattern must also hold.
// Matcher and result are each kept sorted and duplicate-free.
type Theorem struct {
	size    geom.Size
	matcher []Pattern
	result  []Pattern
}

// New builds a Theorem from unsorted matcher/result pattern slices.
func New(size geom.Size, matcher, result []Pattern) Theorem {
	return Theorem{size: size, matcher: matcher, result: result}.normalized()
}

// Size returns the Theorem's bounding box.
func (t Theorem) Size() geom.Size { return t.size }

// Matcher returns the sorted, deduplicated matcher patterns.
func (t Theorem) Matcher() []Pattern { return t.matcher }

// Result returns the sorted, deduplicated result patterns.
func (t Theorem) Result() []Pattern { return t.result }

func sortDedup(pats []Pattern) []Pattern {
	sort.Slice(pats, func(i, j int) bool { return pats[i].Less(pats[j]) })
	out := pats[:0]
	for i, p := range pats {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func (t Theorem) normalized() Theorem {
	t.matcher = sortDedup(append([]Pattern(nil), t.matcher...))
	t.result = sortDedup(append([]Pattern(nil), t.result...))
	return t
}

// Head returns the canonical anchoring pattern: a Hint pattern if the
// matcher contains one, else the lexicographically first Edge pattern.
// Since matcher is sorted and HintPattern < EdgePattern, this is simply the
// first element.
func (t Theorem) Head() Pattern {
	return t.matcher[0]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Rotate returns t rotated by rot and re-normalized (including a shift back
// into the first quadrant, since rotation can move points negative).
func (t Theorem) Rotate(rot geom.Rotation) Theorem {
	sizeMove := rot.Apply(geom.Move{DRow: t.size.Rows, DCol: t.size.Cols})

	var d geom.Move
	if sizeMove.DRow < 0 {
		d.DRow += -sizeMove.DRow - 1
	}
	if sizeMove.DCol < 0 {
		d.DCol += -sizeMove.DCol - 1
	}

	newSize := geom.Size{Rows: abs(sizeMove.DRow), Cols: abs(sizeMove.DCol)}
	matcher := make([]Pattern, len(t.matcher))
	for i, p := range t.matcher {
		matcher[i] = p.Rotate(rot).Shift(d)
	}
	result := make([]Pattern, len(t.result))
	for i, p := range t.result {
		result[i] = p.Rotate(rot).Shift(d)
	}

	return Theorem{size: newSize, matcher: matcher, result: result}.normalized()
}

// Shift returns t with every pattern translated by d. Unlike Rotate, this
// does not renormalize the bounding box size (d is the caller's placement
// offset, applied at match time, not a canonicalization).
func (t Theorem) Shift(d geom.Move) Theorem {
	matcher := make([]Pattern, len(t.matcher))
	for i, p := range t.matcher {
		matcher[i] = p.Shift(d)
	}
	result := make([]Pattern, len(t.result))
	for i, p := range t.result {
		result[i] = p.Shift(d)
	}
	return Theorem{size: t.size, matcher: matcher, result: result}
}

// AllRotations returns every distinct normalized variant of t under the
// 8-element dihedral group. Per spec.md's open-question resolution, entries
// are deduplicated by full (size, matcher, result) equality rather than by
// matcher alone — distinct-result collisions are merged later, during
// TheoremPool construction's merge_duplicate_matchers pass, not here.
func (t Theorem) AllRotations() []Theorem {
	hFlip := t.Rotate(geom.HFlip)
	rots := []Theorem{
		t,
		t.Rotate(geom.RotUCW90),
		t.Rotate(geom.RotUCW180),
		t.Rotate(geom.RotUCW270),
		hFlip,
		hFlip.Rotate(geom.RotUCW90),
		hFlip.Rotate(geom.RotUCW180),
		hFlip.Rotate(geom.RotUCW270),
	}

	sort.Slice(rots, func(i, j int) bool { return rots[i].less(rots[j]) })
	out := rots[:0]
	for i, r := range rots {
		if i == 0 || !r.equal(out[len(out)-1]) {
			out = append(out, r)
		}
	}
	return out
}

func (t Theorem) less(other Theorem) bool {
	if t.size.Rows != other.size.Rows {
		return t.size.Rows < other.size.Rows
	}
	if t.size.Cols != other.size.Cols {
		return t.size.Cols < other.size.Cols
	}
	if c := comparePatterns(t.matcher, other.matcher); c != 0 {
		return c < 0
	}
	return comparePatterns(t.result, other.result) < 0
}

func (t Theorem) equal(other Theorem) bool {
	if t.size != other.size {
		return false
	}
	return patternsEqual(t.matcher, other.matcher) && patternsEqual(t.result, other.result)
}

func comparePatterns(a, b []Pattern) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i].Less(b[i]):
			return -1
		case b[i].Less(a[i]):
			return 1
		}
	}
	return len(a) - len(b)
}

func patternsEqual(a, b []Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
