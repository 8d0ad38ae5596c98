package unionfind

// UnionFind is a disjoint-set union over the domain {0, ..., size-1},
// union-by-rank with path compression. It carries no notion of "parity" or
// "conflict" itself — sidemap.SideMap builds that semantics on top by
// always unioning nodes in same/different pairs and checking Find(2i, 2i+1)
// when it needs to know whether item i is contradictory.
type UnionFind struct {
	parent []int
	rank   []int
}

// New creates a UnionFind over size singleton sets.
func New(size int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, size),
		rank:   make([]int, size),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Size returns the number of nodes in the domain.
func (uf *UnionFind) Size() int {
	return len(uf.parent)
}

// find returns the representative of x's set, compressing the path along
// the way.
func (uf *UnionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// Find reports whether a and b are currently in the same set.
func (uf *UnionFind) Find(a, b int) bool {
	return uf.find(a) == uf.find(b)
}

// Repr returns the representative of x's set, for callers (connectmap) that
// need a stable key per equivalence class rather than a pairwise test.
func (uf *UnionFind) Repr(x int) int {
	return uf.find(x)
}

// Union merges the sets containing a and b. It returns true iff the
// structure actually changed (a and b were in different sets).
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	return true
}

// Clone returns a deep copy of uf, suitable for the search driver's
// hypothetical branches.
func (uf *UnionFind) Clone() *UnionFind {
	out := &UnionFind{
		parent: make([]int, len(uf.parent)),
		rank:   make([]int, len(uf.rank)),
	}
	copy(out.parent, uf.parent)
	copy(out.rank, uf.rank)
	return out
}
