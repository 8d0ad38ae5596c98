// Package unionfind implements a disjoint-set union over a domain viewed as
// N logical items, each split into two "parity" nodes 2i and 2i+1. Unioning
// nodes lets callers encode a same/different relation between items: union
// 2i with 2j asserts "i and j agree"; union 2i with 2j+1 asserts "i and j
// disagree". It is an error for 2i and 2i+1 to ever land in the same set —
// that would mean an item was proven to both agree and disagree with
// itself.
//
// The implementation follows the union-by-rank, path-compressing disjoint
// set embedded in prim_kruskal.Kruskal (parent/rank arrays, iterative Find,
// rank-compare Union), generalized from a string-keyed map to an
// array-indexed structure sized for the parity domain. Union always
// succeeds, even when it merges a node with its own parity partner; such a
// conflict is detected lazily by callers checking Find(2i, 2i+1).
package unionfind
