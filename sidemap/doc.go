// Package sidemap wraps a parity unionfind.UnionFind of size 2*(N+1) (item
// 0 is the outside cell) to track, for every cell, whether it lies on the
// same or opposite side of the loop as every other cell — and derives each
// cell's Side and each adjacent pair's Edge from that.
//
// SideMap carries a monotonically non-decreasing revision counter: every
// method that changes the underlying union-find bumps it, giving the rest
// of the solver a cheap "has anything changed" clock (connectmap.ConnectMap
// re-syncs only when this counter has moved, mirroring the diagnostic
// counters threaded through lvlath's dfs.DFSOptions).
package sidemap
