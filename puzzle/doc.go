// Package puzzle defines the immutable Slitherlink board model: a
// rectangular grid of cells each bearing an optional hint in {0,1,2,3}.
//
// A Puzzle never changes after construction; the solver layers mutable
// state (sidemap.SideMap, connectmap.ConnectMap) on top of it.
package puzzle
