// Package geom provides the grid-geometry primitives shared by every other
// package in this module: lattice points, moves between them, the eight
// rotations/reflections of the dihedral group, and a Table type that maps a
// rectangular grid plus one "outside" sentinel slot onto a single flat slice.
//
// Points, Moves and Rotations compose the way you would expect from plain
// 2D affine arithmetic: Point + Move -> Point, Point - Point -> Move, Move
// scaling/negation, Rotation * Move -> Move, Rotation * Rotation -> Rotation.
package geom
