// Package theorem models a small local deduction rule over a bounding box
// of grid points: a Theorem holds a matcher (patterns that must already be
// true) and a result (patterns that then must become true). Rotating and
// shifting a Theorem lets a handful of authored rules cover every position
// and orientation on the board.
package theorem
