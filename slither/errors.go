package slither

import "errors"

// ErrInvalidBoard names the invalid-board error kind. Solve does not return
// it: an invalid branch is eliminated during search, and a puzzle whose
// hints are already contradictory before any search takes place is
// reported as ErrNoSolution.
var ErrInvalidBoard = errors.New("slither: puzzle is self-contradictory")

// ErrNoSolution is returned when every branch of the search was eliminated.
var ErrNoSolution = errors.New("slither: puzzle has no solution")

// ErrMultipleSolutions is returned by Solve when more than one solution
// exists and the caller demanded uniqueness.
var ErrMultipleSolutions = errors.New("slither: puzzle has more than one solution")
