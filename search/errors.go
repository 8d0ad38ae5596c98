package search

import "errors"

// ErrInvalidBoard is returned when propagation or validation finds the
// current branch self-contradictory.
var ErrInvalidBoard = errors.New("search: board is in conflict")
