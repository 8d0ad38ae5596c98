package theorempool

import "errors"

// ErrInvalidBoard is returned when a theorem query observes a SideMap edge
// or side already in puzzle.Conflict — the board is self-contradictory
// independent of any specific theorem.
var ErrInvalidBoard = errors.New("theorempool: board is in conflict")
