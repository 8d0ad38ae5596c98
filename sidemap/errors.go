package sidemap

import "errors"

// ErrNotAdjacent is returned by SetEdge when the two points given are
// neither adjacent grid cells nor a (grid cell, outside) border pair.
var ErrNotAdjacent = errors.New("sidemap: points are not adjacent")
