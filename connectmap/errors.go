package connectmap

import "errors"

// ErrInvalidBoard is returned by Sync when a region simultaneously carries
// both In and Out evidence.
var ErrInvalidBoard = errors.New("connectmap: region has contradictory side evidence")
