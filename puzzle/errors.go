package puzzle

import "errors"

var (
	// ErrEmptySize indicates a Puzzle was constructed with zero rows or
	// columns.
	ErrEmptySize = errors.New("puzzle: size must have positive rows and columns")

	// ErrHintRowMismatch indicates the number of hint rows passed to New
	// does not equal size.Rows.
	ErrHintRowMismatch = errors.New("puzzle: hint row count does not match size")

	// ErrHintColMismatch indicates a hint row's length does not equal
	// size.Cols.
	ErrHintColMismatch = errors.New("puzzle: hint column count does not match size")

	// ErrHintOutOfRange indicates a hint value outside {0,1,2,3}.
	ErrHintOutOfRange = errors.New("puzzle: hint value must be in 0..3")
)
