package slither

import (
	"errors"

	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/search"
	"github.com/gifnksm/srither/theorem"
)

// Solve returns the unique solution to pz given theos, or ErrNoSolution or
// ErrMultipleSolutions. A puzzle found contradictory before any search
// (the root branch is invalid) is reported as ErrNoSolution.
func Solve(pz *puzzle.Puzzle, theos []theorem.Theorem) (*puzzle.Puzzle, error) {
	it := Solutions(pz, theos)

	first, ok, err := it.Next()
	if err != nil {
		return nil, translate(err)
	}
	if !ok {
		return nil, ErrNoSolution
	}

	if _, ok, err := it.Next(); err != nil {
		return nil, translate(err)
	} else if ok {
		return nil, ErrMultipleSolutions
	}

	return first, nil
}

// Solutions returns a lazy iterator over every solution to pz given theos.
func Solutions(pz *puzzle.Puzzle, theos []theorem.Theorem) *search.SolutionIter {
	return search.Solutions(pz, theos)
}

func translate(err error) error {
	if errors.Is(err, search.ErrInvalidBoard) {
		return ErrNoSolution
	}
	return err
}
