package cnf

import (
	"fmt"

	"github.com/YuriBrandi/SudokuSAT/board"
)

// Decode maps a satisfying assignment back to a completed board. model is
// indexed by variable id, index 0 unused, and must cover all n³ variables
// of a size×size board. Exactly one of the n values of every cell must be
// assigned true; anything else breaks the encoding contract and surfaces
// as ErrMalformedAssignment.
//
// UNSAT outcomes never reach Decode; the solving pipeline reports them
// before a model exists.
func Decode(model []bool, size int) (*board.Board, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}
	if nbVars := size * size * size; len(model) < nbVars+1 {
		return nil, fmt.Errorf("model covers %d of %d variables: %w", len(model)-1, nbVars, ErrMalformedAssignment)
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			value := 0
			for v := 1; v <= size; v++ {
				if !model[VarID(size, r, c, v)] {
					continue
				}
				if value != 0 {
					return nil, fmt.Errorf("cell (%d,%d) assigned both %d and %d: %w", r, c, value, v, ErrMalformedAssignment)
				}
				value = v
			}
			if value == 0 {
				return nil, fmt.Errorf("cell (%d,%d) has no value assigned: %w", r, c, ErrMalformedAssignment)
			}
			if err := b.Set(r, c, uint8(value)); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
