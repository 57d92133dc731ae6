// Package generator produces random solvable puzzles.
package generator

import (
	"fmt"
	"time"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/debug"
	"github.com/YuriBrandi/SudokuSAT/logger"
	"github.com/YuriBrandi/SudokuSAT/solver/backtrack"
)

// Generate returns a puzzle with exactly givens filled cells and one of
// its solutions. A full grid comes out of the backtracking solver run on
// an empty board under a shuffled value order; cells are then cleared in
// random order down to the target. Removal never adds constraints, so the
// puzzle keeps at least one completion; a unique one is not guaranteed.
func Generate(size, givens int, opts ...Option) (puzzle, solution *board.Board, err error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: %w", err)
	}
	empty, err := board.New(size)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: %w", err)
	}
	if givens < 0 || givens > size*size {
		return nil, nil, fmt.Errorf("generate: %d givens on a %dx%d board: %w", givens, size, size, board.ErrOutOfRange)
	}
	start := time.Now()

	solution, _, err = backtrack.Solve(empty, backtrack.WithShuffledValues(cfg.rng))
	if err != nil {
		return nil, nil, fmt.Errorf("generate: filling an empty %dx%d board: %w", size, size, err)
	}

	puzzle = solution.Clone()
	for _, p := range cfg.rng.Perm(size * size)[:size*size-givens] {
		if err := puzzle.Set(p/size, p%size, 0); err != nil {
			return nil, nil, err
		}
		debug.Assert(puzzle.IsLegal(), "carving a cell broke legality")
	}

	logger.Logger().Debug().
		Int("size", size).
		Int("givens", givens).
		Int64("seed", cfg.seed).
		Dur("took", time.Since(start)).
		Msg("puzzle generated")
	return puzzle, solution, nil
}
