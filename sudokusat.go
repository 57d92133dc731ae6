package sudokusat

import (
	"errors"
	"fmt"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/solver"
	"github.com/YuriBrandi/SudokuSAT/solver/backtrack"
	"github.com/YuriBrandi/SudokuSAT/solver/sat"
	"golang.org/x/sync/errgroup"
)

// Solve solves b with the given strategy and returns a freshly allocated
// solution board; b is never mutated. If the givens admit no solution the
// returned error wraps solver.ErrNoSolution.
func Solve(b *board.Board, id solver.ID) (*board.Board, solver.Stats, error) {
	switch id {
	case solver.BACKTRACKING:
		return backtrack.Solve(b)
	case solver.SAT:
		return sat.Solve(b)
	default:
		return nil, solver.Stats{Strategy: id}, fmt.Errorf("unknown solver strategy %q", id)
	}
}

// Result holds the outcome of one strategy inside a Compare run.
type Result struct {
	Strategy solver.ID
	Board    *board.Board
	Stats    solver.Stats
	Err      error
}

// Compare runs the given strategies concurrently, each on its own clone of
// b, and returns one Result per strategy in the order requested. With no
// explicit list it runs all of them.
func Compare(b *board.Board, ids ...solver.ID) []Result {
	if len(ids) == 0 {
		ids = solver.IDs()
	}

	results := make([]Result, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		i, id := i, id
		in := b.Clone()
		g.Go(func() error {
			results[i].Strategy = id
			results[i].Board, results[i].Stats, results[i].Err = Solve(in, id)
			return nil
		})
	}
	_ = g.Wait() // per-strategy errors live in the results

	return results
}

// Agree checks that the results of a Compare run are consistent: either
// every strategy produced a legal, complete solution, or every strategy
// reported no solution. Solutions may differ when the puzzle has more than
// one; a failure other than solver.ErrNoSolution is returned as is.
func Agree(results []Result) error {
	if len(results) == 0 {
		return errors.New("no results to check")
	}

	for i := range results {
		if results[i].Err != nil && !errors.Is(results[i].Err, solver.ErrNoSolution) {
			return fmt.Errorf("strategy %s: %w", results[i].Strategy, results[i].Err)
		}
	}

	ref := results[0]
	refNoSolution := errors.Is(ref.Err, solver.ErrNoSolution)
	for i := 1; i < len(results); i++ {
		if got := errors.Is(results[i].Err, solver.ErrNoSolution); got != refNoSolution {
			none, found := ref.Strategy, results[i].Strategy
			if got {
				none, found = results[i].Strategy, ref.Strategy
			}
			return fmt.Errorf("strategies disagree: %s reports no solution, %s found one", none, found)
		}
	}
	if refNoSolution {
		return nil
	}

	for i := range results {
		if !results[i].Board.IsLegal() {
			return fmt.Errorf("strategy %s returned an illegal board", results[i].Strategy)
		}
		if !results[i].Board.IsComplete() {
			return fmt.Errorf("strategy %s returned an incomplete board", results[i].Strategy)
		}
	}
	return nil
}
