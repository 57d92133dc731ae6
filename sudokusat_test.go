package sudokusat_test

import (
	"fmt"
	"testing"

	sudokusat "github.com/YuriBrandi/SudokuSAT"
	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/generator"
	"github.com/YuriBrandi/SudokuSAT/internal/testgrids"
	"github.com/YuriBrandi/SudokuSAT/solver"
	"github.com/YuriBrandi/SudokuSAT/solver/sat"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestSolveDispatch(t *testing.T) {
	assert := require.New(t)

	puzzle := testgrids.MustParse(testgrids.Classic)
	for _, id := range sudokusat.Strategies() {
		solution, stats, err := sudokusat.Solve(puzzle, id)
		assert.NoError(err, id)
		assert.Equal(testgrids.ClassicSolved, solution.String(), id)
		assert.Equal(id, stats.Strategy)
	}

	_, _, err := sudokusat.Solve(puzzle, solver.UNKNOWN)
	assert.Error(err)
	_, _, err = sudokusat.Solve(puzzle, solver.ID(99))
	assert.Error(err)
}

func TestCompareAgree(t *testing.T) {
	assert := require.New(t)

	results := sudokusat.Compare(testgrids.MustParse(testgrids.Classic))
	assert.Len(results, 2)
	assert.Equal(solver.BACKTRACKING, results[0].Strategy)
	assert.Equal(solver.SAT, results[1].Strategy)
	assert.NoError(sudokusat.Agree(results))
	assert.True(results[0].Board.Equal(results[1].Board))

	// both strategies report no solution, which is agreement too
	results = sudokusat.Compare(testgrids.MustParse(testgrids.Conflicting))
	for _, r := range results {
		assert.ErrorIs(r.Err, solver.ErrNoSolution)
	}
	assert.NoError(sudokusat.Agree(results))

	// an explicit subset runs in the requested order
	results = sudokusat.Compare(testgrids.MustParse(testgrids.Classic), solver.SAT)
	assert.Len(results, 1)
	assert.Equal(solver.SAT, results[0].Strategy)
	assert.NoError(sudokusat.Agree(results))
}

func TestAgreeDetectsDivergence(t *testing.T) {
	assert := require.New(t)

	solved := testgrids.MustParse(testgrids.ClassicSolved)

	assert.Error(sudokusat.Agree(nil))

	// one strategy finds a grid, the other gives up on the board
	err := sudokusat.Agree([]sudokusat.Result{
		{Strategy: solver.BACKTRACKING, Err: solver.ErrNoSolution},
		{Strategy: solver.SAT, Board: solved},
	})
	assert.Error(err)
	assert.Contains(err.Error(), "disagree")

	// hard failures pass through untouched
	assert.ErrorIs(sudokusat.Agree([]sudokusat.Result{
		{Strategy: solver.BACKTRACKING, Board: solved},
		{Strategy: solver.SAT, Err: sat.ErrEngineGaveUp},
	}), sat.ErrEngineGaveUp)

	// an incomplete board is never a valid outcome
	assert.Error(sudokusat.Agree([]sudokusat.Result{
		{Strategy: solver.BACKTRACKING, Board: testgrids.MustParse(testgrids.Classic)},
	}))
}

func TestStrategiesEquivalence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("strategies agree on generated puzzles", prop.ForAll(
		func(seed int64) bool {
			puzzle, _, err := generator.Generate(9, 30, generator.WithSeed(seed))
			if err != nil {
				return false
			}
			return sudokusat.Agree(sudokusat.Compare(puzzle)) == nil
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestLargeBoard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping the 25x25 solves in short mode")
	}
	assert := require.New(t)

	// the cyclic grid v(r,c) = (5(r mod 5) + r/5 + c) mod 25 + 1 is a
	// valid 25×25 solution; clearing every other cell leaves a strongly
	// constrained puzzle both strategies must finish in bounded time
	full, err := board.New(25)
	assert.NoError(err)
	for r := 0; r < 25; r++ {
		for c := 0; c < 25; c++ {
			assert.NoError(full.Set(r, c, uint8((5*(r%5)+r/5+c)%25+1)))
		}
	}
	assert.True(full.IsComplete())

	puzzle := full.Clone()
	for r := 0; r < 25; r++ {
		for c := 0; c < 25; c++ {
			if (r+c)%2 == 1 {
				assert.NoError(puzzle.Set(r, c, 0))
			}
		}
	}
	assert.True(puzzle.Filled() < 625)

	results := sudokusat.Compare(puzzle)
	assert.NoError(sudokusat.Agree(results))
	for _, r := range results {
		assert.NoError(r.Err, r.Strategy)
		assert.True(r.Board.IsComplete())
	}
}

func ExampleSolve() {
	puzzle, err := board.ParseString(testgrids.Classic)
	if err != nil {
		panic(err)
	}
	solution, _, err := sudokusat.Solve(puzzle, solver.BACKTRACKING)
	if err != nil {
		panic(err)
	}
	fmt.Print(solution)
	// Output:
	// 534678912
	// 672195348
	// 198342567
	// 859761423
	// 426853791
	// 713924856
	// 961537284
	// 287419635
	// 345286179
}
