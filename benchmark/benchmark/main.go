// Internal benchmark comparing the two solver strategies on generated
// puzzles of growing size.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/generator"
	"github.com/YuriBrandi/SudokuSAT/solver"
	"github.com/YuriBrandi/SudokuSAT/solver/backtrack"
	"github.com/YuriBrandi/SudokuSAT/solver/sat"
	"github.com/pkg/profile"
)

const benchCount = 10

var sizes = []int{4, 9, 16} //, 25

// /!\ internal use /!\
// running it with "trace" will output a trace.out file
// else will output average solve times, in csv format
func main() {
	mode := "time"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	if mode == "trace" {
		p := profile.Start(profile.TraceProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

	for _, size := range sizes {
		givens := size * size / 3
		puzzle, _, err := generator.Generate(size, givens, generator.WithSeed(1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(-1)
		}
		runtime.GC()
		bench(solver.BACKTRACKING, puzzle, givens, func(b *board.Board) error {
			_, _, err := backtrack.Solve(b)
			return err
		})
		bench(solver.SAT, puzzle, givens, func(b *board.Board) error {
			_, _, err := sat.Solve(b)
			return err
		})
	}
}

func bench(id solver.ID, puzzle *board.Board, givens int, solve func(*board.Board) error) {
	start := time.Now()
	for i := 0; i < benchCount; i++ {
		if err := solve(puzzle); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(-1)
		}
	}
	duration := time.Duration(int64(time.Since(start)) / benchCount)
	fmt.Printf("%s,%d,%d,%d\n", id, puzzle.Size(), givens, duration.Microseconds())
}
