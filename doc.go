// Package sudokusat solves, generates and cross-checks Sudoku boards of any
// square size N = k*k, up to 25x25.
//
// Two independent strategies sit behind one entry point: a constraint
// propagating backtracking search (solver/backtrack) and a reduction to
// boolean satisfiability handed to a SAT engine (solver/sat). Running both
// on the same board and checking that they agree is the module's reason to
// exist; see Compare and Agree.
package sudokusat

import (
	"github.com/YuriBrandi/SudokuSAT/solver"
	"github.com/blang/semver/v4"
)

// Version of sudokusat
var Version = semver.MustParse("0.2.0")

// Strategies returns the solving strategies supported by sudokusat
func Strategies() []solver.ID {
	return solver.IDs()
}
