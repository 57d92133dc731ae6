// Package cnf translates boards into conjunctive normal form and maps
// satisfying assignments back to completed boards.
//
// Every proposition "cell (r, c) holds v" gets a 1-based variable id
// through a pure arithmetic bijection, so an n×n board uses exactly n³
// variables and no runtime mapping table. The clause families mirror the
// Sudoku rules: each cell holds at least one value, at most one value, and
// each value appears at most once per row, column, and box; unit clauses
// pin the given cells.
package cnf

import "errors"

// ErrMalformedAssignment reports a satisfying assignment that violates the
// encoding contract: some cell ends up with zero or several values. It
// indicates a defect in the encoder or the engine, never a property of the
// puzzle.
var ErrMalformedAssignment = errors.New("malformed assignment")

// VarID maps the proposition "cell (r, c) holds v" on an n×n board to its
// variable id in [1, n³].
func VarID(n, r, c, v int) int {
	return r*n*n + c*n + v
}

// CellValue inverts VarID.
func CellValue(n, id int) (r, c, v int) {
	id--
	return id / (n * n), (id / n) % n, id%n + 1
}

// Instance is one CNF formula: the conjunction of its clauses over NbVars
// boolean variables. Instances are built fresh from a board per solve and
// carry no identity beyond the clause list.
type Instance struct {
	size    int
	nbVars  int
	clauses [][]int
}

// Size returns the side of the board the instance encodes.
func (ins *Instance) Size() int { return ins.size }

// NbVars returns the declared variable count.
func (ins *Instance) NbVars() int { return ins.nbVars }

// NbClauses returns the clause count.
func (ins *Instance) NbClauses() int { return len(ins.clauses) }

// Clauses exposes the clause list. Callers must treat it as read-only.
func (ins *Instance) Clauses() [][]int { return ins.clauses }
