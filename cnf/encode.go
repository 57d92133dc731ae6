package cnf

import (
	"time"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/logger"
)

// Encode builds the CNF for the board's current state. Clause families
// come out in a fixed order:
//  1. every cell holds at least one value (one n-literal clause per cell)
//  2. every cell holds at most one value (pairwise exclusions per cell)
//  3. every value appears at most once per row, column, and box
//     (pairwise exclusions per group position pair)
//  4. one unit clause per given cell
//
// Family 3 dominates the O(n⁴) clause growth.
func Encode(b *board.Board) *Instance {
	start := time.Now()
	n := b.Size()
	k := b.Box()
	pairs := n * (n - 1) / 2

	ins := &Instance{
		size:    n,
		nbVars:  n * n * n,
		clauses: make([][]int, 0, n*n+n*n*pairs+3*n*n*pairs+b.Filled()),
	}

	// 1. cell-has-a-value
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			clause := make([]int, n)
			for v := 1; v <= n; v++ {
				clause[v-1] = VarID(n, r, c, v)
			}
			ins.clauses = append(ins.clauses, clause)
		}
	}

	// 2. cell-has-at-most-one-value
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v1 := 1; v1 <= n; v1++ {
				for v2 := v1 + 1; v2 <= n; v2++ {
					ins.clauses = append(ins.clauses, []int{-VarID(n, r, c, v1), -VarID(n, r, c, v2)})
				}
			}
		}
	}

	// 3. per-group uniqueness, rows then columns then boxes
	group := make([]int, n)
	for v := 1; v <= n; v++ {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				group[c] = VarID(n, r, c, v)
			}
			ins.appendExclusions(group)
		}
		for c := 0; c < n; c++ {
			for r := 0; r < n; r++ {
				group[r] = VarID(n, r, c, v)
			}
			ins.appendExclusions(group)
		}
		for br := 0; br < n; br += k {
			for bc := 0; bc < n; bc += k {
				i := 0
				for r := br; r < br+k; r++ {
					for c := bc; c < bc+k; c++ {
						group[i] = VarID(n, r, c, v)
						i++
					}
				}
				ins.appendExclusions(group)
			}
		}
	}

	// 4. givens
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := b.At(r, c); v != 0 {
				ins.clauses = append(ins.clauses, []int{VarID(n, r, c, int(v))})
			}
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("size", n).
		Int("nbVars", ins.nbVars).
		Int("nbClauses", len(ins.clauses)).
		Dur("took", time.Since(start)).
		Msg("cnf encoded")

	return ins
}

// appendExclusions adds ¬a ∨ ¬b for every pair of the group's variables.
func (ins *Instance) appendExclusions(group []int) {
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			ins.clauses = append(ins.clauses, []int{-group[i], -group[j]})
		}
	}
}
