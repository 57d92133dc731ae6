// Package testgrids holds the boards shared by tests across the module.
package testgrids

import "github.com/YuriBrandi/SudokuSAT/board"

// Classic is the widely published 9×9 puzzle with 30 givens and a unique
// solution.
const Classic = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

// ClassicSolved is the unique solution of Classic.
const ClassicSolved = `534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

// Conflicting holds the same value twice in its first row, so no
// completion exists.
const Conflicting = `55.......
.........
.........
.........
.........
.........
.........
.........
.........
`

// FourSolved is the grid the ascending-order search reaches first from an
// empty 4×4 board.
const FourSolved = `1234
3412
2143
4321
`

// MustParse parses a fixture known to be well formed.
func MustParse(s string) *board.Board {
	b, err := board.ParseString(s)
	if err != nil {
		panic(err)
	}
	return b
}
