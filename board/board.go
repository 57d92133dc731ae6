// Package board implements the Sudoku grid model and its validator.
//
// A board is an N×N grid with N = k² for a box size k; cells hold 0
// (empty) or a value in [1, N]. The validator checks the three Sudoku
// constraint families (rows, columns, k×k boxes) independently and can
// report the exact cells involved in a violation.
package board

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// MaxSize bounds the supported board side. Sides are perfect squares, so
// boxes are k×k with k = √N; 25 keeps every value in a uint8 and the
// search structures small.
const MaxSize = 25

var (
	// ErrOutOfRange reports a position or value outside the board's domain.
	ErrOutOfRange = errors.New("position or value out of range")
	// ErrUnsupportedSize reports a side that is not a perfect square in [1, MaxSize].
	ErrUnsupportedSize = errors.New("unsupported board size")
)

// Cell addresses one position of the grid.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("r%dc%d", c.Row, c.Col)
}

// Board is a mutable N×N Sudoku grid. It is owned by whichever component
// currently produces it and is not safe for concurrent mutation; clone
// before sharing across goroutines.
type Board struct {
	size  int
	box   int
	cells []uint8
}

// New returns an empty size×size board. The size must be a perfect square
// in [1, MaxSize].
func New(size int) (*Board, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("side %d: %w", size, ErrUnsupportedSize)
	}
	box := 1
	for box*box < size {
		box++
	}
	if box*box != size {
		return nil, fmt.Errorf("side %d is not a perfect square: %w", size, ErrUnsupportedSize)
	}
	return &Board{
		size:  size,
		box:   box,
		cells: make([]uint8, size*size),
	}, nil
}

// FromValues builds a board from row-major cell values.
func FromValues(size int, values []uint8) (*Board, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	if len(values) != size*size {
		return nil, fmt.Errorf("%d values for a %dx%d board: %w", len(values), size, size, ErrOutOfRange)
	}
	for i, v := range values {
		if int(v) > size {
			return nil, fmt.Errorf("cell %d holds %d: %w", i, v, ErrOutOfRange)
		}
		b.cells[i] = v
	}
	return b, nil
}

// Size returns the board side N.
func (b *Board) Size() int { return b.size }

// Box returns the box side k = √N.
func (b *Board) Box() int { return b.box }

// Values returns a row-major copy of the cells.
func (b *Board) Values() []uint8 {
	values := make([]uint8, len(b.cells))
	copy(values, b.cells)
	return values
}

// At returns the value at (r, c), 0 meaning empty. Like slice indexing,
// an out-of-range position panics; mutation goes through Set, which is
// the validated boundary.
func (b *Board) At(r, c int) uint8 {
	if r < 0 || r >= b.size || c < 0 || c >= b.size {
		panic("board: position out of range")
	}
	return b.cells[r*b.size+c]
}

// Set writes v at (r, c), 0 clearing the cell. It fails with ErrOutOfRange
// when the position or the value is outside the board's domain.
func (b *Board) Set(r, c int, v uint8) error {
	if r < 0 || r >= b.size || c < 0 || c >= b.size || int(v) > b.size {
		return fmt.Errorf("set (%d,%d) to %d on a %dx%d board: %w", r, c, v, b.size, b.size, ErrOutOfRange)
	}
	b.cells[r*b.size+c] = v
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]uint8, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, box: b.box, cells: cells}
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	return bytes.Equal(b.cells, other.cells)
}

// Filled counts the non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, v := range b.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// IsLegal reports whether no row, column, or box holds a duplicate
// non-empty value. The three families are checked independently; a single
// duplicate anywhere fails the whole check.
func (b *Board) IsLegal() bool {
	n := b.size
	for r := 0; r < n; r++ {
		var seen uint32
		for c := 0; c < n; c++ {
			if !mark(&seen, b.cells[r*n+c]) {
				return false
			}
		}
	}
	for c := 0; c < n; c++ {
		var seen uint32
		for r := 0; r < n; r++ {
			if !mark(&seen, b.cells[r*n+c]) {
				return false
			}
		}
	}
	for br := 0; br < n; br += b.box {
		for bc := 0; bc < n; bc += b.box {
			var seen uint32
			for r := br; r < br+b.box; r++ {
				for c := bc; c < bc+b.box; c++ {
					if !mark(&seen, b.cells[r*n+c]) {
						return false
					}
				}
			}
		}
	}
	return true
}

// mark records v in the seen mask and reports false on a duplicate.
// Values fit a uint32 since MaxSize is 25.
func mark(seen *uint32, v uint8) bool {
	if v == 0 {
		return true
	}
	if *seen&(1<<v) != 0 {
		return false
	}
	*seen |= 1 << v
	return true
}

// IsComplete reports whether every cell is filled and the board is legal.
func (b *Board) IsComplete() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return b.IsLegal()
}

// Conflicts returns every cell sharing its value with another cell of the
// same row, column, or box, deduplicated, in row-major order. Empty cells
// never conflict. A legal board returns nil.
func (b *Board) Conflicts() []Cell {
	n := b.size
	marked := bitset.New(uint(len(b.cells)))

	group := make([]int, 0, n)
	for r := 0; r < n; r++ {
		group = group[:0]
		for c := 0; c < n; c++ {
			group = append(group, r*n+c)
		}
		b.markDuplicates(marked, group)
	}
	for c := 0; c < n; c++ {
		group = group[:0]
		for r := 0; r < n; r++ {
			group = append(group, r*n+c)
		}
		b.markDuplicates(marked, group)
	}
	for br := 0; br < n; br += b.box {
		for bc := 0; bc < n; bc += b.box {
			group = group[:0]
			for r := br; r < br+b.box; r++ {
				for c := bc; c < bc+b.box; c++ {
					group = append(group, r*n+c)
				}
			}
			b.markDuplicates(marked, group)
		}
	}

	if marked.Count() == 0 {
		return nil
	}
	cells := make([]Cell, 0, marked.Count())
	for i, ok := marked.NextSet(0); ok; i, ok = marked.NextSet(i + 1) {
		cells = append(cells, Cell{Row: int(i) / n, Col: int(i) % n})
	}
	return cells
}

// markDuplicates marks every position of the group whose value occurs more
// than once in it.
func (b *Board) markDuplicates(marked *bitset.BitSet, group []int) {
	var first [MaxSize + 1]int
	for i := range first {
		first[i] = -1
	}
	for _, p := range group {
		v := b.cells[p]
		if v == 0 {
			continue
		}
		if f := first[v]; f >= 0 {
			marked.Set(uint(f))
			marked.Set(uint(p))
		} else {
			first[v] = p
		}
	}
}
