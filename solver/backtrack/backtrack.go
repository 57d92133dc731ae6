// Package backtrack implements the depth-first Sudoku solver.
//
// The search walks the empty cells in row-major order with an explicit
// stack of (cell, next-candidate) frames, so a 25×25 grid never deepens
// the call stack. Candidate filtering runs on per-row, per-column, and
// per-box used-value sets; those sets are the only structures consulted in
// the hot loop, never the full grid.
package backtrack

import (
	"fmt"
	"time"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/debug"
	"github.com/YuriBrandi/SudokuSAT/logger"
	"github.com/YuriBrandi/SudokuSAT/profile"
	"github.com/YuriBrandi/SudokuSAT/solver"
	"github.com/bits-and-blooms/bitset"
)

// Solve completes the board and returns the completed copy with search
// statistics; the input is never mutated. An exhausted search space yields
// solver.ErrNoSolution, which includes boards whose givens already
// conflict.
func Solve(b *board.Board, opts ...Option) (*board.Board, solver.Stats, error) {
	stats := solver.Stats{Strategy: solver.BACKTRACKING}
	cfg, err := newConfig(b.Size(), opts...)
	if err != nil {
		return nil, stats, fmt.Errorf("backtrack: %w", err)
	}
	log := logger.Logger()
	start := time.Now()

	// Conflicting givens never move, so the search space is empty.
	if !b.IsLegal() {
		stats.Took = time.Since(start)
		log.Debug().Dur("took", stats.Took).Msg("givens conflict, nothing to search")
		return nil, stats, solver.ErrNoSolution
	}

	s := newSearch(b, cfg.order, &stats)
	solved := s.run()
	stats.Took = time.Since(start)

	log.Debug().
		Int("size", b.Size()).
		Bool("solved", solved).
		Int64("guesses", stats.Guesses).
		Int64("backtracks", stats.Backtracks).
		Dur("took", stats.Took).
		Msg("backtracking search done")

	if !solved {
		return nil, stats, solver.ErrNoSolution
	}
	out, err := board.FromValues(s.n, s.vals)
	if err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

// search carries the explicit frame stack: cells lists the empty positions
// in scan order, next the candidate index each frame resumes from. used
// packs the row, column, and box value sets into one bitset of 3n² bits.
type search struct {
	n, k  int
	vals  []uint8
	order []uint8
	cells []int
	next  []int
	used  *bitset.BitSet
	stats *solver.Stats
}

func newSearch(b *board.Board, order []uint8, stats *solver.Stats) *search {
	n := b.Size()
	s := &search{
		n:     n,
		k:     b.Box(),
		vals:  b.Values(),
		order: order,
		used:  bitset.New(uint(3 * n * n)),
		stats: stats,
	}
	for p, v := range s.vals {
		if v == 0 {
			s.cells = append(s.cells, p)
		} else {
			s.use(p, v)
		}
	}
	s.next = make([]int, len(s.cells))
	return s
}

// run drives the frame stack to a terminal state: true when the frame
// index walks past the last empty cell, false when it unwinds past the
// first.
func (s *search) run() bool {
	i := 0
	for {
		if i == len(s.cells) {
			return true
		}
		p := s.cells[i]
		if v := s.vals[p]; v != 0 {
			// re-entered after a deeper failure: lift the previous trial
			s.unuse(p, v)
			s.vals[p] = 0
		}
		j := s.next[i]
		for j < s.n && !s.allowed(p, s.order[j]) {
			j++
		}
		if j == s.n {
			s.next[i] = 0
			if i == 0 {
				return false
			}
			i--
			s.stats.Backtracks++
			if profile.Active() {
				profile.RecordBacktrack(s.path(i))
			}
			continue
		}
		v := s.order[j]
		s.vals[p] = v
		s.use(p, v)
		s.next[i] = j + 1
		s.stats.Guesses++
		i++
	}
}

// bits returns the used-set bit of value v for the row, column, and box
// of position p. Groups are laid out rows, then columns, then boxes.
func (s *search) bits(p int, v uint8) (rb, cb, bb uint) {
	r, c := p/s.n, p%s.n
	g := int(v) - 1
	rb = uint(r*s.n + g)
	cb = uint((s.n+c)*s.n + g)
	bb = uint((2*s.n+(r/s.k)*s.k+c/s.k)*s.n + g)
	return rb, cb, bb
}

func (s *search) allowed(p int, v uint8) bool {
	rb, cb, bb := s.bits(p, v)
	return !s.used.Test(rb) && !s.used.Test(cb) && !s.used.Test(bb)
}

func (s *search) use(p int, v uint8) {
	rb, cb, bb := s.bits(p, v)
	debug.Assert(!s.used.Test(rb) && !s.used.Test(cb) && !s.used.Test(bb), "value already used in a group")
	s.used.Set(rb)
	s.used.Set(cb)
	s.used.Set(bb)
}

func (s *search) unuse(p int, v uint8) {
	rb, cb, bb := s.bits(p, v)
	s.used.Clear(rb)
	s.used.Clear(cb)
	s.used.Clear(bb)
}

// path returns the decision stack from the root frame down to frame i.
func (s *search) path(i int) []board.Cell {
	cells := make([]board.Cell, i+1)
	for j := 0; j <= i; j++ {
		p := s.cells[j]
		cells[j] = board.Cell{Row: p / s.n, Col: p % s.n}
	}
	return cells
}
