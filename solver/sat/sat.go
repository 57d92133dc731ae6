// Package sat solves boards by reduction to Boolean satisfiability
// through an external engine.
//
// The engine is a black box behind the narrow Engine interface: clauses
// in, assignment or UNSAT out. The default binding is go-air/gini; any
// conforming solver can be swapped in with WithEngine without touching the
// encoder or the decoder.
package sat

import (
	"errors"
	"fmt"
	"time"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/cnf"
	"github.com/YuriBrandi/SudokuSAT/debug"
	"github.com/YuriBrandi/SudokuSAT/logger"
	"github.com/YuriBrandi/SudokuSAT/solver"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// ErrEngineGaveUp reports an engine that returned neither SAT nor UNSAT.
var ErrEngineGaveUp = errors.New("sat engine gave up")

// Engine is the contract the external SAT collaborator honors. It is
// treated as a pure function over the clauses fed to it: no observable
// side effects on the core. Engines are single-use per solve.
type Engine interface {
	// Add appends a DIMACS-signed literal to the pending clause; 0
	// terminates the clause.
	Add(lit int)
	// Solve runs the engine: 1 satisfiable, -1 unsatisfiable, 0
	// undetermined.
	Solve() int
	// Value reports the assignment of a 1-based variable. Valid only
	// after Solve returned 1.
	Value(v int) bool
}

// NewGini returns the default engine.
func NewGini() Engine {
	return &giniEngine{s: gini.New()}
}

// giniEngine adapts go-air/gini to Engine.
type giniEngine struct {
	s *gini.Gini
}

func (e *giniEngine) Add(lit int) {
	switch {
	case lit == 0:
		e.s.Add(0)
	case lit > 0:
		e.s.Add(z.Var(lit).Pos())
	default:
		e.s.Add(z.Var(-lit).Pos().Not())
	}
}

func (e *giniEngine) Solve() int { return e.s.Solve() }

func (e *giniEngine) Value(v int) bool { return e.s.Value(z.Var(v).Pos()) }

// Solve completes the board through the CNF pipeline: encode, feed the
// clauses to the engine, decode the model. The input board is never
// mutated. UNSAT surfaces as solver.ErrNoSolution; a model violating the
// encoding contract surfaces as cnf.ErrMalformedAssignment.
func Solve(b *board.Board, opts ...Option) (*board.Board, solver.Stats, error) {
	stats := solver.Stats{Strategy: solver.SAT}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, stats, fmt.Errorf("sat: %w", err)
	}
	log := logger.Logger()
	start := time.Now()

	ins := cnf.Encode(b)
	stats.NbVars = ins.NbVars()
	stats.NbClauses = ins.NbClauses()

	eng := cfg.engine
	for _, clause := range ins.Clauses() {
		for _, lit := range clause {
			eng.Add(lit)
		}
		eng.Add(0)
	}

	switch res := eng.Solve(); res {
	case 1:
	case -1:
		stats.Took = time.Since(start)
		log.Debug().
			Int("size", b.Size()).
			Int("nbClauses", stats.NbClauses).
			Dur("took", stats.Took).
			Msg("engine reported unsat")
		return nil, stats, solver.ErrNoSolution
	default:
		stats.Took = time.Since(start)
		return nil, stats, fmt.Errorf("engine returned %d: %w", res, ErrEngineGaveUp)
	}

	model := make([]bool, ins.NbVars()+1)
	for v := 1; v <= ins.NbVars(); v++ {
		model[v] = eng.Value(v)
	}

	out, err := cnf.Decode(model, b.Size())
	if err == nil {
		err = checkDecoded(b, out)
	}
	if err != nil {
		stats.Took = time.Since(start)
		log.Error().Err(err).Str("stack", debug.Stack()).Msg("sat decode failed")
		return nil, stats, err
	}

	stats.Took = time.Since(start)
	log.Debug().
		Int("size", b.Size()).
		Int("nbVars", stats.NbVars).
		Int("nbClauses", stats.NbClauses).
		Dur("took", stats.Took).
		Msg("sat solve done")
	return out, stats, nil
}

// checkDecoded guards the encoding contract after decoding: the result
// must be a complete legal grid extending the input's givens.
func checkDecoded(in, out *board.Board) error {
	if !out.IsComplete() {
		return fmt.Errorf("decoded board is not a legal completion: %w", cnf.ErrMalformedAssignment)
	}
	n := in.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := in.At(r, c); v != 0 && out.At(r, c) != v {
				return fmt.Errorf("given (%d,%d)=%d not preserved: %w", r, c, v, cnf.ErrMalformedAssignment)
			}
		}
	}
	return nil
}
