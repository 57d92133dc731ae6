// Package solver defines the strategy identifiers and the per-solve
// statistics shared by the backtracking and SAT implementations.
package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoSolution reports an exhausted search space. It is the expected
// outcome for over-constrained boards, not a fault; match it with
// errors.Is.
var ErrNoSolution = errors.New("no solution")

// ID identifies one solving strategy.
type ID uint16

const (
	UNKNOWN ID = iota
	BACKTRACKING
	SAT
)

// IDs returns the implemented strategies.
func IDs() []ID {
	return []ID{BACKTRACKING, SAT}
}

func (id ID) String() string {
	switch id {
	case BACKTRACKING:
		return "backtracking"
	case SAT:
		return "sat"
	default:
		return "unknown"
	}
}

// IDFromString resolves a strategy name as used on the command line.
func IDFromString(s string) (ID, error) {
	switch strings.ToLower(s) {
	case "backtracking", "backtrack":
		return BACKTRACKING, nil
	case "sat":
		return SAT, nil
	default:
		return UNKNOWN, fmt.Errorf("unknown strategy %q", s)
	}
}

// Stats reports the measured effort of one solve call. Guesses and
// Backtracks are filled by the backtracking strategy, NbVars and NbClauses
// by the SAT strategy; Took is always set.
type Stats struct {
	Strategy   ID
	Guesses    int64
	Backtracks int64
	NbVars     int
	NbClauses  int
	Took       time.Duration
}
