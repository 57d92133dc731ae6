// Package profile provides a pprof compatible view of where the
// backtracking search spends its effort.
//
// Samples are backtrack events. The call-stack analogue is the decision
// stack: the chain of cell frames from the root of the search down to the
// frame being retried. Read with the usual pprof tooling, hot subtrees
// point at the board regions that force the most undoing.
//
// Since the search operates in a single goroutine, this package is also
// NOT thread safe and is meant to be called in the same goroutine.
package profile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/logger"
	"github.com/google/pprof/profile"
)

var (
	sessions       []*Profile // active sessions
	activeSessions uint32
)

// Profile represents an active search profiling session.
type Profile struct {
	// defaults to ./sudokusat.pprof
	// if blank, profile is not written to disk
	filePath string

	// actual pprof profile struct
	// details on pprof format: https://github.com/google/pprof/blob/main/proto/README.md
	pprof profile.Profile

	functions map[uint32]*profile.Function
	locations map[uint32]*profile.Location

	chDone chan struct{}
}

// Option defines configuration Options for Profile.
type Option func(*Profile)

// WithPath controls the profile destination file. If blank, profile is not written.
//
// Defaults to ./sudokusat.pprof.
func WithPath(path string) Option {
	return func(p *Profile) {
		p.filePath = path
	}
}

// WithNoOutput indicates that the profile is not going to be written to disk.
//
// This is equivalent to WithPath("")
func WithNoOutput() Option {
	return func(p *Profile) {
		p.filePath = ""
	}
}

// Start creates a new active profiling session. When Stop() is called, this
// session is removed from active profiling sessions and may be serialized
// to disk as a pprof compatible file (see WithPath option).
//
// All calls to profile.Start() and Stop() are meant to be executed in the
// same go routine that runs the search.
//
// It is allowed to create multiple overlapping profiling sessions.
func Start(options ...Option) *Profile {

	// start the worker first time a profiling session starts.
	onceInit.Do(func() {
		go worker()
	})

	p := Profile{
		functions: make(map[uint32]*profile.Function),
		locations: make(map[uint32]*profile.Location),
		filePath:  filepath.Join(".", "sudokusat.pprof"),
		chDone:    make(chan struct{}),
	}
	p.pprof.SampleType = []*profile.ValueType{{
		Type: "backtracks",
		Unit: "count",
	}}
	p.pprof.Mapping = []*profile.Mapping{{ID: 1, File: "backtracking search"}}

	for _, option := range options {
		option(&p)
	}

	log := logger.Logger()
	if p.filePath == "" {
		log.Warn().Msg("search profiling enabled [not writing to disk]")
	} else {
		log.Info().Str("path", p.filePath).Msg("search profiling enabled")
	}

	// add the session to active sessions
	chCommands <- command{p: &p}
	atomic.AddUint32(&activeSessions, 1)

	return &p
}

// Stop removes the profile from active sessions and may write the pprof
// file to disk. See WithPath option.
func (p *Profile) Stop() {
	log := logger.Logger()

	if p.chDone == nil {
		log.Fatal().Msg("search profile stopped multiple times")
	}

	// ask worker routine to remove ourselves from the active sessions
	chCommands <- command{p: p, remove: true}

	// wait for worker routine to remove us.
	<-p.chDone
	p.chDone = nil

	// if filePath is set, serialize profile to disk in pprof format
	if p.filePath != "" {
		f, err := os.Create(p.filePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create search profile")
		}
		if err := p.pprof.Write(f); err != nil {
			log.Error().Err(err).Msg("writing profile")
		}
		f.Close()
		log.Info().Str("path", p.filePath).Msg("search profiling disabled")
	} else {
		log.Warn().Msg("search profiling disabled [not writing to disk]")
	}

}

// NbBacktracks returns the number of samples (backtrack events) collected
// by the profile session.
func (p *Profile) NbBacktracks() int {
	return len(p.pprof.Sample)
}

// Top returns an output similar to the pprof top command: cell frames
// ordered by flat backtrack count.
func (p *Profile) Top() string {
	type node struct {
		name string
		flat int64
		cum  int64
	}
	nodes := make(map[uint64]*node)
	var total int64
	for _, s := range p.pprof.Sample {
		v := s.Value[0]
		total += v
		seen := make(map[uint64]struct{}, len(s.Location))
		for i, loc := range s.Location {
			nd, ok := nodes[loc.ID]
			if !ok {
				nd = &node{name: loc.Line[0].Function.Name}
				nodes[loc.ID] = nd
			}
			if i == 0 {
				nd.flat += v
			}
			if _, dup := seen[loc.ID]; !dup {
				nd.cum += v
				seen[loc.ID] = struct{}{}
			}
		}
	}

	sorted := make([]*node, 0, len(nodes))
	for _, nd := range nodes {
		sorted = append(sorted, nd)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].flat != sorted[j].flat {
			return sorted[i].flat > sorted[j].flat
		}
		return sorted[i].name < sorted[j].name
	})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Showing nodes accounting for %d, 100%% of %d total\n", total, total)
	buf.WriteString("      flat  flat%   sum%        cum   cum%\n")
	var sum int64
	for _, nd := range sorted {
		sum += nd.flat
		fmt.Fprintf(&buf, "%10d %6.2f%% %6.2f%% %10d %6.2f%%  %s\n",
			nd.flat, pct(nd.flat, total), pct(sum, total), nd.cum, pct(nd.cum, total), nd.name)
	}
	return buf.String()
}

func pct(v, total int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(v) / float64(total)
}

// Active reports whether any profiling session is running. Callers use it
// to skip building the decision-stack copy when nobody listens.
func Active() bool {
	return atomic.LoadUint32(&activeSessions) > 0
}

// maxStackDepth bounds the recorded decision stack; only the deepest
// frames of longer stacks are kept.
const maxStackDepth = 32

// RecordBacktrack adds a sample (with count == 1) to all the active
// profiling sessions. path is the decision stack, root frame first.
func RecordBacktrack(path []board.Cell) {
	if n := atomic.LoadUint32(&activeSessions); n == 0 {
		return // do nothing, no active session.
	}

	if len(path) > maxStackDepth {
		path = path[len(path)-maxStackDepth:]
	}
	// copy the stack and send it async to the worker
	cp := make([]board.Cell, len(path))
	copy(cp, path)
	chCommands <- command{path: cp}
}

func (p *Profile) getLocation(c board.Cell) *profile.Location {
	key := uint32(c.Row)<<16 | uint32(c.Col)
	l, ok := p.locations[key]
	if !ok {
		// first let's see if we have the function.
		f, okf := p.functions[key]
		if !okf {
			f = &profile.Function{
				ID:         uint64(len(p.functions) + 1),
				Name:       c.String(),
				SystemName: c.String(),
				Filename:   fmt.Sprintf("row%d", c.Row),
			}
			p.functions[key] = f
			p.pprof.Function = append(p.pprof.Function, f)
		}

		l = &profile.Location{
			ID:   uint64(len(p.locations) + 1),
			Line: []profile.Line{{Function: f, Line: int64(c.Col) + 1}},
		}
		p.locations[key] = l
		p.pprof.Location = append(p.pprof.Location, l)
	}

	return l
}
