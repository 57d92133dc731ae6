package profile

import (
	"sync"
	"sync/atomic"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/google/pprof/profile"
)

// since the search is in one single go routine, no need for this channel
// to be buffered heavily; its purpose is to serialize session add/remove
// against sampling while letting the solver hand samples off.
var chCommands = make(chan command, 100)
var onceInit sync.Once

type command struct {
	p      *Profile
	path   []board.Cell
	remove bool
}

func worker() {
	for c := range chCommands {
		if c.p != nil {
			if c.remove {
				for i := 0; i < len(sessions); i++ {
					if sessions[i] == c.p {
						sessions[i] = sessions[len(sessions)-1]
						sessions = sessions[:len(sessions)-1]
						break
					}
				}
				close(c.p.chDone)
				atomic.AddUint32(&activeSessions, ^uint32(0))
			} else {
				sessions = append(sessions, c.p)
			}
			continue
		}
		collectSample(c.path)
	}
}

// collectSample must be called from the worker go routine. path holds the
// decision stack root first; pprof wants the leaf in Location[0].
func collectSample(path []board.Cell) {
	// for each session we may have distinct function and location ids
	samples := make([]*profile.Sample, len(sessions))
	for i := range samples {
		samples[i] = &profile.Sample{Value: []int64{1}}
	}

	for i := len(path) - 1; i >= 0; i-- {
		for j := range sessions {
			samples[j].Location = append(samples[j].Location, sessions[j].getLocation(path[i]))
		}
	}

	for i := range sessions {
		sessions[i].pprof.Sample = append(sessions[i].pprof.Sample, samples[i])
	}
}
