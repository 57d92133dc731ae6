package profile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/profile"
	"github.com/YuriBrandi/SudokuSAT/solver/backtrack"
	pprofile "github.com/google/pprof/profile"
	"github.com/stretchr/testify/require"
)

func TestSearchProfile(t *testing.T) {
	assert := require.New(t)

	empty, err := board.New(9)
	assert.NoError(err)

	p := profile.Start(profile.WithNoOutput())
	_, stats, err := backtrack.Solve(empty)
	p.Stop()
	assert.NoError(err)

	// the ascending order is known to dead-end on the empty grid
	assert.Positive(stats.Backtracks)
	assert.EqualValues(stats.Backtracks, p.NbBacktracks())

	top := p.Top()
	assert.Contains(top, "Showing nodes")
	assert.Contains(top, fmt.Sprintf("of %d total", p.NbBacktracks()))
	// the first dead end is at r4c6, so the search retreats into r4c5
	assert.Contains(top, "r4c5")
}

func TestOverlappingSessions(t *testing.T) {
	assert := require.New(t)

	empty, err := board.New(9)
	assert.NoError(err)

	p1 := profile.Start(profile.WithNoOutput())
	p2 := profile.Start(profile.WithNoOutput())
	_, stats, err := backtrack.Solve(empty)
	p1.Stop()

	// p2 keeps collecting after p1 stopped
	_, stats2, err2 := backtrack.Solve(empty)
	p2.Stop()

	assert.NoError(err)
	assert.NoError(err2)
	assert.EqualValues(stats.Backtracks, p1.NbBacktracks())
	assert.EqualValues(stats.Backtracks+stats2.Backtracks, p2.NbBacktracks())
}

func TestProfileFile(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "search.pprof")
	empty, err := board.New(9)
	assert.NoError(err)

	p := profile.Start(profile.WithPath(path))
	_, _, err = backtrack.Solve(empty)
	p.Stop()
	assert.NoError(err)

	f, err := os.Open(path)
	assert.NoError(err)
	defer f.Close()

	parsed, err := pprofile.Parse(f)
	assert.NoError(err)
	assert.Equal(p.NbBacktracks(), len(parsed.Sample))
	assert.Equal("backtracks", parsed.SampleType[0].Type)
	assert.Equal("count", parsed.SampleType[0].Unit)
}

func TestInactiveCostsNothing(t *testing.T) {
	assert := require.New(t)

	assert.False(profile.Active())
	// no session: recording is a no-op rather than a blocked send
	profile.RecordBacktrack([]board.Cell{{Row: 0, Col: 0}})

	p := profile.Start(profile.WithNoOutput())
	assert.True(profile.Active())
	p.Stop()
	assert.False(profile.Active())
}
