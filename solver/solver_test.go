package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDString(t *testing.T) {
	assert := require.New(t)

	assert.Equal("backtracking", BACKTRACKING.String())
	assert.Equal("sat", SAT.String())
	assert.Equal("unknown", UNKNOWN.String())
	assert.Equal("unknown", ID(42).String())
}

func TestIDFromString(t *testing.T) {
	assert := require.New(t)

	for s, want := range map[string]ID{
		"backtracking": BACKTRACKING,
		"backtrack":    BACKTRACKING,
		"Backtracking": BACKTRACKING,
		"sat":          SAT,
		"SAT":          SAT,
	} {
		id, err := IDFromString(s)
		assert.NoError(err, s)
		assert.Equal(want, id, s)
	}

	_, err := IDFromString("dpll")
	assert.Error(err)
	_, err = IDFromString("")
	assert.Error(err)
}

func TestIDs(t *testing.T) {
	assert := require.New(t)

	ids := IDs()
	assert.Equal([]ID{BACKTRACKING, SAT}, ids)
	for _, id := range ids {
		assert.NotEqual(UNKNOWN, id)

		// names round-trip through the command-line form
		back, err := IDFromString(id.String())
		assert.NoError(err)
		assert.Equal(id, back)
	}
}
