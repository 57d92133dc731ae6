package board_test

import (
	"testing"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/internal/testgrids"
	"github.com/stretchr/testify/require"
)

func TestStringParseRoundTrip(t *testing.T) {
	assert := require.New(t)

	b := testgrids.MustParse(testgrids.Classic)
	assert.Equal(testgrids.Classic, b.String())

	again, err := board.ParseString(b.String())
	assert.NoError(err)
	assert.True(b.Equal(again))

	// sizes above 9 take the whitespace-separated format
	big, err := board.New(16)
	assert.NoError(err)
	assert.NoError(big.Set(0, 0, 16))
	assert.NoError(big.Set(15, 15, 1))
	back, err := board.ParseString(big.String())
	assert.NoError(err)
	assert.True(big.Equal(back))
}

func TestParseFormats(t *testing.T) {
	assert := require.New(t)

	// comments, blank lines, and both empty markers
	b, err := board.ParseString("# fixture\n\n12.4\n0...\n\n..1.\n....\n")
	assert.NoError(err)
	assert.Equal(4, b.Size())
	assert.EqualValues(4, b.At(0, 3))
	assert.EqualValues(0, b.At(1, 0))
	assert.EqualValues(1, b.At(2, 2))

	// whitespace-separated cells
	ws, err := board.ParseString("1 2 . 4\n. . . .\n. . 1 .\n. . . .\n")
	assert.NoError(err)
	assert.EqualValues(2, ws.At(0, 1))
	assert.EqualValues(1, ws.At(2, 2))
}

func TestParseRejectsMalformedInput(t *testing.T) {
	assert := require.New(t)

	// row count is not a perfect square
	_, err := board.ParseString("123\n456\n789\n")
	assert.ErrorIs(err, board.ErrUnsupportedSize)

	// stray character
	_, err = board.ParseString("12.4\n0...\n..1.\n..x.\n")
	assert.ErrorIs(err, board.ErrOutOfRange)

	// ragged rows
	_, err = board.ParseString("1234\n123\n1234\n1234\n")
	assert.ErrorIs(err, board.ErrOutOfRange)

	// cell value beyond the side
	_, err = board.ParseString("1 2 3 4\n5 . . .\n. . . .\n. . . .\n")
	assert.ErrorIs(err, board.ErrOutOfRange)
}
