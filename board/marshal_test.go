package board_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/internal/testgrids"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	assert := require.New(t)

	for _, fixture := range []string{testgrids.Classic, testgrids.ClassicSolved, testgrids.FourSolved} {
		b := testgrids.MustParse(fixture)

		var buf bytes.Buffer
		written, err := b.WriteTo(&buf)
		assert.NoError(err)
		assert.EqualValues(buf.Len(), written)

		var back board.Board
		read, err := back.ReadFrom(&buf)
		assert.NoError(err)
		assert.Equal(written, read)
		assert.True(b.Equal(&back))
	}

	// empty 25×25
	big, err := board.New(25)
	assert.NoError(err)
	var buf bytes.Buffer
	_, err = big.WriteTo(&buf)
	assert.NoError(err)
	var back board.Board
	_, err = back.ReadFrom(&buf)
	assert.NoError(err)
	assert.True(big.Equal(&back))
}

func TestReadFromRejectsCorruptStreams(t *testing.T) {
	assert := require.New(t)

	var b board.Board

	// header length beyond the cap
	var buf bytes.Buffer
	assert.NoError(binary.Write(&buf, binary.LittleEndian, uint64(1<<20)))
	_, err := b.ReadFrom(&buf)
	assert.Error(err)

	// truncated stream
	good := testgrids.MustParse(testgrids.Classic)
	buf.Reset()
	_, err = good.WriteTo(&buf)
	assert.NoError(err)
	_, err = b.ReadFrom(bytes.NewReader(buf.Bytes()[:buf.Len()-5]))
	assert.Error(err)
}

func TestFingerprint(t *testing.T) {
	assert := require.New(t)

	b := testgrids.MustParse(testgrids.Classic)
	fp := b.Fingerprint()
	assert.Equal(fp, b.Clone().Fingerprint())

	c := b.Clone()
	assert.NoError(c.Set(0, 2, 4))
	assert.NotEqual(fp, c.Fingerprint())

	a4, err := board.New(4)
	assert.NoError(err)
	a9, err := board.New(9)
	assert.NoError(err)
	assert.NotEqual(a4.Fingerprint(), a9.Fingerprint())
}
