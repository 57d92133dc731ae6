package ioutils

import (
	"bytes"
	"io"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestFoldUnfold(t *testing.T) {
	assert := require.New(t)

	// small magnitudes of either sign fold onto small codes
	assert.Equal(uint32(0), Fold(int32(0)))
	assert.Equal(uint32(1), Fold(int32(-1)))
	assert.Equal(uint32(2), Fold(int32(1)))
	assert.Equal(uint32(3), Fold(int32(-2)))
	assert.Equal(uint32(4), Fold(int32(2)))

	for _, v := range []int32{0, 1, -1, 729, -729, 1 << 30, -(1 << 30), 1<<31 - 1, -1 << 31} {
		assert.Equal(v, Unfold[int32](Fold(v)), "round trip of %d", v)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Unfold inverts Fold", prop.ForAll(
		func(v int32) bool {
			return Unfold[int32](Fold(v)) == v
		},
		gen.Int32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCompressRoundTrip(t *testing.T) {
	assert := require.New(t)

	input := make([]uint32, 1000)
	for i := range input {
		input[i] = uint32(i % 97)
	}

	var buf bytes.Buffer
	_, err := CompressAndWriteUints32(&buf, input, nil)
	assert.NoError(err)
	written := buf.Len()

	n, out, err := ReadAndDecompressUints32(&buf)
	assert.NoError(err)
	assert.Equal(written, n, "byte count mismatch")
	assert.Equal(input, out)

	buf.Reset()
	_, err = CompressAndWriteUints32(&buf, nil, nil)
	assert.NoError(err)
	written = buf.Len()

	n, out, err = ReadAndDecompressUints32(&buf)
	assert.NoError(err)
	assert.Equal(written, n)
	assert.Empty(out)
}

func TestCounters(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	w := &WriterCounter{W: &buf}
	_, err := w.Write([]byte("abc"))
	assert.NoError(err)
	_, err = w.Write([]byte("def"))
	assert.NoError(err)
	assert.Equal(int64(6), w.N)
	assert.Equal("abcdef", buf.String())

	r := &ReaderCounter{R: bytes.NewReader(buf.Bytes())}
	p := make([]byte, 4)
	_, err = io.ReadFull(r, p)
	assert.NoError(err)
	assert.Equal(int64(4), r.N)
}
