// Package ioutils provides counting reader/writer wrappers and compressed
// integer-stream helpers shared by the serialization code.
package ioutils

import (
	"encoding/binary"
	"io"

	"github.com/ronanh/intcomp"
	"golang.org/x/exp/constraints"
)

type WriterCounter struct {
	W io.Writer
	N int64
}

func (w *WriterCounter) Write(p []byte) (n int, err error) {
	n, err = w.W.Write(p)
	w.N += int64(n)
	return
}

type ReaderCounter struct {
	R io.Reader
	N int64
}

func (r *ReaderCounter) Read(p []byte) (n int, err error) {
	n, err = r.R.Read(p)
	r.N += int64(n)
	return
}

// Fold maps a signed integer onto the zig-zag line (0, -1, 1, -2, 2, ...)
// so that small magnitudes of either sign stay small once compressed.
func Fold[T constraints.Signed](v T) uint32 {
	if v < 0 {
		return uint32(-v)*2 - 1
	}
	return uint32(v) * 2
}

// Unfold inverts Fold.
func Unfold[T constraints.Signed](u uint32) T {
	if u&1 == 1 {
		return -T(u/2 + 1)
	}
	return T(u / 2)
}

// CompressAndWriteUints32 compresses a slice of uint32 and writes it to w,
// length-prefixed. It returns the compression buffer (possibly extended)
// for future use.
func CompressAndWriteUints32(w io.Writer, input []uint32, buffer []uint32) ([]uint32, error) {
	buffer = buffer[:0]
	buffer = intcomp.CompressUint32(input, buffer)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(buffer))); err != nil {
		return buffer, err
	}
	return buffer, binary.Write(w, binary.LittleEndian, buffer)
}

// ReadAndDecompressUints32 reads a compressed slice of uint32 from r and
// decompresses it. It returns the number of bytes read and the values.
func ReadAndDecompressUints32(r io.Reader) (int, []uint32, error) {
	var length uint64
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return 0, nil, err
	}
	buffer := make([]uint32, length)
	if err := binary.Read(r, binary.LittleEndian, buffer); err != nil {
		return 8, nil, err
	}
	return 8 + 4*int(length), intcomp.UncompressUint32(buffer, nil), nil
}
