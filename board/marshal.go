package board

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/YuriBrandi/SudokuSAT/internal/ioutils"
	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"
	"golang.org/x/crypto/blake2b"
)

// formatVersion tags the binary board layout.
const formatVersion = 1

// maxHeaderLen caps the serialized header size on read, so a corrupt
// prefix cannot trigger a huge allocation.
const maxHeaderLen = 1 << 10

type header struct {
	Version uint8 `cbor:"v"`
	Size    uint8 `cbor:"n"`
}

// WriteTo serializes the board as a length-prefixed cbor header followed
// by the cells, bit-packed to ⌈log₂(N+1)⌉ bits each.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	cw := &ioutils.WriterCounter{W: w}

	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return cw.N, err
	}
	hdr, err := em.Marshal(header{Version: formatVersion, Size: uint8(b.size)})
	if err != nil {
		return cw.N, err
	}
	if err := binary.Write(cw, binary.LittleEndian, uint64(len(hdr))); err != nil {
		return cw.N, err
	}
	if _, err := cw.Write(hdr); err != nil {
		return cw.N, err
	}

	bw := bitio.NewWriter(cw)
	nbBits := uint8(bits.Len(uint(b.size)))
	for _, v := range b.cells {
		if err := bw.WriteBits(uint64(v), nbBits); err != nil {
			return cw.N, err
		}
	}
	// Close flushes the last partial byte, so the count is read after.
	if err := bw.Close(); err != nil {
		return cw.N, err
	}
	return cw.N, nil
}

// ReadFrom loads a board serialized by WriteTo, replacing the receiver.
func (b *Board) ReadFrom(r io.Reader) (int64, error) {
	cr := &ioutils.ReaderCounter{R: r}

	var hdrLen uint64
	if err := binary.Read(cr, binary.LittleEndian, &hdrLen); err != nil {
		return cr.N, err
	}
	if hdrLen > maxHeaderLen {
		return cr.N, fmt.Errorf("board header declares %d bytes", hdrLen)
	}
	raw := make([]byte, hdrLen)
	if _, err := io.ReadFull(cr, raw); err != nil {
		return cr.N, err
	}
	var hdr header
	if err := cbor.Unmarshal(raw, &hdr); err != nil {
		return cr.N, fmt.Errorf("board header: %w", err)
	}
	if hdr.Version != formatVersion {
		return cr.N, fmt.Errorf("board format version %d not supported", hdr.Version)
	}
	nb, err := New(int(hdr.Size))
	if err != nil {
		return cr.N, err
	}

	br := bitio.NewReader(cr)
	nbBits := uint8(bits.Len(uint(nb.size)))
	for i := range nb.cells {
		v, err := br.ReadBits(nbBits)
		if err != nil {
			return cr.N, err
		}
		if v > uint64(nb.size) {
			return cr.N, fmt.Errorf("cell %d holds %d: %w", i, v, ErrOutOfRange)
		}
		nb.cells[i] = uint8(v)
	}
	*b = *nb
	return cr.N, nil
}

// Fingerprint returns a blake2b digest of the size and cells, a stable
// identity for boards in logs and tests.
func (b *Board) Fingerprint() [32]byte {
	h, _ := blake2b.New256(nil)
	h.Write([]byte{uint8(b.size)})
	h.Write(b.cells)
	var fp [32]byte
	copy(fp[:], h.Sum(nil))
	return fp
}
