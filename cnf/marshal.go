package cnf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/YuriBrandi/SudokuSAT/internal/ioutils"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"
)

// dumpVersion tags the binary dump layout.
const dumpVersion = 1

// maxDumpHeaderLen caps the serialized header size on read.
const maxDumpHeaderLen = 1 << 10

type dumpHeader struct {
	Version   uint8 `cbor:"v"`
	Size      uint8 `cbor:"n"`
	NbVars    int   `cbor:"nv"`
	NbClauses int   `cbor:"nc"`
}

// WriteDump writes a compact binary image of the instance: a cbor header,
// then the clause lengths and the zig-zag folded literals as two
// intcomp-compressed streams. The streams compress concurrently.
func (ins *Instance) WriteDump(w io.Writer) error {
	var nbLits int
	for _, clause := range ins.clauses {
		nbLits += len(clause)
	}

	var bufLengths, bufLits bytes.Buffer
	g := new(errgroup.Group)
	g.Go(func() error {
		lengths := make([]uint32, len(ins.clauses))
		for i, clause := range ins.clauses {
			lengths[i] = uint32(len(clause))
		}
		_, err := ioutils.CompressAndWriteUints32(&bufLengths, lengths, nil)
		return err
	})
	g.Go(func() error {
		lits := make([]uint32, 0, nbLits)
		for _, clause := range ins.clauses {
			for _, lit := range clause {
				lits = append(lits, ioutils.Fold(lit))
			}
		}
		_, err := ioutils.CompressAndWriteUints32(&bufLits, lits, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	hdr, err := em.Marshal(dumpHeader{
		Version:   dumpVersion,
		Size:      uint8(ins.size),
		NbVars:    ins.nbVars,
		NbClauses: len(ins.clauses),
	})
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(hdr))); err != nil {
		return err
	}
	if _, err := w.Write(hdr); err != nil {
		return err
	}
	if _, err := w.Write(bufLengths.Bytes()); err != nil {
		return err
	}
	_, err = w.Write(bufLits.Bytes())
	return err
}

// ReadDump loads an instance written by WriteDump, replacing the receiver.
func (ins *Instance) ReadDump(r io.Reader) error {
	var hdrLen uint64
	if err := binary.Read(r, binary.LittleEndian, &hdrLen); err != nil {
		return err
	}
	if hdrLen > maxDumpHeaderLen {
		return fmt.Errorf("dump header declares %d bytes", hdrLen)
	}
	raw := make([]byte, hdrLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return err
	}
	var hdr dumpHeader
	if err := cbor.Unmarshal(raw, &hdr); err != nil {
		return fmt.Errorf("dump header: %w", err)
	}
	if hdr.Version != dumpVersion {
		return fmt.Errorf("dump format version %d not supported", hdr.Version)
	}

	_, lengths, err := ioutils.ReadAndDecompressUints32(r)
	if err != nil {
		return fmt.Errorf("clause lengths: %w", err)
	}
	_, folded, err := ioutils.ReadAndDecompressUints32(r)
	if err != nil {
		return fmt.Errorf("literals: %w", err)
	}
	if len(lengths) != hdr.NbClauses {
		return fmt.Errorf("dump holds %d clauses, header declares %d", len(lengths), hdr.NbClauses)
	}
	var total uint64
	for _, l := range lengths {
		total += uint64(l)
	}
	if total != uint64(len(folded)) {
		return fmt.Errorf("dump holds %d literals, lengths sum to %d", len(folded), total)
	}

	flat := make([]int, len(folded))
	for i, u := range folded {
		flat[i] = ioutils.Unfold[int](u)
	}
	clauses := make([][]int, len(lengths))
	offset := 0
	for i, l := range lengths {
		clauses[i] = flat[offset : offset+int(l) : offset+int(l)]
		offset += int(l)
	}

	ins.size = int(hdr.Size)
	ins.nbVars = hdr.NbVars
	ins.clauses = clauses
	return nil
}
