// Package archive provides a fixed-layout binary codec for the
// garbling engine's public Commitment record. It is a conventional,
// parse-and-copy stand-in for the archival codec: the original system's
// zero-copy format (Rust rkyv) has no Go counterpart in this codebase's
// dependency lineage, so this package intentionally does not claim
// zero-copy semantics. It exists purely so a Commitment can be written
// to and read back from a file or network connection.
package archive

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zkgarble/freexor-garble/bristol"
	"github.com/zkgarble/freexor-garble/garble"
	"github.com/zkgarble/freexor-garble/label"
)

// magic tags the stream so Unmarshal can reject foreign input early
// instead of misparsing it into garbage lengths.
const magic uint32 = 0x46584f52 // "FXOR"

// version is bumped whenever the wire layout changes incompatibly.
const version uint32 = 1

// Marshal encodes commitment into w using a fixed big-endian layout:
// magic, version, circuit hash, a length-prefixed label-hash table, and
// length-prefixed AND/INV table lists.
func Marshal(w io.Writer, commitment *garble.Commitment) error {
	bw := &binWriter{w: w}

	bw.writeUint32(magic)
	bw.writeUint32(version)
	bw.writeBytes(commitment.CircuitHash[:])

	bw.writeUint32(uint32(len(commitment.LabelHashes)))
	for _, lh := range commitment.LabelHashes {
		bw.writeUint32(uint32(lh.Wire))
		bw.writeBytes(lh.Hash0[:])
		bw.writeBytes(lh.Hash1[:])
	}

	bw.writeUint32(uint32(len(commitment.Tables.AndTables)))
	for _, t := range commitment.Tables.AndTables {
		bw.writeUint32(uint32(t.GateIndex))
		bw.writeUint32(uint32(t.In0))
		bw.writeUint32(uint32(t.In1))
		bw.writeUint32(uint32(t.Out))
		for _, row := range t.Table {
			d := row.Bytes()
			bw.writeBytes(d[:])
		}
	}

	bw.writeUint32(uint32(len(commitment.Tables.NotTables)))
	for _, t := range commitment.Tables.NotTables {
		bw.writeUint32(uint32(t.GateIndex))
		bw.writeUint32(uint32(t.In))
		bw.writeUint32(uint32(t.Out))
		for _, row := range t.Table {
			d := row.Bytes()
			bw.writeBytes(d[:])
		}
	}

	return bw.err
}

// Unmarshal decodes a Commitment previously written by Marshal.
func Unmarshal(r io.Reader) (*garble.Commitment, error) {
	br := &binReader{r: r}

	gotMagic := br.readUint32()
	if br.err != nil {
		return nil, br.err
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("archive: bad magic %#x, want %#x", gotMagic, magic)
	}
	gotVersion := br.readUint32()
	if gotVersion != version {
		return nil, fmt.Errorf("archive: unsupported version %d, want %d", gotVersion, version)
	}

	var commitment garble.Commitment
	circuitHash := br.readBytes(sha256.Size)
	copy(commitment.CircuitHash[:], circuitHash)

	numLabelHashes := br.readUint32()
	commitment.LabelHashes = make([]garble.InputLabelHash, numLabelHashes)
	for i := range commitment.LabelHashes {
		w := bristol.Wire(br.readUint32())
		h0 := br.readBytes(sha256.Size)
		h1 := br.readBytes(sha256.Size)
		lh := garble.InputLabelHash{Wire: w}
		copy(lh.Hash0[:], h0)
		copy(lh.Hash1[:], h1)
		commitment.LabelHashes[i] = lh
	}

	numAnd := br.readUint32()
	commitment.Tables.AndTables = make([]garble.AndGateTable, numAnd)
	for i := range commitment.Tables.AndTables {
		t := garble.AndGateTable{
			GateIndex: int(br.readUint32()),
			In0:       bristol.Wire(br.readUint32()),
			In1:       bristol.Wire(br.readUint32()),
			Out:       bristol.Wire(br.readUint32()),
		}
		for r := range t.Table {
			t.Table[r] = label.FromSlice(br.readBytes(label.Size))
		}
		commitment.Tables.AndTables[i] = t
	}

	numNot := br.readUint32()
	commitment.Tables.NotTables = make([]garble.NotGateTable, numNot)
	for i := range commitment.Tables.NotTables {
		t := garble.NotGateTable{
			GateIndex: int(br.readUint32()),
			In:        bristol.Wire(br.readUint32()),
			Out:       bristol.Wire(br.readUint32()),
		}
		for r := range t.Table {
			t.Table[r] = label.FromSlice(br.readBytes(label.Size))
		}
		commitment.Tables.NotTables[i] = t
	}

	if br.err != nil && br.err != io.EOF {
		return nil, br.err
	}
	return &commitment, nil
}

// binWriter accumulates the first error across a sequence of writes so
// callers don't need to check an error after every field, matching the
// teacher's own binary-header writers.
type binWriter struct {
	w   io.Writer
	err error
}

func (bw *binWriter) writeUint32(v uint32) {
	if bw.err != nil {
		return
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, bw.err = bw.w.Write(b[:])
}

func (bw *binWriter) writeBytes(b []byte) {
	if bw.err != nil {
		return
	}
	_, bw.err = bw.w.Write(b)
}

type binReader struct {
	r   io.Reader
	err error
}

func (br *binReader) readUint32() uint32 {
	if br.err != nil {
		return 0
	}
	var b [4]byte
	_, br.err = io.ReadFull(br.r, b[:])
	if br.err != nil {
		return 0
	}
	return binary.BigEndian.Uint32(b[:])
}

func (br *binReader) readBytes(n int) []byte {
	if br.err != nil {
		return make([]byte, n)
	}
	b := make([]byte, n)
	_, br.err = io.ReadFull(br.r, b)
	return b
}
