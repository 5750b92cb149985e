package archive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zkgarble/freexor-garble/bristol"
	"github.com/zkgarble/freexor-garble/garble"
	"github.com/zkgarble/freexor-garble/prg"
)

const fixture = `1 3
1 2
1 1
2 1 0 1 2 AND
`

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	c, err := bristol.Parse(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var seed [prg.SeedSize]byte
	for i := range seed {
		seed[i] = byte(i + 7)
	}
	inputs := prg.Derive(seed, c.InputWireCount(), c.InnerWireCount())

	tables, inputPairs, err := garble.Garble(c, inputs)
	if err != nil {
		t.Fatalf("Garble: %v", err)
	}
	commitment := garble.BuildCommitment(c, inputPairs, tables)

	var buf bytes.Buffer
	if err := Marshal(&buf, commitment); err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Unmarshal(&buf)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.CircuitHash != commitment.CircuitHash {
		t.Fatalf("circuit hash mismatch after round trip")
	}
	if len(got.LabelHashes) != len(commitment.LabelHashes) {
		t.Fatalf("label hash count mismatch: got %d, want %d", len(got.LabelHashes), len(commitment.LabelHashes))
	}
	for i := range got.LabelHashes {
		if got.LabelHashes[i] != commitment.LabelHashes[i] {
			t.Fatalf("label hash %d mismatch after round trip", i)
		}
	}
	if len(got.Tables.AndTables) != len(commitment.Tables.AndTables) {
		t.Fatalf("AND table count mismatch")
	}
	for i, wantTbl := range commitment.Tables.AndTables {
		gotTbl := got.Tables.AndTables[i]
		if gotTbl.GateIndex != wantTbl.GateIndex || gotTbl.In0 != wantTbl.In0 ||
			gotTbl.In1 != wantTbl.In1 || gotTbl.Out != wantTbl.Out {
			t.Fatalf("AND table %d metadata mismatch", i)
		}
		for r := range wantTbl.Table {
			if !gotTbl.Table[r].Equal(wantTbl.Table[r]) {
				t.Fatalf("AND table %d row %d mismatch after round trip", i, r)
			}
		}
	}
}

func TestUnmarshalRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 0, 0, 0, 0, 1})
	if _, err := Unmarshal(&buf); err == nil {
		t.Fatalf("expected an error for a bad magic value")
	}
}
