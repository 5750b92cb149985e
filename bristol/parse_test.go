package bristol

import (
	"bytes"
	"strings"
	"testing"
)

const withHeaderAnd = `1 3
1 2
1 1
2 1 0 1 2 AND
`

const headerlessAnd = `2 1 0 1 2 AND
`

func TestParseWithHeaderDialect(t *testing.T) {
	c, err := Parse(strings.NewReader(withHeaderAnd))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.GateCount() != 1 || c.WireCount() != 3 {
		t.Fatalf("unexpected shape: %s", c)
	}
	if c.Input1Count() != 2 || c.OutputWireCount() != 1 {
		t.Fatalf("unexpected I/O widths: in1=%d out=%d", c.Input1Count(), c.OutputWireCount())
	}
	inputs, outputs := c.EnumerateIO()
	if len(inputs) != 2 || len(outputs) != 1 {
		t.Fatalf("unexpected inferred I/O: inputs=%v outputs=%v", inputs, outputs)
	}
	if inputs[0] != 0 || inputs[1] != 1 || outputs[0] != 2 {
		t.Fatalf("inferred I/O wires wrong: inputs=%v outputs=%v", inputs, outputs)
	}
}

func TestParseHeaderlessDialect(t *testing.T) {
	c, err := Parse(strings.NewReader(headerlessAnd))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.GateCount() != 1 || c.WireCount() != 3 {
		t.Fatalf("unexpected shape: %s", c)
	}
	inputs, outputs := c.EnumerateIO()
	if len(inputs) != 2 || len(outputs) != 1 {
		t.Fatalf("unexpected inferred I/O: inputs=%v outputs=%v", inputs, outputs)
	}
}

func TestParseRejectsUnknownOpcode(t *testing.T) {
	const bad = `1 3
1 2
1 1
2 1 0 1 2 NAND
`
	_, err := Parse(strings.NewReader(bad))
	if err == nil {
		t.Fatalf("expected an error for an unknown opcode")
	}
	if _, ok := err.(*OpcodeUnsupportedError); !ok {
		t.Fatalf("expected *OpcodeUnsupportedError, got %T: %v", err, err)
	}
}

func TestParseRejectsHeaderMismatch(t *testing.T) {
	const mismatched = `2 3
1 2
1 1
2 1 0 1 2 AND
`
	_, err := Parse(strings.NewReader(mismatched))
	if err == nil {
		t.Fatalf("expected an error for a num_gates/body mismatch")
	}
	if _, ok := err.(*HeaderMismatchError); !ok {
		t.Fatalf("expected *HeaderMismatchError, got %T: %v", err, err)
	}
}

func TestParseRejectsOutOfBoundsWire(t *testing.T) {
	const oob = `1 3
1 2
1 1
2 1 0 9 2 AND
`
	_, err := Parse(strings.NewReader(oob))
	if err == nil {
		t.Fatalf("expected an error for an out-of-bounds input wire")
	}
	if _, ok := err.(*WireOutOfBoundsError); !ok {
		t.Fatalf("expected *WireOutOfBoundsError, got %T: %v", err, err)
	}
}

func TestParseRejectsNegativeInputWire(t *testing.T) {
	const negativeIn = `1 3
1 2
1 1
2 1 -1 0 2 AND
`
	_, err := Parse(strings.NewReader(negativeIn))
	if err == nil {
		t.Fatalf("expected an error for a negative input wire")
	}
	if _, ok := err.(*WireOutOfBoundsError); !ok {
		t.Fatalf("expected *WireOutOfBoundsError, got %T: %v", err, err)
	}
}

func TestParseRejectsNegativeOutputWire(t *testing.T) {
	const negativeOut = `1 3
1 2
1 1
2 1 0 1 -1 AND
`
	_, err := Parse(strings.NewReader(negativeOut))
	if err == nil {
		t.Fatalf("expected an error for a negative output wire")
	}
	if _, ok := err.(*WireOutOfBoundsError); !ok {
		t.Fatalf("expected *WireOutOfBoundsError, got %T: %v", err, err)
	}
}

func TestParseRejectsNegativeWireHeaderless(t *testing.T) {
	const negativeHeaderless = `2 1 -1 0 1 AND
`
	_, err := Parse(strings.NewReader(negativeHeaderless))
	if err == nil {
		t.Fatalf("expected an error for a negative wire in the headerless dialect")
	}
	if _, ok := err.(*WireOutOfBoundsError); !ok {
		t.Fatalf("expected *WireOutOfBoundsError, got %T: %v", err, err)
	}
}

func TestParseRejectsDoubleDrivenWire(t *testing.T) {
	const doubleDriven = `2 4
1 2
1 1
2 1 0 1 2 AND
2 1 0 1 2 XOR
`
	_, err := Parse(strings.NewReader(doubleDriven))
	if err == nil {
		t.Fatalf("expected an error for a wire driven by two gates")
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	c, err := Parse(strings.NewReader(withHeaderAnd))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, c); err != nil {
		t.Fatalf("Write: %v", err)
	}

	roundTripped, err := Parse(&buf)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}

	if roundTripped.GateCount() != c.GateCount() || roundTripped.WireCount() != c.WireCount() {
		t.Fatalf("round-trip shape mismatch: got %s, want %s", roundTripped, c)
	}
	if roundTripped.Input1Count() != c.Input1Count() || roundTripped.OutputWireCount() != c.OutputWireCount() {
		t.Fatalf("round-trip I/O width mismatch")
	}
	gotGates := roundTripped.Gates()
	wantGates := c.Gates()
	if len(gotGates) != len(wantGates) {
		t.Fatalf("round-trip gate count mismatch")
	}
	for i := range gotGates {
		if gotGates[i] != wantGates[i] {
			t.Fatalf("round-trip gate %d mismatch: got %+v, want %+v", i, gotGates[i], wantGates[i])
		}
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	const withBlanks = "1 3\n\n1 2\n\n1 1\n\n2 1 0 1 2 AND\n\n"
	c, err := Parse(strings.NewReader(withBlanks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.GateCount() != 1 {
		t.Fatalf("expected 1 gate, got %d", c.GateCount())
	}
}
