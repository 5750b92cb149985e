// Package garble implements the Free-XOR garbling engine: a single
// topological forward pass over a bristol.Circuit that assigns label
// pairs to every wire, materializes ciphertext tables for AND and INV
// gates, and skips table emission for XOR gates.
package garble

import (
	"fmt"

	"github.com/zkgarble/freexor-garble/bristol"
	"github.com/zkgarble/freexor-garble/label"
	"github.com/zkgarble/freexor-garble/prg"
)

// AndGateTable is the 4-row garbled table for one AND gate. Row i is
// indexed by (a,b) encoded as 2a+b, a/b selecting in0/in1's bit.
type AndGateTable struct {
	GateIndex int
	In0, In1  bristol.Wire
	Out       bristol.Wire
	Table     [4]label.Label
}

// NotGateTable is the 2-row garbled table for one INV gate, indexed by
// the input bit.
type NotGateTable struct {
	GateIndex int
	In        bristol.Wire
	Out       bristol.Wire
	Table     [2]label.Label
}

// GarbledTables is the engine's output: one table per non-free gate, in
// the order those gates appear in the circuit's gate list.
type GarbledTables struct {
	AndTables []AndGateTable
	NotTables []NotGateTable
}

// SizeMismatchError reports that the supplied LabelInputs don't match
// the circuit's wire counts, or that the inner-label cursor was
// exhausted early or left non-empty.
type SizeMismatchError struct {
	Msg      string
	Want     int
	Got      int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("garble: %s: want %d, got %d", e.Msg, e.Want, e.Got)
}

// wireSlot is a single-assignment, tagged-optional wire entry: Assigned
// distinguishes "unassigned" from "assigned" rather than relying on a
// sentinel label value, so a topological-order bug in the gate list
// (a gate reading an input before it's produced) fails loudly instead of
// silently consuming the zero label.
type wireSlot struct {
	Pair     label.Pair
	Assigned bool
}

// Garble runs the single forward pass described by the garbling
// algorithm: it consumes inputs.InputLabels to seed primary input wires,
// walks c.Gates() in declaration order, and draws one fresh label per
// non-free gate output from inputs.InnerLabels, in that order.
//
// |inputs.InputLabels| must equal c.InputWireCount() and
// |inputs.InnerLabels| must equal c.InnerWireCount(); a mismatch, or an
// inner-label cursor left non-empty or exhausted early, is a
// SizeMismatchError.
//
// Garble also returns the primary input wires' label pairs, in
// EnumerateIO order, for callers (such as BuildCommitment) that need to
// hash them without re-deriving or re-walking the circuit.
func Garble(c *bristol.Circuit, inputs prg.LabelInputs) (*GarbledTables, []label.Pair, error) {
	if len(inputs.InputLabels) != c.InputWireCount() {
		return nil, nil, &SizeMismatchError{Msg: "input label count", Want: c.InputWireCount(), Got: len(inputs.InputLabels)}
	}
	if len(inputs.InnerLabels) != c.InnerWireCount() {
		return nil, nil, &SizeMismatchError{Msg: "inner label count", Want: c.InnerWireCount(), Got: len(inputs.InnerLabels)}
	}

	delta := inputs.Delta
	wires := make([]wireSlot, c.WireCount())

	for i := 0; i < c.InputWireCount(); i++ {
		k0 := inputs.InputLabels[i]
		wires[i] = wireSlot{
			Pair:     label.Pair{L0: k0, L1: label.Xor(k0, delta)},
			Assigned: true,
		}
	}

	innerCursor := 0
	nextInner := func() (label.Label, error) {
		if innerCursor >= len(inputs.InnerLabels) {
			return label.Label{}, &SizeMismatchError{
				Msg: "inner labels exhausted early", Want: c.InnerWireCount(), Got: innerCursor,
			}
		}
		l := inputs.InnerLabels[innerCursor]
		innerCursor++
		return l, nil
	}

	readWire := func(gateIdx int, w bristol.Wire) (label.Pair, error) {
		if int(w) < 0 || int(w) >= len(wires) || !wires[w].Assigned {
			return label.Pair{}, &bristol.WireOutOfBoundsError{
				Gate: gateIdx, Wire: w, Msg: "wire read before assignment",
			}
		}
		return wires[w].Pair, nil
	}

	var tables GarbledTables

	for gateIdx, g := range c.Gates() {
		switch g.Op {
		case bristol.XOR:
			lu, err := readWire(gateIdx, g.In0)
			if err != nil {
				return nil, nil, err
			}
			lv, err := readWire(gateIdx, g.In1)
			if err != nil {
				return nil, nil, err
			}
			k0 := label.Xor(lu.L0, lv.L0)
			k1 := label.Xor(k0, delta)
			wires[g.Out] = wireSlot{Pair: label.Pair{L0: k0, L1: k1}, Assigned: true}

		case bristol.AND:
			lu, err := readWire(gateIdx, g.In0)
			if err != nil {
				return nil, nil, err
			}
			lv, err := readWire(gateIdx, g.In1)
			if err != nil {
				return nil, nil, err
			}
			k0Out, err := nextInner()
			if err != nil {
				return nil, nil, err
			}
			k1Out := label.Xor(k0Out, delta)
			wires[g.Out] = wireSlot{Pair: label.Pair{L0: k0Out, L1: k1Out}, Assigned: true}

			var table [4]label.Label
			for a := 0; a < 2; a++ {
				for b := 0; b < 2; b++ {
					ka := lu.Select(a)
					kb := lv.Select(b)
					outBit := a & b
					var kout label.Label
					if outBit == 0 {
						kout = k0Out
					} else {
						kout = k1Out
					}
					table[2*a+b] = label.Xor(label.Pad(ka, kb), kout)
				}
			}
			tables.AndTables = append(tables.AndTables, AndGateTable{
				GateIndex: gateIdx, In0: g.In0, In1: g.In1, Out: g.Out, Table: table,
			})

		case bristol.INV:
			lu, err := readWire(gateIdx, g.In0)
			if err != nil {
				return nil, nil, err
			}
			k0Out, err := nextInner()
			if err != nil {
				return nil, nil, err
			}
			k1Out := label.Xor(k0Out, delta)
			wires[g.Out] = wireSlot{Pair: label.Pair{L0: k0Out, L1: k1Out}, Assigned: true}

			var table [2]label.Label
			for a := 0; a < 2; a++ {
				ka := lu.Select(a)
				outBit := 1 - a
				var kout label.Label
				if outBit == 0 {
					kout = k0Out
				} else {
					kout = k1Out
				}
				table[a] = label.Xor(label.Pad(ka, ka), kout)
			}
			tables.NotTables = append(tables.NotTables, NotGateTable{
				GateIndex: gateIdx, In: g.In0, Out: g.Out, Table: table,
			})

		default:
			return nil, nil, fmt.Errorf("garble: unsupported gate op %s at gate %d", g.Op, gateIdx)
		}
	}

	if innerCursor != len(inputs.InnerLabels) {
		return nil, nil, &SizeMismatchError{
			Msg: "inner labels not fully consumed", Want: len(inputs.InnerLabels), Got: innerCursor,
		}
	}

	primaryInputs, _ := c.EnumerateIO()
	inputPairs := make([]label.Pair, len(primaryInputs))
	for i, w := range primaryInputs {
		inputPairs[i] = wires[w].Pair
	}

	return &tables, inputPairs, nil
}
