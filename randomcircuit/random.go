// Package randomcircuit generates synthetic Boolean circuits for
// benchmarking the garbling engine: every gate wires its inputs to
// strictly lower-numbered wires, so the result is topologically valid
// (and therefore garblable) by construction, with no separate validity
// pass required.
package randomcircuit

import (
	"fmt"
	"math/rand"

	"github.com/zkgarble/freexor-garble/bristol"
)

// Options configures a random circuit draw.
type Options struct {
	// InputWires is the number of primary input wires.
	InputWires int
	// GateCount is the number of gates to generate.
	GateCount int
	// XORRatio is the probability that a given gate is XOR rather than
	// AND; INV gates are not generated by this distribution (matching
	// the reference generator, which draws only AND/XOR).
	XORRatio float64
}

// Generate draws a random circuit from opts using rng as the entropy
// source. Each gate's two inputs are drawn uniformly from the wires
// available so far (the input wires plus every earlier gate's output),
// and the gate's own output becomes available to later gates; this
// guarantees every gate reads only already-defined wires.
func Generate(opts Options, rng *rand.Rand) (*bristol.Circuit, error) {
	if opts.InputWires <= 0 {
		return nil, fmt.Errorf("randomcircuit: InputWires must be positive, got %d", opts.InputWires)
	}
	if opts.GateCount < 0 {
		return nil, fmt.Errorf("randomcircuit: GateCount must be non-negative, got %d", opts.GateCount)
	}
	if opts.XORRatio < 0 || opts.XORRatio > 1 {
		return nil, fmt.Errorf("randomcircuit: XORRatio must be in [0,1], got %f", opts.XORRatio)
	}

	gates := make([]bristol.Gate, 0, opts.GateCount)
	available := opts.InputWires

	for i := 0; i < opts.GateCount; i++ {
		op := bristol.AND
		if rng.Float64() < opts.XORRatio {
			op = bristol.XOR
		}

		in0 := bristol.Wire(rng.Intn(available))
		in1 := bristol.Wire(rng.Intn(available))
		out := bristol.Wire(available)
		available++

		gates = append(gates, bristol.Gate{Op: op, In0: in0, In1: in1, Out: out})
	}

	totalWires := opts.InputWires + opts.GateCount
	c := bristol.NewCircuit(totalWires, opts.InputWires, 0, 0, gates)
	_, outputs := c.EnumerateIO()
	return bristol.NewCircuit(totalWires, opts.InputWires, 0, len(outputs), gates), nil
}
