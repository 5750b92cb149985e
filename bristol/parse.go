package bristol

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var reWhitespace = regexp.MustCompilePOSIX("[[:space:]]+")

// Parse reads a Bristol-fashion circuit, automatically detecting which
// of the two dialects (with-header or headerless) the input uses: a
// with-header file's first line is exactly "num_gates num_wires" (two
// integer tokens), while a headerless file's first line is itself a gate
// line, ending in one of the AND/XOR/INV opcode tokens.
func Parse(r io.Reader) (*Circuit, error) {
	br := bufio.NewReader(r)
	lineNo := 0
	first, err := readLine(br, &lineNo)
	if err != nil {
		return nil, err
	}
	if isGateLine(first) {
		return parseHeaderless(br, &lineNo, first)
	}
	return parseWithHeader(br, &lineNo, first)
}

// isGateLine reports whether a tokenized line looks like a gate line
// rather than a with-header dialect's first header line: a gate line's
// last token is one of the known opcodes.
func isGateLine(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	switch tokens[len(tokens)-1] {
	case "AND", "XOR", "INV":
		return true
	default:
		return false
	}
}

// readLine reads the next non-blank, whitespace-tokenized line,
// skipping blank lines per Bristol's parsing discipline.
func readLine(r *bufio.Reader, lineNo *int) ([]string, error) {
	for {
		line, err := r.ReadString('\n')
		*lineNo++
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 0 {
			return reWhitespace.Split(trimmed, -1), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func parseInt(tokens []string, idx int, lineNo int, what string) (int, error) {
	if idx >= len(tokens) {
		return 0, &ParseError{Line: lineNo, Token: "", Msg: "missing " + what}
	}
	v, err := strconv.Atoi(tokens[idx])
	if err != nil {
		return 0, &ParseError{Line: lineNo, Token: tokens[idx], Msg: "invalid " + what}
	}
	return v, nil
}

// parseWithHeader parses the three-header-line dialect: "num_gates
// num_wires", "num_inputs in1_width", "num_outputs out_width", followed
// by num_gates gate lines. Only num_inputs = 1 and a single output group
// are supported (multi-party input/output is a Non-goal).
func parseWithHeader(r *bufio.Reader, lineNo *int, header1 []string) (*Circuit, error) {
	claimedGates, err := parseInt(header1, 0, *lineNo, "num_gates")
	if err != nil {
		return nil, err
	}
	claimedWires, err := parseInt(header1, 1, *lineNo, "num_wires")
	if err != nil {
		return nil, err
	}

	header2, err := readLine(r, lineNo)
	if err != nil {
		return nil, err
	}
	numInputs, err := parseInt(header2, 0, *lineNo, "num_inputs")
	if err != nil {
		return nil, err
	}
	if numInputs != 1 {
		return nil, &ParseError{Line: *lineNo, Token: header2[0],
			Msg: "multi-party input is not supported (num_inputs must be 1)"}
	}
	input1Count, err := parseInt(header2, 1, *lineNo, "in1_width")
	if err != nil {
		return nil, err
	}

	header3, err := readLine(r, lineNo)
	if err != nil {
		return nil, err
	}
	numOutputs, err := parseInt(header3, 0, *lineNo, "num_outputs")
	if err != nil {
		return nil, err
	}
	if numOutputs != 1 {
		return nil, &ParseError{Line: *lineNo, Token: header3[0],
			Msg: "multi-group output is not supported (num_outputs must be 1)"}
	}
	outputWidth, err := parseInt(header3, 1, *lineNo, "out_width")
	if err != nil {
		return nil, err
	}

	gates, observedWires, err := parseGateLines(r, lineNo, nil, claimedGates, claimedWires, input1Count)
	if err != nil {
		return nil, err
	}

	if len(gates) != claimedGates {
		return nil, &HeaderMismatchError{Msg: "num_gates", Claimed: claimedGates, Observed: len(gates)}
	}
	if observedWires > claimedWires {
		return nil, &HeaderMismatchError{Msg: "num_wires", Claimed: claimedWires, Observed: observedWires}
	}

	return NewCircuit(claimedWires, input1Count, 0, outputWidth, gates), nil
}

// parseHeaderless parses the headerless dialect: only gate lines, with
// num_wires derived as 1 + max(wire id observed), and both the input
// width and the output width taken from gate topology via EnumerateIO
// (there is no header to declare them, trusted or otherwise).
func parseHeaderless(r *bufio.Reader, lineNo *int, first []string) (*Circuit, error) {
	gates, observedWires, err := parseGateLines(r, lineNo, first, -1, -1, -1)
	if err != nil {
		return nil, err
	}

	totalWires := observedWires + 1
	c := NewCircuit(totalWires, 0, 0, 0, gates)
	inputs, outputs := c.EnumerateIO()
	// In the headerless dialect input1Count/outputCount are themselves
	// derived from topology, so rebuild the Circuit now that EnumerateIO
	// has told us their true widths.
	return NewCircuit(totalWires, len(inputs), 0, len(outputs), gates), nil
}

// parseGateLines reads gate lines until EOF (headerless dialect, when
// claimedGates < 0) or until claimedGates lines have been read
// (with-header dialect). If first is non-nil it is treated as an
// already-read gate line preceding the rest read from r. inputWireCount
// seeds which wire indices are "seen" without a producing gate (the
// primary inputs of a with-header file); pass -1 for the headerless
// dialect, where every wire must first appear as some gate's output or
// as an input inferred purely from never being an output.
func parseGateLines(r *bufio.Reader, lineNo *int, first []string,
	claimedGates, claimedWires, inputWireCount int) ([]Gate, int, error) {

	seen := make(map[Wire]bool)
	trusted := inputWireCount >= 0
	if trusted {
		for i := 0; i < inputWireCount; i++ {
			seen[Wire(i)] = true
		}
	}

	var gates []Gate
	var maxWire int
	gateIdx := 0

	consume := func(tokens []string) error {
		g, err := parseGateLine(tokens, *lineNo)
		if err != nil {
			return err
		}
		for _, in := range g.Inputs() {
			if in < 0 {
				return &WireOutOfBoundsError{Gate: gateIdx, Wire: in, Msg: "input wire index is negative"}
			}
			if trusted && int(in) >= claimedWires {
				return &WireOutOfBoundsError{Gate: gateIdx, Wire: in, Msg: "input wire out of bounds"}
			}
			if trusted && !seen[in] {
				return &WireOutOfBoundsError{Gate: gateIdx, Wire: in, Msg: "input wire read before assignment"}
			}
			if int(in) > maxWire {
				maxWire = int(in)
			}
		}
		if g.Out < 0 {
			return &WireOutOfBoundsError{Gate: gateIdx, Wire: g.Out, Msg: "output wire index is negative"}
		}
		if trusted && int(g.Out) >= claimedWires {
			return &WireOutOfBoundsError{Gate: gateIdx, Wire: g.Out, Msg: "output wire out of bounds"}
		}
		if seen[g.Out] {
			return &WireOutOfBoundsError{Gate: gateIdx, Wire: g.Out, Msg: "output wire driven by more than one gate"}
		}
		seen[g.Out] = true
		if int(g.Out) > maxWire {
			maxWire = int(g.Out)
		}
		gates = append(gates, g)
		gateIdx++
		return nil
	}

	if first != nil {
		if err := consume(first); err != nil {
			return nil, 0, err
		}
	}

	for claimedGates < 0 || gateIdx < claimedGates {
		tokens, err := readLine(r, lineNo)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, 0, err
		}
		if err := consume(tokens); err != nil {
			return nil, 0, err
		}
	}

	return gates, maxWire, nil
}

// parseGateLine parses one "fan_in fan_out in_0 [in_1 ...] out OP" line.
func parseGateLine(tokens []string, lineNo int) (Gate, error) {
	if len(tokens) < 4 {
		return Gate{}, &ParseError{Line: lineNo, Token: strings.Join(tokens, " "),
			Msg: "truncated gate line"}
	}

	fanIn, err := parseInt(tokens, 0, lineNo, "fan_in")
	if err != nil {
		return Gate{}, err
	}
	fanOut, err := parseInt(tokens, 1, lineNo, "fan_out")
	if err != nil {
		return Gate{}, err
	}
	if fanOut != 1 {
		return Gate{}, &ParseError{Line: lineNo, Token: tokens[1],
			Msg: "fan_out must be 1"}
	}

	opToken := tokens[len(tokens)-1]
	var op Operation
	switch opToken {
	case "AND":
		op = AND
	case "XOR":
		op = XOR
	case "INV":
		op = INV
	default:
		return Gate{}, &OpcodeUnsupportedError{Line: lineNo, Opcode: opToken}
	}

	wantFanIn := 2
	if op == INV {
		wantFanIn = 1
	}
	if fanIn != wantFanIn {
		return Gate{}, &ParseError{Line: lineNo, Token: tokens[0],
			Msg: "fan_in does not match opcode"}
	}
	// 2 (fan_in, fan_out) + fanIn inputs + 1 output + 1 opcode
	if len(tokens) != 2+fanIn+1+1 {
		return Gate{}, &ParseError{Line: lineNo, Token: strings.Join(tokens, " "),
			Msg: "truncated gate line"}
	}

	in0, err := parseInt(tokens, 2, lineNo, "in0")
	if err != nil {
		return Gate{}, err
	}
	var in1 int
	outIdx := 3
	if fanIn == 2 {
		in1, err = parseInt(tokens, 3, lineNo, "in1")
		if err != nil {
			return Gate{}, err
		}
		outIdx = 4
	}
	out, err := parseInt(tokens, outIdx, lineNo, "out")
	if err != nil {
		return Gate{}, err
	}

	return Gate{Op: op, In0: Wire(in0), In1: Wire(in1), Out: Wire(out)}, nil
}
