package bristol

import (
	"fmt"
	"io"
)

// Write emits c in the with-header Bristol dialect: three header lines
// followed by one gate line per gate, the format spec.md §6 names for
// the random-circuit utility's output and for round-trip testing
// (parse -> write -> parse yields a structurally equal Circuit).
func Write(w io.Writer, c *Circuit) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", c.totalGateCount, c.totalWireCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "1 %d\n", c.input1Count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "1 %d\n", c.outputCount); err != nil {
		return err
	}
	for _, g := range c.gates {
		if _, err := fmt.Fprintln(w, g.String()); err != nil {
			return err
		}
	}
	return nil
}
