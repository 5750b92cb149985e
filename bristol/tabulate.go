package bristol

import (
	"fmt"

	"github.com/markkurossi/tabulate"
)

// TabulateRow appends this circuit's gate/wire counts to row, matching
// the teacher's apps/garbled/objdump.go dumper: one column per gate
// kind, then total gates, then total wires.
func (c *Circuit) TabulateRow(row *tabulate.Row) {
	row.Column(fmt.Sprintf("%d", c.xorCount))
	row.Column(fmt.Sprintf("%d", c.andCount))
	row.Column(fmt.Sprintf("%d", c.invCount))
	row.Column(fmt.Sprintf("%d", c.totalGateCount))
	row.Column(fmt.Sprintf("%d", c.totalWireCount))
}
