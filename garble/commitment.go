package garble

import (
	"crypto/sha256"

	"github.com/zkgarble/freexor-garble/bristol"
	"github.com/zkgarble/freexor-garble/label"
)

// Commitment is the public record a garbler publishes alongside a
// garbling run: the circuit's identity, a hash of every primary input
// wire's label pair, and the garbled tables themselves. It reveals
// nothing about delta or any inner-wire label.
type Commitment struct {
	CircuitHash [sha256.Size]byte
	LabelHashes []InputLabelHash
	Tables      GarbledTables
}

// InputLabelHash is the pair of label hashes published for one primary
// input wire, in EnumerateIO order.
type InputLabelHash struct {
	Wire    bristol.Wire
	Hash0   [sha256.Size]byte
	Hash1   [sha256.Size]byte
}

// CircuitHash hashes a circuit's gate list and declared widths: enough
// to bind a commitment to one specific topology without re-parsing the
// original Bristol text.
func CircuitHash(c *bristol.Circuit) [sha256.Size]byte {
	h := sha256.New()
	var buf [8]byte
	writeInt := func(v int) {
		buf[0] = byte(v >> 56)
		buf[1] = byte(v >> 48)
		buf[2] = byte(v >> 40)
		buf[3] = byte(v >> 32)
		buf[4] = byte(v >> 24)
		buf[5] = byte(v >> 16)
		buf[6] = byte(v >> 8)
		buf[7] = byte(v)
		h.Write(buf[:])
	}
	writeInt(c.WireCount())
	writeInt(c.Input1Count())
	writeInt(c.Input2Count())
	writeInt(c.OutputWireCount())
	writeInt(c.GateCount())
	for _, g := range c.Gates() {
		h.Write([]byte{byte(g.Op)})
		writeInt(int(g.In0))
		writeInt(int(g.In1))
		writeInt(int(g.Out))
	}
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// BuildCommitment assembles the public Commitment for a garbling run:
// it hashes c's topology, hashes every primary input wire's label pair
// (in EnumerateIO order), and attaches the garbled tables computed by
// Garble. It takes inputPairs rather than re-deriving them so callers
// that already ran Garble don't pay for a second label walk.
func BuildCommitment(c *bristol.Circuit, inputPairs []label.Pair, tables *GarbledTables) *Commitment {
	inputs, _ := c.EnumerateIO()

	hashes := make([]InputLabelHash, len(inputs))
	for i, w := range inputs {
		hashes[i] = InputLabelHash{
			Wire:  w,
			Hash0: inputPairs[i].L0.Hash(),
			Hash1: inputPairs[i].L1.Hash(),
		}
	}

	return &Commitment{
		CircuitHash: CircuitHash(c),
		LabelHashes: hashes,
		Tables:      *tables,
	}
}
