// Package label implements the 128-bit wire label primitive used by the
// Free-XOR garbling engine: a fixed-width value with a single algebraic
// operation (XOR) and a SHA-256-based pad used to mask garbled-table rows.
package label

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/text/superscript"
)

// Size is the label width in bytes (128 bits).
const Size = 16

// Label is an opaque 128-bit value, represented as two big-endian
// uint64 words so that Xor can run as two word-wide operations instead
// of sixteen byte-wide ones, matching the teacher's ot.Label shape.
type Label struct {
	hi uint64
	lo uint64
}

// Data is the raw 16-byte encoding of a Label.
type Data [Size]byte

// Xor returns a XOR b. Xor is pure, constant-time, commutative, and
// associative: it operates on fixed-width words regardless of value.
func Xor(a, b Label) Label {
	return Label{hi: a.hi ^ b.hi, lo: a.lo ^ b.lo}
}

// Zero is the all-zero label, the identity element of Xor.
var Zero = Label{}

// Equal reports whether two labels hold the same bits.
func (l Label) Equal(o Label) bool {
	return l.hi == o.hi && l.lo == o.lo
}

// Bytes returns the label's 16-byte big-endian encoding.
func (l Label) Bytes() Data {
	var d Data
	binary.BigEndian.PutUint64(d[0:8], l.hi)
	binary.BigEndian.PutUint64(d[8:16], l.lo)
	return d
}

// FromBytes decodes a Label from its 16-byte big-endian encoding.
func FromBytes(d Data) Label {
	return Label{
		hi: binary.BigEndian.Uint64(d[0:8]),
		lo: binary.BigEndian.Uint64(d[8:16]),
	}
}

// FromSlice decodes a Label from a byte slice, which must have length
// Size or more; only the first Size bytes are read.
func FromSlice(b []byte) Label {
	var d Data
	copy(d[:], b)
	return FromBytes(d)
}

// String renders the label as a hex string.
func (l Label) String() string {
	d := l.Bytes()
	return fmt.Sprintf("%x", d[:])
}

// Pad derives the pseudorandom 128-bit mask H(ka || kb): the low 16
// bytes of SHA-256(ka || kb). Unary gates call Pad(ka, ka).
//
// TODO: a gate-index tweak (SHA-256(ka||kb||gate_index)) would remove
// cross-gate pad collisions when two gates share an input-label pair on
// the same row, but spec compatibility with the current commitment
// format requires the un-tweaked form, so it is not applied here.
func Pad(ka, kb Label) Label {
	kaData := ka.Bytes()
	kbData := kb.Bytes()

	h := sha256.New()
	h.Write(kaData[:])
	h.Write(kbData[:])
	digest := h.Sum(nil)

	var d Data
	copy(d[:], digest[:Size])
	return FromBytes(d)
}

// Hash returns the 32-byte SHA-256 digest of the label's bytes, used to
// build the public label-hash commitment.
func (l Label) Hash() [sha256.Size]byte {
	d := l.Bytes()
	return sha256.Sum256(d[:])
}

// Pair is a wire's two labels under Free-XOR: L1 = L0 XOR delta.
type Pair struct {
	L0 Label
	L1 Label
}

// Select returns L0 for bit 0 and L1 for bit 1.
func (p Pair) Select(bit int) Label {
	if bit == 0 {
		return p.L0
	}
	return p.L1
}

// String renders the pair using superscripted 0/1 notation (k⁰/k¹),
// matching the superscript peer-numbering idiom used elsewhere in this
// lineage for compact disambiguated labels.
func (p Pair) String() string {
	return fmt.Sprintf("k%s=%s k%s=%s",
		superscript.Itoa(0), p.L0, superscript.Itoa(1), p.L1)
}
