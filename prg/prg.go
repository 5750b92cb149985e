// Package prg derives the delta value and wire labels a garbling session
// needs from a single 32-byte master seed, using a ChaCha12 CSPRNG. The
// draw order is part of the public contract: two conforming
// implementations fed the same (circuit, seed) pair must derive
// byte-identical labels, or their commitments are mutually unverifiable.
package prg

import (
	"io"

	"github.com/zkgarble/freexor-garble/internal/chacha12"
	"github.com/zkgarble/freexor-garble/label"
)

// SeedSize is the required master seed length in bytes.
const SeedSize = 32

// LabelInputs is the seed-derived material a garbling call consumes:
// the global delta, one label per primary input wire, and one label per
// non-free gate output (AND and INV), in gate-processing order.
type LabelInputs struct {
	Delta       label.Label
	InputLabels []label.Label
	InnerLabels []label.Label
}

// Derive draws delta, then inputWireCount input labels, then
// innerWireCount inner labels, from a ChaCha12 stream keyed by seed, in
// that exact order.
func Derive(seed [SeedSize]byte, inputWireCount, innerWireCount int) LabelInputs {
	var nonce [chacha12.NonceSize]byte
	stream := chacha12.New(seed, nonce)

	return LabelInputs{
		Delta:       readLabel(stream),
		InputLabels: readLabels(stream, inputWireCount),
		InnerLabels: readLabels(stream, innerWireCount),
	}
}

func readLabel(r io.Reader) label.Label {
	var d label.Data
	// io.Reader from chacha12.Cipher never errors or short-reads.
	_, _ = io.ReadFull(r, d[:])
	return label.FromBytes(d)
}

func readLabels(r io.Reader, n int) []label.Label {
	labels := make([]label.Label, n)
	for i := range labels {
		labels[i] = readLabel(r)
	}
	return labels
}
