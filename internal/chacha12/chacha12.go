// Package chacha12 implements the 12-round member of the ChaCha stream
// cipher family (RFC 7539's quarter-round and column/diagonal rounds, run
// for 6 double-rounds instead of ChaCha20's 10). It exists because the
// seed-derived label generator (package prg) requires a ChaCha12 CSPRNG
// and no available library exposes a variable round count: the ecosystem
// ChaCha implementations (including golang.org/x/crypto/chacha20) hardcode
// 20 rounds.
package chacha12

import (
	"encoding/binary"
)

const (
	// KeySize is the ChaCha key size in bytes.
	KeySize = 32
	// NonceSize is the ChaCha nonce size in bytes (RFC 7539 layout).
	NonceSize = 12
	// blockSize is the ChaCha state size in bytes (16 little-endian
	// uint32 words).
	blockSize = 64
	rounds    = 12
)

var sigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// Cipher is a ChaCha12 keystream generator. It is not a general-purpose
// AEAD cipher: it is used only to derive a deterministic byte stream from
// a 32-byte seed, matching ChaCha12Rng::from_seed's role in the reference
// implementation.
type Cipher struct {
	state   [16]uint32
	block   [blockSize]byte
	pos     int
	counter uint32
}

// New creates a ChaCha12 keystream generator from a 32-byte key and a
// 12-byte nonce (package prg uses it as a seed-keyed DRBG: the seed is
// the key and the nonce is all zero).
func New(key [KeySize]byte, nonce [NonceSize]byte) *Cipher {
	c := &Cipher{}
	c.state[0] = sigma[0]
	c.state[1] = sigma[1]
	c.state[2] = sigma[2]
	c.state[3] = sigma[3]
	for i := 0; i < 8; i++ {
		c.state[4+i] = binary.LittleEndian.Uint32(key[i*4 : i*4+4])
	}
	c.state[12] = 0 // block counter
	for i := 0; i < 3; i++ {
		c.state[13+i] = binary.LittleEndian.Uint32(nonce[i*4 : i*4+4])
	}
	c.pos = blockSize // force a block generation on first read
	return c
}

func quarterRound(state *[16]uint32, a, b, c, d int) {
	state[a] += state[b]
	state[d] ^= state[a]
	state[d] = state[d]<<16 | state[d]>>16

	state[c] += state[d]
	state[b] ^= state[c]
	state[b] = state[b]<<12 | state[b]>>20

	state[a] += state[b]
	state[d] ^= state[a]
	state[d] = state[d]<<8 | state[d]>>24

	state[c] += state[d]
	state[b] ^= state[c]
	state[b] = state[b]<<7 | state[b]>>25
}

func (c *Cipher) nextBlock() {
	var working [16]uint32
	copy(working[:], c.state[:])
	working[12] = c.counter

	for i := 0; i < rounds/2; i++ {
		// column round
		quarterRound(&working, 0, 4, 8, 12)
		quarterRound(&working, 1, 5, 9, 13)
		quarterRound(&working, 2, 6, 10, 14)
		quarterRound(&working, 3, 7, 11, 15)
		// diagonal round
		quarterRound(&working, 0, 5, 10, 15)
		quarterRound(&working, 1, 6, 11, 12)
		quarterRound(&working, 2, 7, 8, 13)
		quarterRound(&working, 3, 4, 9, 14)
	}

	for i := 0; i < 16; i++ {
		var orig uint32
		switch i {
		case 12:
			orig = c.counter
		default:
			orig = c.state[i]
		}
		binary.LittleEndian.PutUint32(c.block[i*4:i*4+4], working[i]+orig)
	}

	c.counter++
	c.pos = 0
}

// Read fills p with keystream bytes, implementing io.Reader so the
// generator composes with the rest of the codebase's Reader-based seeding
// idiom (matching crypto/rand.Reader usage elsewhere in this repo).
func (c *Cipher) Read(p []byte) (int, error) {
	n := len(p)
	for written := 0; written < n; {
		if c.pos >= blockSize {
			c.nextBlock()
		}
		k := copy(p[written:], c.block[c.pos:])
		c.pos += k
		written += k
	}
	return n, nil
}
