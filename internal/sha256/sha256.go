// Package sha256 implements the SHA-256 digest from scratch: padding,
// block parsing, and the 64-round compression function. Each call
// computes over the whole input; there is no streaming state, so the
// package is safe for concurrent use without coordination.
package sha256

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the digest length in bytes.
	Size = 32
	// BlockSize is the message block length in bytes.
	BlockSize = 64
)

// Sum returns the SHA-256 digest of data.
func Sum(data []byte) [Size]byte {
	blocks := parse(pad(data))

	state := initialHash
	for _, block := range blocks {
		state = compress(state, block)
	}

	var digest [Size]byte
	for i, word := range state {
		binary.BigEndian.PutUint32(digest[4*i:], word)
	}
	return digest
}

// compress folds one message block into the hash state and returns the
// next state. All arithmetic is uint32 with wraparound.
func compress(state [8]uint32, block [16]uint32) [8]uint32 {
	// Expand the block into the 64-word message schedule.
	var w [64]uint32
	copy(w[:16], block[:])
	for t := 16; t < 64; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + roundConstants[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return [8]uint32{
		state[0] + a, state[1] + b, state[2] + c, state[3] + d,
		state[4] + e, state[5] + f, state[6] + g, state[7] + h,
	}
}

func rotr(x uint32, n int) uint32 { return bits.RotateLeft32(x, -n) }

func ch(x, y, z uint32) uint32 { return (x & y) ^ (^x & z) }

func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func bigSigma0(x uint32) uint32 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }

func bigSigma1(x uint32) uint32 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }

func smallSigma0(x uint32) uint32 { return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3) }

func smallSigma1(x uint32) uint32 { return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10) }
