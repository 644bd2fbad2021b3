// Package mac implements HMAC-SHA256 tagging and constant-time tag
// verification on top of the internal SHA-256 digest.
package mac

import (
	"crypto/subtle"

	"macsum/internal/sha256"
)

// Size is the length of an HMAC-SHA256 tag in bytes.
const Size = sha256.Size

const (
	innerPad = 0x36
	outerPad = 0x5c
)

// normalizeKey brings a key of any length to exactly one block: keys
// longer than a block are hashed first, then everything is zero-padded.
func normalizeKey(key []byte) [sha256.BlockSize]byte {
	var normalized [sha256.BlockSize]byte
	if len(key) > sha256.BlockSize {
		digest := sha256.Sum(key)
		copy(normalized[:], digest[:])
	} else {
		copy(normalized[:], key)
	}
	return normalized
}

// Compute returns the HMAC-SHA256 tag for data under key. The key may be
// any length; it is normalized to the block size first.
func Compute(data, key []byte) [Size]byte {
	normalized := normalizeKey(key)

	var innerKey, outerKey [sha256.BlockSize]byte
	for i, b := range normalized {
		innerKey[i] = b ^ innerPad
		outerKey[i] = b ^ outerPad
	}

	inner := make([]byte, 0, sha256.BlockSize+len(data))
	inner = append(inner, innerKey[:]...)
	inner = append(inner, data...)
	innerHash := sha256.Sum(inner)

	outer := make([]byte, 0, sha256.BlockSize+Size)
	outer = append(outer, outerKey[:]...)
	outer = append(outer, innerHash[:]...)
	return sha256.Sum(outer)
}

// Verify recomputes the tag for data under key and compares it to tag in
// constant time. A tag of the wrong length fails without revealing how
// the lengths differ: the expected tag is always computed in full, and
// subtle.ConstantTimeCompare rejects mismatched lengths up front.
func Verify(data, tag, key []byte) bool {
	expected := Compute(data, key)
	return subtle.ConstantTimeCompare(tag, expected[:]) == 1
}
