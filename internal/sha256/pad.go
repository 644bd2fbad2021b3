package sha256

import "encoding/binary"

// pad extends the message to a whole number of 512-bit blocks:
// message, a single 1 bit, the smallest run of zero bits that leaves the
// total 64 bits short of a block boundary, then the original length in
// bits as a 64-bit big-endian integer. Byte-aligned input means the 1 bit
// and the first seven zero bits always land together in a 0x80 byte.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	// zeroBits is the smallest k >= 0 with (bitLen + 1 + k) mod 512 == 448.
	zeroBits := (959 - bitLen%512) % 512

	padded := make([]byte, 0, len(data)+int(1+zeroBits)/8+8)
	padded = append(padded, data...)
	padded = append(padded, 0x80)
	for i := uint64(7); i < zeroBits; i += 8 {
		padded = append(padded, 0x00)
	}
	padded = binary.BigEndian.AppendUint64(padded, bitLen)

	if len(padded)%BlockSize != 0 {
		panic("sha256: padded message is not a multiple of 512 bits")
	}
	return padded
}

// parse splits a padded message into 512-bit blocks of 16 big-endian words.
// The padder guarantees the length; anything else is a programming error.
func parse(padded []byte) [][16]uint32 {
	blocks := make([][16]uint32, 0, len(padded)/BlockSize)
	for off := 0; off < len(padded); off += BlockSize {
		var block [16]uint32
		for i := range block {
			block[i] = binary.BigEndian.Uint32(padded[off+4*i:])
		}
		blocks = append(blocks, block)
	}
	return blocks
}
