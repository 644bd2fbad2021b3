package sha256

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPad_Invariants(t *testing.T) {
	// Lengths chosen around the padding corners: 55 is the largest message
	// that fits one block, 56 hits bitLen mod 512 == 448 exactly (maximum
	// zero run, message spills into a second block), 64 is a full block.
	for _, n := range []int{0, 1, 3, 54, 55, 56, 57, 63, 64, 65, 119, 120, 121, 128, 1000} {
		data := bytes.Repeat([]byte{0xa7}, n)
		padded := pad(data)

		if len(padded)%BlockSize != 0 {
			t.Fatalf("len %d: padded length %d not a multiple of %d", n, len(padded), BlockSize)
		}
		if !bytes.Equal(padded[:n], data) {
			t.Fatalf("len %d: message bytes not preserved", n)
		}
		if padded[n] != 0x80 {
			t.Fatalf("len %d: byte after message is %#02x, want 0x80", n, padded[n])
		}
		for i := n + 1; i < len(padded)-8; i++ {
			if padded[i] != 0 {
				t.Fatalf("len %d: zero run broken at byte %d (%#02x)", n, i, padded[i])
			}
		}
		if got := binary.BigEndian.Uint64(padded[len(padded)-8:]); got != uint64(n)*8 {
			t.Fatalf("len %d: length field is %d, want %d", n, got, n*8)
		}
	}
}

func TestPad_EmptyMessageIsOneBlock(t *testing.T) {
	padded := pad(nil)
	if len(padded) != BlockSize {
		t.Fatalf("padded length: got %d, want %d", len(padded), BlockSize)
	}
	// A single 1 bit, 447 zero bits, and an all-zero length field.
	if padded[0] != 0x80 {
		t.Fatalf("first byte: got %#02x, want 0x80", padded[0])
	}
	for i := 1; i < BlockSize; i++ {
		if padded[i] != 0 {
			t.Fatalf("byte %d: got %#02x, want 0x00", i, padded[i])
		}
	}
}

func TestPad_FullZeroRunBoundary(t *testing.T) {
	// 56 bytes = 448 bits: the 1 bit cannot fit before the length field,
	// so padding adds the maximum 511 zero bits and a second block.
	padded := pad(make([]byte, 56))
	if len(padded) != 2*BlockSize {
		t.Fatalf("padded length: got %d, want %d", len(padded), 2*BlockSize)
	}

	// 55 bytes = 440 bits: the minimum 7 zero bits, everything in one block.
	padded = pad(make([]byte, 55))
	if len(padded) != BlockSize {
		t.Fatalf("padded length: got %d, want %d", len(padded), BlockSize)
	}
}

func TestParse_BigEndianWords(t *testing.T) {
	block := make([]byte, BlockSize)
	copy(block, []byte{0x01, 0x02, 0x03, 0x04, 0xff, 0x00, 0xaa, 0x55})

	blocks := parse(block)
	if len(blocks) != 1 {
		t.Fatalf("block count: got %d, want 1", len(blocks))
	}
	if blocks[0][0] != 0x01020304 {
		t.Errorf("word 0: got %#08x, want 0x01020304", blocks[0][0])
	}
	if blocks[0][1] != 0xff00aa55 {
		t.Errorf("word 1: got %#08x, want 0xff00aa55", blocks[0][1])
	}
	if blocks[0][15] != 0 {
		t.Errorf("word 15: got %#08x, want 0", blocks[0][15])
	}
}

func TestParse_BlockOrder(t *testing.T) {
	padded := make([]byte, 3*BlockSize)
	padded[0] = 0x11         // first word of block 0
	padded[BlockSize] = 0x22 // first word of block 1
	padded[2*BlockSize] = 0x33

	blocks := parse(padded)
	if len(blocks) != 3 {
		t.Fatalf("block count: got %d, want 3", len(blocks))
	}
	for i, want := range []uint32{0x11000000, 0x22000000, 0x33000000} {
		if blocks[i][0] != want {
			t.Errorf("block %d word 0: got %#08x, want %#08x", i, blocks[i][0], want)
		}
	}
}
